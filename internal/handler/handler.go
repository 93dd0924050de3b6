package handler

import (
	"net/http"
	"strconv"

	"github.com/AnvilCoder/SecondHand/internal/common"
	"github.com/AnvilCoder/SecondHand/internal/common/httpx"
	"github.com/AnvilCoder/SecondHand/internal/consts"
	"github.com/AnvilCoder/SecondHand/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{services: services}
}

// principalID 从上下文取出登录用户 ID，不写出响应，供授权检查内部使用。
func principalID(c *gin.Context) (uint, error) {
	value, exists := c.Get("id")
	if !exists {
		return 0, common.NewUnauthorizedError("未获取到用户信息")
	}
	uid, ok := value.(uint)
	if !ok {
		return 0, common.NewUnauthorizedError("无效的用户ID类型")
	}
	return uid, nil
}

// currentUserID 从上下文取出登录用户 ID，失败时写出 401，JWTAuth 之后一定存在。
func currentUserID(c *gin.Context) (uint, bool) {
	uid, err := principalID(c)
	if err != nil {
		httpx.WriteServiceError(c, err, "未获取到用户信息")
		return 0, false
	}
	return uid, true
}

func isAdmin(c *gin.Context) bool {
	value, exists := c.Get("role")
	role, ok := value.(string)
	return exists && ok && role == consts.RoleAdmin
}

// uintParam 解析路径参数为 uint，失败时写出 400。
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httpx.WriteError(c, http.StatusBadRequest, "无效的 "+name+" 参数")
		return 0, false
	}
	return uint(id), true
}

// authorizeAd 广告写操作的授权检查：管理员或发布者放行。
// 广告不存在返回 not found，其他人返回 forbidden。
func (h *Handler) authorizeAd(c *gin.Context, adID uint) error {
	if isAdmin(c) {
		// 管理员操作前仍确认资源存在，保证 404 先于 403
		exists, err := h.services.Ad.Exists(adID)
		if err != nil {
			return err
		}
		if !exists {
			return common.NewNotFoundError("广告不存在")
		}
		return nil
	}

	uid, err := principalID(c)
	if err != nil {
		return err
	}

	owner, err := h.services.Ad.IsOwner(adID, uid)
	if err != nil {
		return err
	}
	if !owner {
		return common.NewForbiddenError("无权操作他人的广告")
	}
	return nil
}

// authorizeComment 评论写操作的授权检查：管理员或评论者放行。
func (h *Handler) authorizeComment(c *gin.Context, adID, commentID uint) error {
	if isAdmin(c) {
		_, err := h.services.Comment.IsOwner(adID, commentID, 0)
		return err
	}

	uid, err := principalID(c)
	if err != nil {
		return err
	}

	owner, err := h.services.Comment.IsOwner(adID, commentID, uid)
	if err != nil {
		return err
	}
	if !owner {
		return common.NewForbiddenError("无权操作他人的评论")
	}
	return nil
}
