package handler

import (
	"net/http"

	"github.com/AnvilCoder/SecondHand/internal/common/httpx"
	"github.com/AnvilCoder/SecondHand/internal/dto"

	"github.com/gin-gonic/gin"
)

// GetMe 获取当前用户资料。
func (h *Handler) GetMe(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.services.User.GetProfile(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户资料失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMe 更新当前用户资料，只改 firstName、lastName、phone。
func (h *Handler) UpdateMe(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	resp, err := h.services.User.UpdateProfile(uid, &req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新用户资料失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMyImage 更换当前用户头像。
func (h *Handler) UpdateMyImage(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httpx.WriteError(c, http.StatusBadRequest, "缺少图片文件")
		return
	}

	resp, err := h.services.User.UpdateAvatar(uid, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "更换头像失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetPassword 校验当前密码后修改密码。
func (h *Handler) SetPassword(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.NewPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	if err := h.services.User.SetPassword(uid, req.CurrentPassword, req.NewPassword); err != nil {
		httpx.WriteServiceError(c, err, "修改密码失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "密码修改成功"})
}
