package handler

import (
	"net/http"
	"strconv"

	"github.com/AnvilCoder/SecondHand/internal/common/httpx"
	"github.com/AnvilCoder/SecondHand/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AdminListUsers 管理端分页列出用户。
func (h *Handler) AdminListUsers(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := h.services.User.List(offset, limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": users,
	})
}

// AdminDeleteUser 管理端删除用户及其名下全部数据。
func (h *Handler) AdminDeleteUser(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.User.Delete(userID); err != nil {
		httpx.WriteServiceError(c, err, "删除用户失败")
		return
	}

	// 立即失效该用户的登录态缓存
	middleware.ClearUserCache(userID)

	c.Status(http.StatusNoContent)
}
