package handler

import (
	"net/http"

	"github.com/AnvilCoder/SecondHand/internal/common/httpx"
	"github.com/AnvilCoder/SecondHand/internal/dto"

	"github.com/gin-gonic/gin"
)

// GetComments 列出广告下的全部评论。
func (h *Handler) GetComments(c *gin.Context) {
	adID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.services.Comment.GetComments(adID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取评论失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateComment 在广告下发表评论，评论归属于当前登录用户。
func (h *Handler) CreateComment(c *gin.Context) {
	adID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrUpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	resp, err := h.services.Comment.Create(adID, uid, &req)
	if err != nil {
		httpx.WriteServiceError(c, err, "发表评论失败")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateComment 修改评论，需要是评论者或管理员。
func (h *Handler) UpdateComment(c *gin.Context) {
	adID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := uintParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.authorizeComment(c, adID, commentID); err != nil {
		httpx.WriteServiceError(c, err, "服务器内部错误")
		return
	}

	var req dto.CreateOrUpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	resp, err := h.services.Comment.Update(adID, commentID, &req)
	if err != nil {
		httpx.WriteServiceError(c, err, "修改评论失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteComment 删除评论，需要是评论者或管理员。
func (h *Handler) DeleteComment(c *gin.Context) {
	adID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := uintParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.authorizeComment(c, adID, commentID); err != nil {
		httpx.WriteServiceError(c, err, "服务器内部错误")
		return
	}

	if err := h.services.Comment.Delete(adID, commentID); err != nil {
		httpx.WriteServiceError(c, err, "删除评论失败")
		return
	}
	c.Status(http.StatusNoContent)
}
