package handler

import (
	"net/http"

	"github.com/AnvilCoder/SecondHand/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetImage 按 ID 回读图片原始字节，免登录。
func (h *Handler) GetImage(c *gin.Context) {
	imageID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	data, mimeType, err := h.services.Image.Get(imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片失败")
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, mimeType, data)
}
