package handler

import (
	"net/http"

	"github.com/AnvilCoder/SecondHand/internal/common/httpx"
	"github.com/AnvilCoder/SecondHand/internal/dto"
	"github.com/AnvilCoder/SecondHand/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	user, err := h.services.Auth.Register(&req)
	if err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      user.ID,
		"message": "注册成功",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, http.StatusBadRequest, "参数错误")
		return
	}

	token, err := h.services.Auth.Login(&req)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"message": "登录成功",
	})
}

func (h *Handler) GetCaptcha(c *gin.Context) {
	id, b64, err := service.GenerateCaptcha()
	if err != nil {
		httpx.WriteServiceError(c, err, "生成验证码失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"captcha_id": id,
		"image":      b64,
	})
}
