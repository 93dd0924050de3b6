package router

import (
	"github.com/AnvilCoder/SecondHand/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler) {
	api.POST("/register", authLimiter, h.Register)
	api.POST("/login", authLimiter, h.Login)
	api.GET("/captcha", authLimiter, h.GetCaptcha)

	// 广告列表和图片回读免登录
	api.GET("/ads", h.GetAds)
	api.GET("/images/:id", h.GetImage)
}
