package router

import (
	"github.com/AnvilCoder/SecondHand/internal/handler"
	"github.com/AnvilCoder/SecondHand/internal/middleware"
	"github.com/AnvilCoder/SecondHand/internal/service"

	"github.com/gin-gonic/gin"
)

func registerAdRoutes(api *gin.RouterGroup, h *handler.Handler, services *service.Services) {
	adGroup := api.Group("/ads")
	adGroup.Use(middleware.JWTAuth())
	adGroup.Use(middleware.UserCheck(services.User))

	// 上传限流：发布广告和换图共用
	uploadLimiter := middleware.UploadRateLimit()
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware()

	adGroup.GET("/me", h.GetMyAds)
	adGroup.GET("/:id", h.GetAd)
	adGroup.POST("", uploadBodyLimit, uploadLimiter, h.CreateAd)
	adGroup.PATCH("/:id", h.UpdateAd)
	adGroup.PATCH("/:id/image", uploadBodyLimit, uploadLimiter, h.UpdateAdImage)
	adGroup.DELETE("/:id", h.DeleteAd)

	adGroup.GET("/:id/comments", h.GetComments)
	adGroup.POST("/:id/comments", h.CreateComment)
	adGroup.PATCH("/:id/comments/:commentId", h.UpdateComment)
	adGroup.DELETE("/:id/comments/:commentId", h.DeleteComment)
}
