package router

import (
	"github.com/AnvilCoder/SecondHand/internal/handler"
	"github.com/AnvilCoder/SecondHand/internal/middleware"
	"github.com/AnvilCoder/SecondHand/internal/service"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, h *handler.Handler, services *service.Services) {
	userGroup := api.Group("/users")
	userGroup.Use(middleware.JWTAuth())
	userGroup.Use(middleware.UserCheck(services.User))

	uploadLimiter := middleware.UploadRateLimit()
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware()

	userGroup.GET("/me", h.GetMe)
	userGroup.PATCH("/me", h.UpdateMe)
	userGroup.PATCH("/me/image", uploadBodyLimit, uploadLimiter, h.UpdateMyImage)
	userGroup.POST("/set_password", h.SetPassword)
}
