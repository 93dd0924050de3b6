package router

import (
	"github.com/AnvilCoder/SecondHand/internal/handler"
	"github.com/AnvilCoder/SecondHand/internal/middleware"
	"github.com/AnvilCoder/SecondHand/internal/service"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, h *handler.Handler, services *service.Services) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth())
	adminGroup.Use(middleware.UserCheck(services.User))
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/users", h.AdminListUsers)
	adminGroup.DELETE("/users/:id", h.AdminDeleteUser)
}
