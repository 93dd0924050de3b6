package router

import (
	"github.com/AnvilCoder/SecondHand/internal/handler"
	"github.com/AnvilCoder/SecondHand/internal/middleware"
	"github.com/AnvilCoder/SecondHand/internal/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler  *handler.Handler
	services *service.Services
}

func NewRouter(h *handler.Handler, services *service.Services) *Router {
	return &Router{
		handler:  h,
		services: services,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	// 认证限流：在公开路由中复用同一个实例，保持行为一致
	authLimiter := middleware.AuthRateLimit()

	registerPublicRoutes(api, authLimiter, rt.handler)
	registerAdRoutes(api, rt.handler, rt.services)
	registerUserRoutes(api, rt.handler, rt.services)
	registerAdminRoutes(api, rt.handler, rt.services)
}
