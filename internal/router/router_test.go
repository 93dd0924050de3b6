package router

import (
	"os"
	"testing"

	"github.com/AnvilCoder/SecondHand/internal/config"
	"github.com/AnvilCoder/SecondHand/internal/handler"
	"github.com/AnvilCoder/SecondHand/internal/repository"
	"github.com/AnvilCoder/SecondHand/internal/service"
	"github.com/AnvilCoder/SecondHand/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：为 router 包测试初始化配置环境并在结束时清理。
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "secondhand-router-config-*")
	if err != nil {
		panic(err)
	}

	envs := []testutils.SavedEnv{
		testutils.SetEnv("SECONDHAND_SERVER_MODE", "debug"),
		testutils.SetEnv("SECONDHAND_JWT_SECRET", "test_secret"),
		testutils.SetEnv("SECONDHAND_REDIS_ENABLED", "false"),
	}
	config.InitConfig(tmpDir)

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}

// 测试内容：验证核心 API 路由被正确注册。
func TestInitRouter_RegistersCoreRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	services := service.NewServices(repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewAdRepository(gdb),
		repository.NewCommentRepository(gdb),
		repository.NewImageRepository(gdb),
	))
	h := handler.NewHandler(services)
	rt := NewRouter(h, services)

	r := gin.New()
	rt.Init(r)

	type wantRoute struct {
		method string
		path   string
	}
	wants := []wantRoute{
		{method: "POST", path: "/api/register"},
		{method: "POST", path: "/api/login"},
		{method: "GET", path: "/api/captcha"},
		{method: "GET", path: "/api/ads"},
		{method: "GET", path: "/api/images/:id"},
		{method: "GET", path: "/api/ads/me"},
		{method: "GET", path: "/api/ads/:id"},
		{method: "POST", path: "/api/ads"},
		{method: "PATCH", path: "/api/ads/:id"},
		{method: "PATCH", path: "/api/ads/:id/image"},
		{method: "DELETE", path: "/api/ads/:id"},
		{method: "GET", path: "/api/ads/:id/comments"},
		{method: "POST", path: "/api/ads/:id/comments"},
		{method: "PATCH", path: "/api/ads/:id/comments/:commentId"},
		{method: "DELETE", path: "/api/ads/:id/comments/:commentId"},
		{method: "GET", path: "/api/users/me"},
		{method: "PATCH", path: "/api/users/me"},
		{method: "PATCH", path: "/api/users/me/image"},
		{method: "POST", path: "/api/users/set_password"},
		{method: "GET", path: "/api/admin/users"},
		{method: "DELETE", path: "/api/admin/users/:id"},
	}

	have := make(map[string]bool)
	for _, route := range r.Routes() {
		have[route.Method+" "+route.Path] = true
	}

	for _, w := range wants {
		if !have[w.method+" "+w.path] {
			t.Fatalf("缺少路由: %s %s", w.method, w.path)
		}
	}
}
