package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/AnvilCoder/SecondHand/internal/config"
	"github.com/AnvilCoder/SecondHand/internal/db"
	"github.com/AnvilCoder/SecondHand/internal/handler"
	"github.com/AnvilCoder/SecondHand/internal/repository"
	"github.com/AnvilCoder/SecondHand/internal/router"
	"github.com/AnvilCoder/SecondHand/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	configDir := flag.String("config", "config", "配置文件目录")
	flag.Parse()

	config.InitConfig(*configDir)
	db.InitDB()

	uploadPath := config.Get().Upload.Path
	checkSecurePath(uploadPath)
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		log.Fatal("无法创建上传目录: ", err)
	}

	gin.SetMode(config.Get().Server.Mode)

	repos := repository.NewRepositories(
		repository.NewUserRepository(db.DB),
		repository.NewAdRepository(db.DB),
		repository.NewCommentRepository(db.DB),
		repository.NewImageRepository(db.DB),
	)
	services := service.NewServices(repos)
	h := handler.NewHandler(services)

	r := gin.Default()
	router.NewRouter(h, services).Init(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "message": "接口不存在"})
	})

	// 停机配置
	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}

	if err := service.CloseRedisClient(); err != nil {
		log.Printf("⚠️ 关闭 Redis 连接失败: %v", err)
	}
	log.Println("✅ 服务已退出")
}

func checkSecurePath(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("❌ 路径解析失败: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("❌ 无法获取当前工作目录: %v", err)
	}

	// 检查是否直接指向项目根目录
	if absPath == cwd {
		log.Fatalf("❌ 安全配置错误: 上传目录 '%s' 不能设置为项目根目录！这会导致源代码泄露。", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		log.Fatalf("❌ 安全配置错误: 上传目录 '%s' 必须位于项目目录内", path)
	}

	// 只允许位于这些目录下的路径作为上传目录
	allowedDirs := []string{
		"uploads",
		"static",
		"tmp",
	}

	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, dir := range allowedDirs {
		if firstComponent == dir {
			return
		}
	}
	log.Fatalf("❌ 安全配置错误: 上传目录 '%s' 不在允许的目录列表内 %v", path, allowedDirs)
}
