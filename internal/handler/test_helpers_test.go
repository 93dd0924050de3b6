package handler

import (
	"os"
	"testing"

	"github.com/AnvilCoder/SecondHand/internal/model"
	"github.com/AnvilCoder/SecondHand/internal/repository"
	"github.com/AnvilCoder/SecondHand/internal/service"
	"github.com/AnvilCoder/SecondHand/internal/testutils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	testDB       *gorm.DB
	testServices *service.Services
	testHandler  *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	testDB = gdb
	testServices = service.NewServices(repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewAdRepository(gdb),
		repository.NewCommentRepository(gdb),
		repository.NewImageRepository(gdb),
	))
	testHandler = NewHandler(testServices)
	return gdb
}

func useTempUploadDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
	return tmp
}

func createTestUser(t *testing.T, username, role string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("abc12345"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	u := model.User{Username: username, Password: string(hashed), Role: role}
	if err := testDB.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &u
}

func createTestAd(t *testing.T, userID uint, title string) *model.Ad {
	t.Helper()
	ad := model.Ad{Title: title, Description: "还算不错的二手货", Price: 100, UserID: userID}
	if err := testDB.Create(&ad).Error; err != nil {
		t.Fatalf("create ad: %v", err)
	}
	return &ad
}

// asUser 返回把指定用户写入请求上下文的中间件，模拟通过认证后的状态。
func asUser(u *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("id", u.ID)
		c.Set("username", u.Username)
		c.Set("role", u.Role)
		c.Next()
	}
}
