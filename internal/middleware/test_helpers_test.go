package middleware

import (
	"testing"

	"github.com/AnvilCoder/SecondHand/internal/repository"
	"github.com/AnvilCoder/SecondHand/internal/service"
	"github.com/AnvilCoder/SecondHand/internal/testutils"

	"gorm.io/gorm"
)

var testUserService *service.UserService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	imageService := service.NewImageService(repository.NewImageRepository(gdb))
	testUserService = service.NewUserService(repository.NewUserRepository(gdb), imageService)
	return gdb
}

func resetExistCache() {
	existCache.Range(func(key, value any) bool {
		existCache.Delete(key)
		return true
	})
}
