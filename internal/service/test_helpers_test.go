package service

import (
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/AnvilCoder/SecondHand/internal/model"
	"github.com/AnvilCoder/SecondHand/internal/repository"
	"github.com/AnvilCoder/SecondHand/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	testDB       *gorm.DB
	testServices *Services
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	testDB = gdb
	testServices = NewServices(repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewAdRepository(gdb),
		repository.NewCommentRepository(gdb),
		repository.NewImageRepository(gdb),
	))
	return gdb
}

// useTempUploadDir 把工作目录切到临时目录，让相对上传路径落在测试目录下。
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

func createTestUser(t *testing.T, username, password, role string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	u := model.User{Username: username, Password: string(hashed), Role: role}
	if err := testDB.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &u
}

func createTestAd(t *testing.T, userID uint, title string, price int) *model.Ad {
	t.Helper()
	ad := model.Ad{Title: title, Description: "还算不错的二手货", Price: price, UserID: userID}
	if err := testDB.Create(&ad).Error; err != nil {
		t.Fatalf("create ad: %v", err)
	}
	return &ad
}

// makeFileHeader 用 multipart 编码再解析的方式构造上传文件头。
func makeFileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	body, contentType := testutils.MultipartBody(t, nil, "image", filename, data)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	files := req.MultipartForm.File["image"]
	if len(files) != 1 {
		t.Fatalf("期望 1 个文件，实际为 %d", len(files))
	}
	return files[0]
}
