package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AnvilCoder/SecondHand/internal/consts"
	"github.com/AnvilCoder/SecondHand/internal/model"
	"github.com/AnvilCoder/SecondHand/internal/utils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证注册接口返回 201，重复注册返回 409。
func TestRegisterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	r := gin.New()
	r.POST("/register", testHandler.Register)

	payload, _ := json.Marshal(gin.H{"username": "alice", "password": "abc12345"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(payload)))
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var count int64
	_ = testDB.Model(&model.User{}).Where("username = ?", "alice").Count(&count).Error
	if count != 1 {
		t.Fatalf("期望用户已入库")
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(payload)))
	if w2.Code != http.StatusConflict {
		t.Fatalf("期望 409，实际为 %d body=%s", w2.Code, w2.Body.String())
	}
}

// 测试内容：验证请求体缺字段时返回 400。
func TestRegisterHandler_BadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	r := gin.New()
	r.POST("/register", testHandler.Register)

	payload, _ := json.Marshal(gin.H{"username": "alice"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(payload)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}
}

// 测试内容：验证登录接口签发可解析令牌，密码错误返回 401。
func TestLoginHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	u := createTestUser(t, "alice", consts.RoleUser)

	r := gin.New()
	r.POST("/login", testHandler.Login)

	payload, _ := json.Marshal(gin.H{"username": "alice", "password": "abc12345"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(payload)))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	claims, err := utils.ParseLoginToken(resp.Token)
	if err != nil {
		t.Fatalf("ParseLoginToken: %v", err)
	}
	if claims.ID != u.ID {
		t.Fatalf("期望令牌携带用户 ID %d，实际为 %d", u.ID, claims.ID)
	}

	payloadBad, _ := json.Marshal(gin.H{"username": "alice", "password": "wrongpass"})
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(payloadBad)))
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w2.Code)
	}
}

// 测试内容：验证验证码未开启时接口返回 404。
func TestGetCaptcha_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	r := gin.New()
	r.GET("/captcha", testHandler.GetCaptcha)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/captcha", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}
}
