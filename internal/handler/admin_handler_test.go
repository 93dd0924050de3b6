package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AnvilCoder/SecondHand/internal/consts"
	"github.com/AnvilCoder/SecondHand/internal/middleware"
	"github.com/AnvilCoder/SecondHand/internal/model"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证管理端用户列表分页返回，普通用户被 AdminCheck 拦截。
func TestAdminListUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	admin := createTestUser(t, "boss", consts.RoleAdmin)
	createTestUser(t, "alice", consts.RoleUser)
	createTestUser(t, "bob", consts.RoleUser)

	r := gin.New()
	r.GET("/admin/users", asUser(admin), middleware.AdminCheck(), testHandler.AdminListUsers)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users?offset=0&limit=2", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Count   int64             `json:"count"`
		Results []json.RawMessage `json:"results"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Count != 3 || len(resp.Results) != 2 {
		t.Fatalf("期望 count=3 len=2，实际为 count=%d len=%d", resp.Count, len(resp.Results))
	}

	// 普通用户访问管理接口
	user := model.User{}
	_ = testDB.Where("username = ?", "alice").First(&user).Error
	r2 := gin.New()
	r2.GET("/admin/users", asUser(&user), middleware.AdminCheck(), testHandler.AdminListUsers)
	w2 := httptest.NewRecorder()
	r2.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/admin/users", nil))
	if w2.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w2.Code)
	}
}

// 测试内容：验证管理端删除用户返回 204 并级联清理其数据。
func TestAdminDeleteUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	admin := createTestUser(t, "boss", consts.RoleAdmin)
	victim := createTestUser(t, "alice", consts.RoleUser)
	createTestAd(t, victim.ID, "九成新自行车")

	r := gin.New()
	r.DELETE("/admin/users/:id", asUser(admin), middleware.AdminCheck(), testHandler.AdminDeleteUser)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/users/2", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("期望 204，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var userCount, adCount int64
	_ = testDB.Model(&model.User{}).Where("id = ?", victim.ID).Count(&userCount).Error
	_ = testDB.Model(&model.Ad{}).Count(&adCount).Error
	if userCount != 0 || adCount != 0 {
		t.Fatalf("期望用户及其广告被删除，实际为 users=%d ads=%d", userCount, adCount)
	}

	// 删除不存在的用户返回 404
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodDelete, "/admin/users/2", nil))
	if w2.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w2.Code)
	}
}
