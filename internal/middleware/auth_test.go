package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnvilCoder/SecondHand/internal/consts"
	"github.com/AnvilCoder/SecondHand/internal/model"
	"github.com/AnvilCoder/SecondHand/internal/utils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证缺少 Authorization 头时返回 401。
func TestJWTAuth_MissingHeaderUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}
}

// 测试内容：验证非 Bearer 格式与非法令牌都返回 401。
func TestJWTAuth_BadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, header := range []string{"Basic abc", "Bearer not-a-token"} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%q: 期望 401，实际为 %d", header, w.Code)
		}
	}
}

// 测试内容：验证有效登录令牌会在上下文中设置用户信息。
func TestJWTAuth_ValidTokenSetsContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", JWTAuth(), func(c *gin.Context) {
		id, _ := c.Get("id")
		username, _ := c.Get("username")
		role, _ := c.Get("role")
		if id != uint(1) || username != "alice" || role != consts.RoleAdmin {
			c.JSON(500, gin.H{"bad": true})
			return
		}
		c.Status(http.StatusOK)
	})

	token, err := utils.GenerateLoginToken(1, "alice", consts.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}

// 测试内容：验证 UserCheck 放行存在的用户，拦截已删除用户的旧令牌。
func TestUserCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	resetExistCache()

	u := model.User{Username: "alice", Password: "x", Role: consts.RoleUser}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	r := gin.New()
	r.GET("/x",
		func(c *gin.Context) { c.Set("id", u.ID); c.Next() },
		UserCheck(testUserService),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}

	// 删除用户并清缓存后，旧令牌被拦截
	if err := gdb.Delete(&model.User{}, u.ID).Error; err != nil {
		t.Fatalf("删除用户失败: %v", err)
	}
	ClearUserCache(u.ID)

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w2.Code)
	}
}

// 测试内容：验证 AdminCheck 只放行 ADMIN 角色。
func TestAdminCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeRouter := func(role string, setRole bool) *gin.Engine {
		r := gin.New()
		r.GET("/x",
			func(c *gin.Context) {
				if setRole {
					c.Set("role", role)
				}
				c.Next()
			},
			AdminCheck(),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return r
	}

	w := httptest.NewRecorder()
	makeRouter(consts.RoleAdmin, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	makeRouter(consts.RoleUser, true).ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w2.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w2.Code)
	}

	w3 := httptest.NewRecorder()
	makeRouter("", false).ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w3.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w3.Code)
	}
}
