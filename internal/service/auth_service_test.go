package service

import (
	"testing"

	"github.com/AnvilCoder/SecondHand/internal/common"
	"github.com/AnvilCoder/SecondHand/internal/consts"
	"github.com/AnvilCoder/SecondHand/internal/dto"
	"github.com/AnvilCoder/SecondHand/internal/model"
	"github.com/AnvilCoder/SecondHand/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// 测试内容：验证注册成功路径，密码入库为哈希，空角色归一为普通用户。
func TestRegister_OK(t *testing.T) {
	setupTestDB(t)

	user, err := testServices.Auth.Register(&dto.RegisterRequest{
		Username:  "alice",
		Password:  "abc12345",
		FirstName: "丽",
		LastName:  "王",
		Phone:     "13800138000",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != consts.RoleUser {
		t.Fatalf("期望角色 USER，实际为 %s", user.Role)
	}

	var got model.User
	if err := testDB.First(&got, user.ID).Error; err != nil {
		t.Fatalf("查询用户失败: %v", err)
	}
	if got.Password == "abc12345" {
		t.Fatalf("期望密码以哈希形式入库")
	}
	if bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("abc12345")) != nil {
		t.Fatalf("期望哈希能匹配原密码")
	}
}

// 测试内容：验证注册时的用户名、密码和角色校验。
func TestRegister_Validation(t *testing.T) {
	setupTestDB(t)

	cases := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"纯数字用户名", dto.RegisterRequest{Username: "12345", Password: "abc12345"}},
		{"密码太短", dto.RegisterRequest{Username: "alice", Password: "short"}},
		{"密码太长", dto.RegisterRequest{Username: "alice", Password: "a1234567890123456"}},
		{"非法角色", dto.RegisterRequest{Username: "alice", Password: "abc12345", Role: "ROOT"}},
	}

	for _, tc := range cases {
		_, err := testServices.Auth.Register(&tc.req)
		serviceErr, ok := common.AsServiceError(err)
		if !ok || serviceErr.Code != common.ErrorCodeValidation {
			t.Fatalf("%s: 期望 validation 错误，实际为 %v", tc.name, err)
		}
	}
}

// 测试内容：验证重复用户名注册返回 conflict。
func TestRegister_Conflict(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "alice", "abc12345", consts.RoleUser)

	_, err := testServices.Auth.Register(&dto.RegisterRequest{Username: "alice", Password: "abc12345"})
	serviceErr, ok := common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeConflict {
		t.Fatalf("期望 conflict 错误，实际为 %v", err)
	}
}

// 测试内容：验证注册时显式指定 ADMIN 角色生效。
func TestRegister_AdminRole(t *testing.T) {
	setupTestDB(t)

	user, err := testServices.Auth.Register(&dto.RegisterRequest{
		Username: "boss",
		Password: "abc12345",
		Role:     consts.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != consts.RoleAdmin {
		t.Fatalf("期望角色 ADMIN，实际为 %s", user.Role)
	}
}

// 测试内容：验证登录成功签发可解析的令牌，令牌携带用户 ID 和角色。
func TestLogin_OK(t *testing.T) {
	setupTestDB(t)
	u := createTestUser(t, "alice", "abc12345", consts.RoleAdmin)

	token, err := testServices.Auth.Login(&dto.LoginRequest{Username: "alice", Password: "abc12345"})
	if err != nil || token == "" {
		t.Fatalf("期望登录成功，实际为 token=%q err=%v", token, err)
	}

	claims, err := utils.ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken: %v", err)
	}
	if claims.ID != u.ID || claims.Username != "alice" || claims.Role != consts.RoleAdmin {
		t.Fatalf("非预期 claims: %+v", claims)
	}
}

// 测试内容：验证密码错误与用户不存在返回同一条 unauthorized 消息。
func TestLogin_BadCredentials(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "alice", "abc12345", consts.RoleUser)

	_, errWrong := testServices.Auth.Login(&dto.LoginRequest{Username: "alice", Password: "wrongpass"})
	_, errMissing := testServices.Auth.Login(&dto.LoginRequest{Username: "nobody", Password: "abc12345"})

	for _, err := range []error{errWrong, errMissing} {
		serviceErr, ok := common.AsServiceError(err)
		if !ok || serviceErr.Code != common.ErrorCodeUnauthorized {
			t.Fatalf("期望 unauthorized 错误，实际为 %v", err)
		}
	}
	if errWrong.Error() != errMissing.Error() {
		t.Fatalf("期望两种失败返回同一条消息，实际为 %q vs %q", errWrong.Error(), errMissing.Error())
	}
}
