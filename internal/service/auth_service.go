package service

import (
	"errors"
	"log"
	"time"

	"github.com/AnvilCoder/SecondHand/internal/common"
	"github.com/AnvilCoder/SecondHand/internal/config"
	"github.com/AnvilCoder/SecondHand/internal/consts"
	"github.com/AnvilCoder/SecondHand/internal/dto"
	"github.com/AnvilCoder/SecondHand/internal/model"
	"github.com/AnvilCoder/SecondHand/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// verifyCaptcha 当配置开启验证码时校验答案。
func verifyCaptcha(id, answer string) error {
	if !config.Get().Captcha.Enabled {
		return nil
	}
	if id == "" || answer == "" {
		return common.NewValidationError("请完成验证码")
	}
	if !utils.VerifyCaptcha(id, answer) {
		return common.NewValidationError("验证码错误")
	}
	return nil
}

// normalizeRole 注册时的角色归一：留空归为普通用户，只认 USER/ADMIN。
func normalizeRole(role string) (string, error) {
	switch role {
	case "":
		return consts.RoleUser, nil
	case consts.RoleUser, consts.RoleAdmin:
		return role, nil
	}
	return "", common.NewValidationError("无效的角色")
}

// Register 注册新用户，用户名冲突返回 conflict。
func (s *AuthService) Register(req *dto.RegisterRequest) (*model.User, error) {
	if err := verifyCaptcha(req.CaptchaID, req.CaptchaAnswer); err != nil {
		return nil, err
	}
	if ok, msg := utils.ValidateUsername(req.Username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		return nil, common.NewValidationError(msg)
	}

	role, err := normalizeRole(req.Role)
	if err != nil {
		return nil, err
	}

	exists, err := s.userStore.UsernameExists(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewConflictError("用户名已存在")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ 密码加密失败: %v", err)
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}

	user := model.User{
		Username:  req.Username,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      role,
	}
	if err := s.userStore.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login 核对用户名和密码，成功后签发登录令牌。
// 用户不存在与密码错误返回同一条消息，不暴露账号是否注册。
func (s *AuthService) Login(req *dto.LoginRequest) (string, error) {
	if err := verifyCaptcha(req.CaptchaID, req.CaptchaAnswer); err != nil {
		return "", err
	}

	user, err := s.userStore.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", common.NewUnauthorizedError("用户名或密码错误")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", common.NewUnauthorizedError("用户名或密码错误")
	}

	cfg := config.Get()
	token, err := utils.GenerateLoginToken(user.ID, user.Username, user.Role, time.Hour*time.Duration(cfg.JWT.ExpirationHours))
	if err != nil {
		log.Printf("❌ 签发令牌失败: %v", err)
		return "", common.NewInternalError("登录失败，请稍后重试")
	}
	return token, nil
}
