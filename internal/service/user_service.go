package service

import (
	"errors"
	"log"
	"mime/multipart"

	"github.com/AnvilCoder/SecondHand/internal/common"
	"github.com/AnvilCoder/SecondHand/internal/dto"
	"github.com/AnvilCoder/SecondHand/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetProfile 获取当前用户资料。
func (s *UserService) GetProfile(userID uint) (*dto.UserResponse, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// UpdateProfile 更新资料，只改 firstName、lastName、phone 三个字段。
func (s *UserService) UpdateProfile(userID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := s.userStore.UpdateProfile(userID, req.FirstName, req.LastName, req.Phone); err != nil {
		return nil, err
	}
	return s.GetProfile(userID)
}

// SetPassword 校验当前密码后换新密码，当前密码错误返回 unauthorized。
func (s *UserService) SetPassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("用户不存在")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return common.NewUnauthorizedError("当前密码错误")
	}

	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return common.NewValidationError(msg)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ 密码加密失败: %v", err)
		return common.NewInternalError("修改密码失败，请稍后重试")
	}
	return s.userStore.UpdatePasswordByID(userID, string(hashed))
}

// UpdateAvatar 换头像：先落盘新图再挂接，最后清理旧图。
func (s *UserService) UpdateAvatar(userID uint, file *multipart.FileHeader) (*dto.UserResponse, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		return nil, err
	}
	oldImageID := user.ImageID

	record, err := s.imageService.Save(file)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.UpdateAvatar(userID, &record.ID); err != nil {
		_ = s.imageService.Delete(record.ID)
		return nil, err
	}

	if oldImageID != nil {
		if err := s.imageService.Delete(*oldImageID); err != nil {
			log.Printf("⚠️ 清理旧头像失败: %v", err)
		}
	}
	return s.GetProfile(userID)
}

// Exists 判断用户是否仍然存在，供登录态校验使用。
func (s *UserService) Exists(userID uint) (bool, error) {
	return s.userStore.Exists(userID)
}

// List 管理端分页列出用户。
func (s *UserService) List(offset, limit int) ([]dto.UserResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	users, total, err := s.userStore.ListUsers(offset, limit)
	if err != nil {
		return nil, 0, err
	}

	results := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		results = append(results, dto.ToUserResponse(&users[i]))
	}
	return results, total, nil
}

// Delete 删除用户及其名下广告、评论和图片，文件随记录一并清理。
func (s *UserService) Delete(userID uint) error {
	orphaned, err := s.userStore.DeleteCascade(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("用户不存在")
		}
		return err
	}
	for i := range orphaned {
		s.imageService.RemoveFile(&orphaned[i])
	}
	return nil
}
