package repository

import (
	"github.com/AnvilCoder/SecondHand/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Image").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UsernameExists(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) UpdateProfile(userID uint, firstName, lastName, phone string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"phone":      phone,
	}).Error
}

func (r *UserRepository) UpdatePasswordByID(userID uint, hashedPassword string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("password", hashedPassword).Error
}

func (r *UserRepository) UpdateAvatar(userID uint, imageID *uint) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("image_id", imageID).Error
}

func (r *UserRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) ListUsers(offset, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.db.Model(&model.User{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) DeleteCascade(userID uint) ([]model.Image, error) {
	var orphaned []model.Image

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		// 收集名下广告及其配图
		var ads []model.Ad
		if err := tx.Where("user_id = ?", userID).Find(&ads).Error; err != nil {
			return err
		}

		var imageIDs []uint
		adIDs := make([]uint, 0, len(ads))
		for _, ad := range ads {
			adIDs = append(adIDs, ad.ID)
			if ad.ImageID != nil {
				imageIDs = append(imageIDs, *ad.ImageID)
			}
		}
		if user.ImageID != nil {
			imageIDs = append(imageIDs, *user.ImageID)
		}

		// 先删子后删父：广告下的评论 -> 用户自己的评论 -> 广告 -> 图片记录 -> 用户
		if len(adIDs) > 0 {
			if err := tx.Where("ad_id IN ?", adIDs).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if len(adIDs) > 0 {
			if err := tx.Where("id IN ?", adIDs).Delete(&model.Ad{}).Error; err != nil {
				return err
			}
		}
		if len(imageIDs) > 0 {
			if err := tx.Where("id IN ?", imageIDs).Find(&orphaned).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", imageIDs).Delete(&model.Image{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&user).Error
	})

	if err != nil {
		return nil, err
	}
	return orphaned, nil
}
