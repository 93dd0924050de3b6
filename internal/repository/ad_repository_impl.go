package repository

import (
	"github.com/AnvilCoder/SecondHand/internal/model"

	"gorm.io/gorm"
)

type AdRepository struct {
	db *gorm.DB
}

func (r *AdRepository) FindByID(id uint) (*model.Ad, error) {
	var ad model.Ad
	if err := r.db.Preload("Image").Preload("User").Preload("User.Image").First(&ad, id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *AdRepository) FindAll() ([]model.Ad, error) {
	var ads []model.Ad
	if err := r.db.Preload("Image").Order("id").Find(&ads).Error; err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *AdRepository) FindByUserID(userID uint) ([]model.Ad, error) {
	var ads []model.Ad
	if err := r.db.Preload("Image").Where("user_id = ?", userID).Order("id").Find(&ads).Error; err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *AdRepository) Create(ad *model.Ad) error {
	return r.db.Create(ad).Error
}

func (r *AdRepository) UpdateFields(adID uint, title, description string, price int) error {
	return r.db.Model(&model.Ad{}).Where("id = ?", adID).Updates(map[string]interface{}{
		"title":       title,
		"description": description,
		"price":       price,
	}).Error
}

func (r *AdRepository) UpdateImage(adID uint, imageID *uint) error {
	return r.db.Model(&model.Ad{}).Where("id = ?", adID).Update("image_id", imageID).Error
}

func (r *AdRepository) OwnerID(adID uint) (uint, error) {
	var ad model.Ad
	if err := r.db.Select("id", "user_id").First(&ad, adID).Error; err != nil {
		return 0, err
	}
	return ad.UserID, nil
}

func (r *AdRepository) Exists(adID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Ad{}).Where("id = ?", adID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AdRepository) DeleteCascade(adID uint) (*model.Image, error) {
	var orphaned *model.Image

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ad model.Ad
		if err := tx.First(&ad, adID).Error; err != nil {
			return err
		}

		// 先删子后删父：广告下的评论 -> 广告 -> 配图记录
		if err := tx.Where("ad_id = ?", adID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&ad).Error; err != nil {
			return err
		}
		if ad.ImageID != nil {
			var img model.Image
			if err := tx.First(&img, *ad.ImageID).Error; err != nil {
				return err
			}
			if err := tx.Delete(&img).Error; err != nil {
				return err
			}
			orphaned = &img
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return orphaned, nil
}
