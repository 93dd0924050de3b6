package repository

import (
	"github.com/AnvilCoder/SecondHand/internal/model"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func (r *ImageRepository) FindByID(id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

func (r *ImageRepository) Delete(id uint) error {
	return r.db.Delete(&model.Image{}, id).Error
}
