package repository

import "github.com/AnvilCoder/SecondHand/internal/model"

type AdStore interface {
	FindByID(id uint) (*model.Ad, error)
	FindAll() ([]model.Ad, error)
	FindByUserID(userID uint) ([]model.Ad, error)
	Create(ad *model.Ad) error
	UpdateFields(adID uint, title, description string, price int) error
	UpdateImage(adID uint, imageID *uint) error
	OwnerID(adID uint) (uint, error)
	Exists(adID uint) (bool, error)
	DeleteCascade(adID uint) (*model.Image, error)
}
