package repository

import "github.com/AnvilCoder/SecondHand/internal/model"

type ImageStore interface {
	FindByID(id uint) (*model.Image, error)
	Create(image *model.Image) error
	Delete(id uint) error
}
