package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	User    UserStore
	Ad      AdStore
	Comment CommentStore
	Image   ImageStore
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewAdRepository(db *gorm.DB) AdStore {
	return &AdRepository{db: db}
}

func NewCommentRepository(db *gorm.DB) CommentStore {
	return &CommentRepository{db: db}
}

func NewImageRepository(db *gorm.DB) ImageStore {
	return &ImageRepository{db: db}
}

func NewRepositories(user UserStore, ad AdStore, comment CommentStore, image ImageStore) *Repositories {
	return &Repositories{
		User:    user,
		Ad:      ad,
		Comment: comment,
		Image:   image,
	}
}
