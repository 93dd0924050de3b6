package repository

import "github.com/AnvilCoder/SecondHand/internal/model"

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	UsernameExists(username string) (bool, error)
	Create(user *model.User) error
	UpdateProfile(userID uint, firstName, lastName, phone string) error
	UpdatePasswordByID(userID uint, hashedPassword string) error
	UpdateAvatar(userID uint, imageID *uint) error
	Exists(id uint) (bool, error)
	ListUsers(offset, limit int) ([]model.User, int64, error)
	// DeleteCascade 在单事务内删除用户及其名下广告、评论，
	// 返回因此孤立的图片记录（广告配图 + 头像），由调用方负责清理文件。
	DeleteCascade(userID uint) ([]model.Image, error)
}
