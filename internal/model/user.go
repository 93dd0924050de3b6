package model

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Username  string    `json:"username" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role" gorm:"not null;default:USER"`
	ImageID   *uint     `json:"-"` // 头像，可为空
	Image     *Image    `json:"-" gorm:"foreignKey:ImageID;references:ID"`
	Ads       []Ad      `json:"-" gorm:"foreignKey:UserID"`
	Comments  []Comment `json:"-" gorm:"foreignKey:UserID"`
}
