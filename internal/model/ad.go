package model

import "time"

type Ad struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Price       int       `json:"price" gorm:"not null"`
	ImageID     *uint     `json:"-"` // 广告配图，可为空
	Image       *Image    `json:"-" gorm:"foreignKey:ImageID;references:ID"`
	UserID      uint      `json:"-" gorm:"not null;index"`
	User        User      `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Comments    []Comment `json:"-" gorm:"foreignKey:AdID"`
}
