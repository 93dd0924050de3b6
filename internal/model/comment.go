package model

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"` // 创建后不可变
	UserID    uint      `json:"-" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID"`
	AdID      uint      `json:"-" gorm:"not null;index"`
	Ad        Ad        `json:"-" gorm:"foreignKey:AdID;references:ID"`
}
