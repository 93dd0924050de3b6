package repository

import "github.com/AnvilCoder/SecondHand/internal/model"

type CommentStore interface {
	FindByAdID(adID uint) ([]model.Comment, error)
	FindByAdAndID(adID, commentID uint) (*model.Comment, error)
	Create(comment *model.Comment) error
	UpdateText(commentID uint, text string) error
	Delete(commentID uint) error
}
