package repository

import (
	"github.com/AnvilCoder/SecondHand/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func (r *CommentRepository) FindByAdID(adID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("User").Preload("User.Image").
		Where("ad_id = ?", adID).Order("id").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) FindByAdAndID(adID, commentID uint) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Preload("User").Preload("User.Image").
		Where("ad_id = ?", adID).First(&comment, commentID).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) UpdateText(commentID uint, text string) error {
	return r.db.Model(&model.Comment{}).Where("id = ?", commentID).Update("text", text).Error
}

func (r *CommentRepository) Delete(commentID uint) error {
	return r.db.Delete(&model.Comment{}, commentID).Error
}
