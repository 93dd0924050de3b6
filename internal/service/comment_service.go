package service

import (
	"errors"

	"github.com/AnvilCoder/SecondHand/internal/common"
	"github.com/AnvilCoder/SecondHand/internal/dto"
	"github.com/AnvilCoder/SecondHand/internal/model"
	"github.com/AnvilCoder/SecondHand/internal/utils"

	"gorm.io/gorm"
)

func (s *CommentService) ensureAdExists(adID uint) error {
	exists, err := s.adStore.Exists(adID)
	if err != nil {
		return err
	}
	if !exists {
		return common.NewNotFoundError("广告不存在")
	}
	return nil
}

// GetComments 列出广告下的全部评论。
func (s *CommentService) GetComments(adID uint) (*dto.CommentsResponse, error) {
	if err := s.ensureAdExists(adID); err != nil {
		return nil, err
	}

	comments, err := s.commentStore.FindByAdID(adID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCommentsResponse(comments)
	return &resp, nil
}

// Create 在广告下发表评论，评论归属于发表评论的用户。
func (s *CommentService) Create(adID, userID uint, req *dto.CreateOrUpdateCommentRequest) (*dto.CommentResponse, error) {
	if err := s.ensureAdExists(adID); err != nil {
		return nil, err
	}
	if ok, msg := utils.ValidateCommentText(req.Text); !ok {
		return nil, common.NewValidationError(msg)
	}

	comment := model.Comment{
		Text:   req.Text,
		UserID: userID,
		AdID:   adID,
	}
	if err := s.commentStore.Create(&comment); err != nil {
		return nil, err
	}

	// 回读带 User 预加载的完整记录
	saved, err := s.commentStore.FindByAdAndID(adID, comment.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCommentResponse(saved)
	return &resp, nil
}

// Update 修改评论正文，评论必须属于指定广告。
func (s *CommentService) Update(adID, commentID uint, req *dto.CreateOrUpdateCommentRequest) (*dto.CommentResponse, error) {
	if ok, msg := utils.ValidateCommentText(req.Text); !ok {
		return nil, common.NewValidationError(msg)
	}

	comment, err := s.commentStore.FindByAdAndID(adID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("评论不存在")
		}
		return nil, err
	}

	if err := s.commentStore.UpdateText(comment.ID, req.Text); err != nil {
		return nil, err
	}

	refreshed, err := s.commentStore.FindByAdAndID(adID, commentID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCommentResponse(refreshed)
	return &resp, nil
}

// Delete 删除评论，评论必须属于指定广告。
func (s *CommentService) Delete(adID, commentID uint) error {
	comment, err := s.commentStore.FindByAdAndID(adID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("评论不存在")
		}
		return err
	}
	return s.commentStore.Delete(comment.ID)
}

// IsOwner 判断评论是否由指定用户发表，评论不存在返回 not found。
func (s *CommentService) IsOwner(adID, commentID, userID uint) (bool, error) {
	comment, err := s.commentStore.FindByAdAndID(adID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, common.NewNotFoundError("评论不存在")
		}
		return false, err
	}
	return comment.UserID == userID, nil
}
