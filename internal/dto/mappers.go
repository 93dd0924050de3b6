package dto

import (
	"fmt"

	"github.com/AnvilCoder/SecondHand/internal/model"
)

// ImageURL 把图片 ID 映射为访问地址；无图时返回 nil。
func ImageURL(imageID *uint) *string {
	if imageID == nil {
		return nil
	}
	url := fmt.Sprintf("/api/images/%d", *imageID)
	return &url
}

// ToAdResponse 广告实体 -> 列表项。
func ToAdResponse(ad *model.Ad) AdResponse {
	return AdResponse{
		Author: ad.UserID,
		Image:  ImageURL(ad.ImageID),
		Pk:     ad.ID,
		Price:  ad.Price,
		Title:  ad.Title,
	}
}

// ToAdsResponse 广告实体切片 -> 带总数的列表。
func ToAdsResponse(ads []model.Ad) AdsResponse {
	results := make([]AdResponse, 0, len(ads))
	for i := range ads {
		results = append(results, ToAdResponse(&ads[i]))
	}
	return AdsResponse{Count: len(results), Results: results}
}

// ToExtendedAdResponse 广告实体 -> 详情，需要预加载 User。
func ToExtendedAdResponse(ad *model.Ad) ExtendedAdResponse {
	return ExtendedAdResponse{
		Pk:              ad.ID,
		AuthorFirstName: ad.User.FirstName,
		AuthorLastName:  ad.User.LastName,
		Description:     ad.Description,
		Email:           ad.User.Username,
		Image:           ImageURL(ad.ImageID),
		Phone:           ad.User.Phone,
		Price:           ad.Price,
		Title:           ad.Title,
	}
}

// ToCommentResponse 评论实体 -> 响应项，需要预加载 User。
func ToCommentResponse(comment *model.Comment) CommentResponse {
	return CommentResponse{
		Author:          comment.UserID,
		AuthorImage:     ImageURL(comment.User.ImageID),
		AuthorFirstName: comment.User.FirstName,
		CreatedAt:       comment.CreatedAt.UnixMilli(),
		Pk:              comment.ID,
		Text:            comment.Text,
	}
}

// ToCommentsResponse 评论实体切片 -> 带总数的列表。
func ToCommentsResponse(comments []model.Comment) CommentsResponse {
	results := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		results = append(results, ToCommentResponse(&comments[i]))
	}
	return CommentsResponse{Count: len(results), Results: results}
}

// ToUserResponse 用户实体 -> 资料响应。
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role,
		Image:     ImageURL(user.ImageID),
	}
}
