package dto

// CreateOrUpdateCommentRequest 创建/修改评论的请求体
type CreateOrUpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse 评论项
type CommentResponse struct {
	Author          uint    `json:"author"` // 评论者用户 ID
	AuthorImage     *string `json:"authorImage"`
	AuthorFirstName string  `json:"authorFirstName"`
	CreatedAt       int64   `json:"createdAt"` // Unix 毫秒
	Pk              uint    `json:"pk"`
	Text            string  `json:"text"`
}

// CommentsResponse 评论列表（带总数）
type CommentsResponse struct {
	Count   int               `json:"count"`
	Results []CommentResponse `json:"results"`
}
