package dto

// UserResponse 当前用户资料
type UserResponse struct {
	ID        uint    `json:"id"`
	Email     string  `json:"email"` // 登录名即邮箱
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Role      string  `json:"role"`
	Image     *string `json:"image"` // 头像访问地址，可为空
}

// UpdateUserRequest 更新资料请求体，只允许改这三个字段
type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// NewPasswordRequest 修改密码请求体
type NewPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
