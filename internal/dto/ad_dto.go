package dto

// CreateOrUpdateAdRequest 创建/修改广告的请求体
type CreateOrUpdateAdRequest struct {
	Title       string `json:"title" binding:"required"`
	Price       *int   `json:"price" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// AdResponse 广告列表项
type AdResponse struct {
	Author uint    `json:"author"` // 发布者用户 ID
	Image  *string `json:"image"`  // 图片访问地址，可为空
	Pk     uint    `json:"pk"`
	Price  int     `json:"price"`
	Title  string  `json:"title"`
}

// AdsResponse 广告列表（带总数）
type AdsResponse struct {
	Count   int          `json:"count"`
	Results []AdResponse `json:"results"`
}

// ExtendedAdResponse 广告详情（含发布者联系信息）
type ExtendedAdResponse struct {
	Pk              uint    `json:"pk"`
	AuthorFirstName string  `json:"authorFirstName"`
	AuthorLastName  string  `json:"authorLastName"`
	Description     string  `json:"description"`
	Email           string  `json:"email"` // 登录名即邮箱
	Image           *string `json:"image"`
	Phone           string  `json:"phone"`
	Price           int     `json:"price"`
	Title           string  `json:"title"`
}
