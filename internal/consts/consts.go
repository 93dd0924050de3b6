package consts

const (
	// ApplicationName 服务名称
	ApplicationName = "SecondHand Server"

	// RoleUser 普通用户角色
	RoleUser = "USER"
	// RoleAdmin 管理员角色
	RoleAdmin = "ADMIN"

	// MaxImageSize 图片最大上传限制 (3 MiB)
	MaxImageSize = 3 * 1024 * 1024

	// PasswordMinLen / PasswordMaxLen 密码长度限制（字节）
	PasswordMinLen = 8
	PasswordMaxLen = 16

	// AdTitleMinLen / AdTitleMaxLen 广告标题长度限制（字符）
	AdTitleMinLen = 4
	AdTitleMaxLen = 32

	// AdDescriptionMinLen / AdDescriptionMaxLen 广告描述长度限制（字符）
	AdDescriptionMinLen = 8
	AdDescriptionMaxLen = 64

	// CommentTextMinLen / CommentTextMaxLen 评论正文长度限制（字符）
	CommentTextMinLen = 8
	CommentTextMaxLen = 64
)
