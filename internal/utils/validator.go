package utils

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/AnvilCoder/SecondHand/internal/consts"
)

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	// 允许英文大小写、数字和下划线
	if matched, _ := regexp.MatchString(`^[a-zA-Z0-9_]+$`, username); !matched {
		return false, "用户名只能包含英文大小写、数字和下划线"
	}

	// 不能是纯数字
	if matched, _ := regexp.MatchString(`^[0-9]+$`, username); matched {
		return false, "用户名不能为纯数字"
	}

	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < consts.PasswordMinLen {
		return false, fmt.Sprintf("密码最少%d位", consts.PasswordMinLen)
	}
	if len(password) > consts.PasswordMaxLen {
		return false, fmt.Sprintf("密码最多%d位", consts.PasswordMaxLen)
	}

	if matched, _ := regexp.MatchString(`^[a-zA-Z0-9[:punct:]]+$`, password); !matched {
		return false, "密码只能包含英文大小写、数字和符号"
	}

	return true, ""
}

// ValidateAdTitle 校验广告标题长度（4~32 个字符）。
func ValidateAdTitle(title string) (bool, string) {
	n := utf8.RuneCountInString(title)
	if n < consts.AdTitleMinLen || n > consts.AdTitleMaxLen {
		return false, fmt.Sprintf("标题长度必须在%d~%d个字符之间", consts.AdTitleMinLen, consts.AdTitleMaxLen)
	}
	return true, ""
}

// ValidateAdDescription 校验广告描述长度（8~64 个字符）。
func ValidateAdDescription(description string) (bool, string) {
	n := utf8.RuneCountInString(description)
	if n < consts.AdDescriptionMinLen || n > consts.AdDescriptionMaxLen {
		return false, fmt.Sprintf("描述长度必须在%d~%d个字符之间", consts.AdDescriptionMinLen, consts.AdDescriptionMaxLen)
	}
	return true, ""
}

// ValidateAdPrice 校验广告价格（非负整数）。
func ValidateAdPrice(price int) (bool, string) {
	if price < 0 {
		return false, "价格不能为负数"
	}
	return true, ""
}

// ValidateCommentText 校验评论内容长度（8~64 个字符）。
func ValidateCommentText(text string) (bool, string) {
	n := utf8.RuneCountInString(text)
	if n < consts.CommentTextMinLen || n > consts.CommentTextMaxLen {
		return false, fmt.Sprintf("评论长度必须在%d~%d个字符之间", consts.CommentTextMinLen, consts.CommentTextMaxLen)
	}
	return true, ""
}

// ValidateImageFilename 校验上传文件名：
// 禁止路径穿越片段 ".." 和非法字符 < > "
func ValidateImageFilename(filename string) (bool, string) {
	if filename == "" {
		return false, "文件名不能为空"
	}
	if strings.Contains(filename, "..") {
		return false, "文件名包含非法片段"
	}
	if strings.ContainsAny(filename, `<>"`) {
		return false, "文件名包含非法字符"
	}
	return true, ""
}

// ValidateImageContent 嗅探文件真实类型，只允许 JPEG 与 PNG。
// 返回真实 MIME 类型供入库记录。
func ValidateImageContent(reader io.ReadSeeker) (bool, string, string) {
	buffer := make([]byte, 512)
	_, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return false, "", "读取文件内容失败"
	}

	// 重置读取位置
	if _, err := reader.Seek(0, 0); err != nil {
		return false, "", "重置文件读取位置失败"
	}

	contentType := http.DetectContentType(buffer)
	switch contentType {
	case "image/jpeg", "image/png":
		return true, contentType, ""
	}

	return false, contentType, "仅支持 JPEG 和 PNG 图片，实际类型为 " + contentType
}
