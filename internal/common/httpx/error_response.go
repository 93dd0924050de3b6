package httpx

import (
	"net/http"

	"github.com/AnvilCoder/SecondHand/internal/common"

	"github.com/gin-gonic/gin"
)

// ErrorBody 统一的错误响应体，所有失败响应都使用 {status, message} 信封。
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// WriteError 按指定状态码输出错误信封。
func WriteError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Status: status, Message: message})
}

// AbortError 输出错误信封并中断后续 handler。
func AbortError(c *gin.Context, status int, message string) {
	c.Abort()
	WriteError(c, status, message)
}

// WriteServiceError 将 service 层错误翻译为标准 HTTP 错误响应。
// 未分类的错误统一折叠为 500，不泄露内部细节。
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := common.AsServiceError(err); ok {
		WriteError(c, serviceErrorStatus(serviceErr.Code), serviceErr.Message)
		return
	}
	WriteError(c, http.StatusInternalServerError, fallbackMessage)
}

func serviceErrorStatus(code common.ErrorCode) int {
	switch code {
	case common.ErrorCodeValidation:
		return http.StatusBadRequest
	case common.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case common.ErrorCodeForbidden:
		return http.StatusForbidden
	case common.ErrorCodeConflict:
		return http.StatusConflict
	case common.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
