package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/AnvilCoder/SecondHand/internal/common/httpx"
	"github.com/AnvilCoder/SecondHand/internal/consts"

	"github.com/gin-gonic/gin"
)

// 普通 JSON 接口请求体上限
const maxJSONBodySize = 2 * 1024 * 1024

// 上传接口在图片上限之外留的 multipart 编码余量
const multipartOverhead = 1 * 1024 * 1024

// BodyLimitMiddleware 限制普通接口的请求体大小，上传类路由跳过。
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasSuffix(path, "/image") || (c.Request.Method == http.MethodPost && strings.HasSuffix(path, "/ads")) {
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBodySize)
		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小。
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxBytes := int64(consts.MaxImageSize + multipartOverhead)

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			httpx.AbortError(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("文件大小不能超过 %dMB", consts.MaxImageSize/1024/1024))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
