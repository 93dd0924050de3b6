package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/AnvilCoder/SecondHand/internal/common/httpx"
	"github.com/AnvilCoder/SecondHand/internal/consts"
	"github.com/AnvilCoder/SecondHand/internal/service"
	"github.com/AnvilCoder/SecondHand/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	// existCache 缓存用户存在性，减少数据库查询
	// Key: userID (uint), Value: cachedExistence
	existCache sync.Map
)

const existCacheTTL = 1 * time.Minute

type cachedExistence struct {
	Exists    bool
	ExpiresAt time.Time
}

// ClearUserCache 清除指定用户的存在性缓存，删号后立即失效其令牌。
func ClearUserCache(userID uint) {
	existCache.Delete(userID)

	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		key := service.RedisKey("auth", "user_exists", strconv.FormatUint(uint64(userID), 10))
		_ = redisClient.Del(ctx, key).Err()
	}
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取请求头 Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpx.AbortError(c, http.StatusUnauthorized, "需要认证才能访问")
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httpx.AbortError(c, http.StatusUnauthorized, "Token 格式错误")
			return
		}

		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			httpx.AbortError(c, http.StatusUnauthorized, "Token 无效或已过期")
			return
		}

		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// UserCheck 校验令牌对应的用户仍然存在，删号用户的旧令牌在此拦截。
func UserCheck(userService *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("id")
		if !exists {
			httpx.AbortError(c, http.StatusUnauthorized, "未获取到用户信息")
			return
		}

		uid, ok := userID.(uint)
		if !ok {
			httpx.AbortError(c, http.StatusUnauthorized, "无效的用户ID类型")
			return
		}

		var (
			userExists bool
			found      bool
		)

		// 优先从 Redis 读取
		if redisClient := service.GetRedisClient(); redisClient != nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			key := service.RedisKey("auth", "user_exists", strconv.FormatUint(uint64(uid), 10))
			cachedStr, err := redisClient.Get(ctx, key).Result()
			if err == nil {
				userExists = cachedStr == "1"
				found = true
				existCache.Store(uid, cachedExistence{
					Exists:    userExists,
					ExpiresAt: time.Now().Add(existCacheTTL),
				})
			}
		}

		// Redis 未命中或不可用时，回退本地内存缓存
		if !found {
			if val, ok := existCache.Load(uid); ok {
				cached, typeOk := val.(cachedExistence)
				if typeOk {
					if time.Now().Before(cached.ExpiresAt) {
						userExists = cached.Exists
						found = true
					} else {
						existCache.Delete(uid)
					}
				}
			}
		}

		// 缓存未命中或过期，查询数据库
		if !found {
			var err error
			userExists, err = userService.Exists(uid)
			if err != nil {
				httpx.AbortError(c, http.StatusInternalServerError, "服务器内部错误")
				return
			}

			existCache.Store(uid, cachedExistence{
				Exists:    userExists,
				ExpiresAt: time.Now().Add(existCacheTTL),
			})

			if redisClient := service.GetRedisClient(); redisClient != nil {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()

				key := service.RedisKey("auth", "user_exists", strconv.FormatUint(uint64(uid), 10))
				value := "0"
				if userExists {
					value = "1"
				}
				_ = redisClient.Set(ctx, key, value, existCacheTTL).Err()
			}
		}

		if !userExists {
			httpx.AbortError(c, http.StatusUnauthorized, "用户不存在")
			return
		}

		c.Next()
	}
}

func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exist := c.Get("role")
		role, ok := value.(string)
		if !exist || !ok || role != consts.RoleAdmin {
			httpx.AbortError(c, http.StatusForbidden, "需要管理员权限才能访问")
			return
		}
		c.Next()
	}
}
