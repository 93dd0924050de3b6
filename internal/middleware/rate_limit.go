package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/AnvilCoder/SecondHand/internal/common/httpx"
	"github.com/AnvilCoder/SecondHand/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// RateLimitMiddleware 创建按 IP 限流的中间件，每个路由组共用一个限流器实例。
// pick 从当前配置快照里取出该组的 RPS 和 Burst。
func RateLimitMiddleware(pick func(config.RateLimitConfig) (float64, int)) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get().RateLimit
		if !cfg.Enabled {
			c.Next()
			return
		}

		currentRPS, currentBurst := pick(cfg)

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})

		ip := c.ClientIP()
		l := limiter.getLimiter(ip)

		// 配置热更新后同步 limit 和 burst
		if l.Limit() != rate.Limit(currentRPS) {
			l.SetLimit(rate.Limit(currentRPS))
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			httpx.AbortError(c, http.StatusTooManyRequests, "请求过于频繁，请稍后再试")
			return
		}
		c.Next()
	}
}

// AuthRateLimit 注册/登录接口的限流。
func AuthRateLimit() gin.HandlerFunc {
	return RateLimitMiddleware(func(cfg config.RateLimitConfig) (float64, int) {
		return cfg.AuthRPS, cfg.AuthBurst
	})
}

// UploadRateLimit 图片上传接口的限流。
func UploadRateLimit() gin.HandlerFunc {
	return RateLimitMiddleware(func(cfg config.RateLimitConfig) (float64, int) {
		return cfg.UploadRPS, cfg.UploadBurst
	})
}
