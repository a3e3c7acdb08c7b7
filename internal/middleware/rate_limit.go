package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/StikhanovKonstantin/ya-note/internal/infra/cache"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimitMiddleware 按客户端 IP 限流，主要挂在登录接口上。
// Redis 不可用时直接放行。
func RateLimitMiddleware(rdb *cache.RedisCache, action string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate:limit:%s:%s", c.ClientIP(), action)

		allowed, err := rdb.AllowRequest(c, key, limit, window)
		if err != nil {
			zap.L().Warn("rate limit check failed, continuing", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			c.String(http.StatusTooManyRequests, "too many attempts, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
