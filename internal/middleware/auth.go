package middleware

import (
	"net/http"

	"github.com/StikhanovKonstantin/ya-note/config"
	"github.com/StikhanovKonstantin/ya-note/internal/infra/cache"
	"github.com/StikhanovKonstantin/ya-note/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginURL is where anonymous requests to protected routes get sent.
const LoginURL = "/auth/login/"

// AuthRequired 鉴权中间件：会话 token 放在 cookie 里。
// 未登录不是报错，而是 302 到登录页并带上 next 参数。
func AuthRequired(cfg *config.Config, rdb *cache.RedisCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cfg.SessionCookie)
		if err != nil || tokenString == "" {
			redirectToLogin(c)
			return
		}

		// 注销过的 token 在黑名单里；Redis 不可用时跳过这一步
		if rdb != nil {
			blacklisted, err := utils.IsTokenBlacklisted(c, rdb, tokenString)
			if err != nil {
				zap.L().Warn("blacklist check failed, continuing", zap.Error(err))
			} else if blacklisted {
				redirectToLogin(c)
				return
			}
		}

		token, err := utils.ValidateToken(cfg, tokenString)
		if err != nil {
			redirectToLogin(c)
			return
		}
		claims, err := utils.ExtractClaims(token)
		if err != nil {
			redirectToLogin(c)
			return
		}

		if uid, ok := claims["user_id"].(string); ok {
			c.Set("user_id", uid)
		} else {
			redirectToLogin(c)
			return
		}
		if name, ok := claims["username"].(string); ok {
			c.Set("username", name)
		}

		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	// next 直接放原始路径，不转义斜杠
	next := c.Request.URL.RequestURI()
	c.Redirect(http.StatusFound, LoginURL+"?next="+next)
	c.Abort()
}
