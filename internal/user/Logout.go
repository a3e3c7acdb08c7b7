package user

import (
	"net/http"

	"github.com/StikhanovKonstantin/ya-note/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logout 公开页面：清 cookie，能连上 Redis 就把 token 拉黑
func (h *UserHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.svc.Config.SessionCookie)
	if err == nil && token != "" && h.svc.Cache != nil {
		expiration := h.svc.Config.JWTExpirationTime
		if err := utils.AddTokenToBlacklist(c, h.svc.Cache, token, expiration); err != nil {
			zap.L().Warn("failed to blacklist token on logout", zap.Error(err))
		}
	}

	c.SetCookie(h.svc.Config.SessionCookie, "", -1, "/", "", false, true)
	c.HTML(http.StatusOK, "logout.html", nil)
}
