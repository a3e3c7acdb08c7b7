package user

import (
	"net/http"
	"strings"

	"github.com/StikhanovKonstantin/ya-note/internal/store"
	"github.com/StikhanovKonstantin/ya-note/internal/utils"
	"github.com/StikhanovKonstantin/ya-note/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (h *UserHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Next": c.Query("next"),
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var form validators.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderLoginForm(c, form, "username and password are required")
		return
	}

	u, err := h.svc.Users.FindByUsername(c, form.Username)
	if err != nil {
		if err == store.ErrUserNotFound {
			h.renderLoginForm(c, form, "invalid credentials")
			return
		}
		zap.L().Error("login lookup failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(form.Password)); err != nil {
		h.renderLoginForm(c, form, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(h.svc.Config, u.ID, u.Username)
	if err != nil {
		zap.L().Error("failed to generate token", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to log in")
		return
	}

	maxAge := int(h.svc.Config.JWTExpirationTime.Seconds())
	c.SetCookie(h.svc.Config.SessionCookie, token, maxAge, "/", "", false, true)

	// 只接受站内路径，拦掉 next 指向别的站点的跳转
	next := form.Next
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/notes/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *UserHandler) renderLoginForm(c *gin.Context, form validators.LoginForm, msg string) {
	// 登录失败重新渲染表单，不暴露用户名是否存在
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Username": form.Username,
		"Next":     form.Next,
		"Error":    msg,
	})
}
