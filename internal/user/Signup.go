package user

import (
	"net/http"

	"github.com/StikhanovKonstantin/ya-note/internal/models"
	"github.com/StikhanovKonstantin/ya-note/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (h *UserHandler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", nil)
}

func (h *UserHandler) Signup(c *gin.Context) {
	var form validators.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"Username": form.Username,
			"Errors": []*validators.FieldError{{
				Field:   "password",
				Message: "username is required and password must be at least 6 characters",
			}},
		})
		return
	}

	exists, err := h.svc.Users.UsernameExists(c, form.Username)
	if err != nil {
		zap.L().Error("signup lookup failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "database error")
		return
	}
	if exists {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"Username": form.Username,
			"Errors":   []*validators.FieldError{validators.DuplicateUsername(form.Username)},
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("password hash failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to sign up")
		return
	}

	u := models.User{
		Username: form.Username,
		Password: string(hashed),
	}
	if err := h.svc.Users.Create(c, &u); err != nil {
		zap.L().Error("create user failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to sign up")
		return
	}

	c.Redirect(http.StatusFound, "/auth/login/")
}
