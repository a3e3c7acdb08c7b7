// Package router builds the Gin engine with the full route table so
// both cmd/main and the tests run the same application.
package router

import (
	"time"

	"github.com/StikhanovKonstantin/ya-note/internal/middleware"
	"github.com/StikhanovKonstantin/ya-note/internal/note"
	"github.com/StikhanovKonstantin/ya-note/internal/svc"
	"github.com/StikhanovKonstantin/ya-note/internal/user"
	"github.com/StikhanovKonstantin/ya-note/web"

	"github.com/gin-gonic/gin"
)

func New(s *svc.ServiceContext) *gin.Engine {
	if s.Config.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	r.SetHTMLTemplate(web.Templates())

	notes := note.NewNoteHandler(s)
	users := user.NewUserHandler(s)

	// 公开路由
	r.GET("/", notes.Home)
	r.GET("/auth/login/", users.LoginForm)
	r.POST("/auth/login/", middleware.RateLimitMiddleware(s.Cache, "login", 10, time.Minute), users.Login)
	r.GET("/auth/logout/", users.Logout)
	r.POST("/auth/logout/", users.Logout)
	r.GET("/auth/signup/", users.SignupForm)
	r.POST("/auth/signup/", users.Signup)

	// 鉴权路由
	auth := r.Group("/", middleware.AuthRequired(s.Config, s.Cache))
	{
		auth.GET("notes/", notes.List)
		auth.GET("note/:slug/", notes.Detail)
		auth.GET("add/", notes.AddForm)
		auth.POST("add/", notes.Add)
		auth.GET("edit/:slug/", notes.EditForm)
		auth.POST("edit/:slug/", notes.Edit)
		auth.GET("delete/:slug/", notes.DeleteConfirm)
		auth.POST("delete/:slug/", notes.Delete)
		auth.DELETE("delete/:slug/", notes.Delete)
		auth.GET("done/", notes.Success)
	}

	return r
}
