package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/StikhanovKonstantin/ya-note/config"
	"github.com/StikhanovKonstantin/ya-note/internal/models"
	"github.com/StikhanovKonstantin/ya-note/internal/slugger"
	"github.com/StikhanovKonstantin/ya-note/internal/store"
	"github.com/StikhanovKonstantin/ya-note/internal/svc"
	"github.com/StikhanovKonstantin/ya-note/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*gin.Engine, *svc.ServiceContext) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Note{}))

	cfg := &config.Config{
		AppEnv:            "test",
		JWTSecretKey:      "test-secret",
		JWTIssuer:         "ya_note_test",
		JWTExpirationTime: time.Hour,
		SessionCookie:     "ya_note_session",
	}

	s := &svc.ServiceContext{
		Config: cfg,
		DB:     db,
		Notes:  store.NewNoteStore(db),
		Users:  store.NewUserStore(db),
	}
	return New(s), s
}

func createUser(t *testing.T, s *svc.ServiceContext, username string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{Username: username, Password: string(hashed)}
	require.NoError(t, s.DB.Create(u).Error)
	return u
}

func createNote(t *testing.T, s *svc.ServiceContext, author *models.User, title, text, slug string) *models.Note {
	t.Helper()
	n := &models.Note{
		AuthorID: author.ID,
		Title:    title,
		Text:     text,
		Slug:     slugger.Derive(slug, title),
	}
	require.NoError(t, s.DB.Create(n).Error)
	return n
}

// sessionCookie is the test equivalent of Django's force_login.
func sessionCookie(t *testing.T, s *svc.ServiceContext, u *models.User) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateToken(s.Config, u.ID, u.Username)
	require.NoError(t, err)
	return &http.Cookie{Name: s.Config.SessionCookie, Value: token}
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, cookie *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func noteCount(t *testing.T, s *svc.ServiceContext) int64 {
	t.Helper()
	var count int64
	require.NoError(t, s.DB.Model(&models.Note{}).Count(&count).Error)
	return count
}

func reloadNote(t *testing.T, s *svc.ServiceContext, id uint) *models.Note {
	t.Helper()
	var n models.Note
	require.NoError(t, s.DB.First(&n, id).Error)
	return &n
}
