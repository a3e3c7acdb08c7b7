package router

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/StikhanovKonstantin/ya-note/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupLoginFlow(t *testing.T) {
	r, s := newTestApp(t)

	form := url.Values{"username": {"newcomer"}, "password": {"password123"}}
	rec := doRequest(t, r, http.MethodPost, "/auth/signup/", nil, form)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login/", rec.Header().Get("Location"))

	var u models.User
	require.NoError(t, s.DB.Where("username = ?", "newcomer").First(&u).Error)
	assert.NotEqual(t, "password123", u.Password, "password must be stored hashed")

	rec = doRequest(t, r, http.MethodPost, "/auth/login/", nil, form)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/notes/", rec.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == s.Config.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session, "login must set the session cookie")

	rec = doRequest(t, r, http.MethodGet, "/notes/", session, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginHonorsNextParam(t *testing.T) {
	r, s := newTestApp(t)
	createUser(t, s, "author")

	form := url.Values{"username": {"author"}, "password": {"password123"}, "next": {"/add/"}}
	rec := doRequest(t, r, http.MethodPost, "/auth/login/", nil, form)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/add/", rec.Header().Get("Location"))
}

func TestLoginIgnoresOffsiteNext(t *testing.T) {
	r, s := newTestApp(t)
	createUser(t, s, "author")

	for _, next := range []string{"https://evil.example", "//evil.example/phish", "evil"} {
		form := url.Values{"username": {"author"}, "password": {"password123"}, "next": {next}}
		rec := doRequest(t, r, http.MethodPost, "/auth/login/", nil, form)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/notes/", rec.Header().Get("Location"), "next %q must not be followed", next)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, s := newTestApp(t)
	createUser(t, s, "author")

	form := url.Values{"username": {"author"}, "password": {"wrong-password"}}
	rec := doRequest(t, r, http.MethodPost, "/auth/login/", nil, form)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")

	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, s.Config.SessionCookie, c.Name, "no session cookie on failed login")
	}
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	r, s := newTestApp(t)
	createUser(t, s, "taken")

	form := url.Values{"username": {"taken"}, "password": {"password123"}}
	rec := doRequest(t, r, http.MethodPost, "/auth/signup/", nil, form)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "taken is already taken")

	var count int64
	require.NoError(t, s.DB.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLogoutClearsCookie(t *testing.T) {
	r, s := newTestApp(t)
	u := createUser(t, s, "author")
	cookie := sessionCookie(t, s, u)

	rec := doRequest(t, r, http.MethodPost, "/auth/logout/", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == s.Config.SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must expire the session cookie")
}
