package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJar_SetAndRead(t *testing.T) {
	jar := NewJar(&config.Config{Session: &config.SessionConfig{Secure: true, Domain: "admin.miorish.com"}})
	expires := time.Now().Add(time.Hour)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), rec)

	jar.SetSession(c, "signed", expires)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	ck := cookies[0]
	assert.Equal(t, "token_middleware", ck.Name)
	assert.Equal(t, "signed", ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, "admin.miorish.com", ck.Domain)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "token_middleware", Value: "signed"})
	req.AddCookie(&http.Cookie{Name: "two_factor_pending", Value: "pending"})
	c = e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "signed", jar.Session(c))
	assert.Equal(t, "pending", jar.Pending(c))
}

func TestJar_CustomNamesAndClear(t *testing.T) {
	jar := NewJar(&config.Config{Session: &config.SessionConfig{CookieName: "sid", PendingCookieName: "otp"}})
	assert.Equal(t, "sid", jar.SessionName())

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/logout", nil), rec)

	jar.ClearSession(c)
	jar.ClearPending(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, "otp", cookies[1].Name)
	for _, ck := range cookies {
		assert.Empty(t, ck.Value)
		assert.Equal(t, -1, ck.MaxAge)
	}
}

func TestJar_MissingCookie(t *testing.T) {
	jar := NewJar(&config.Config{})
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), httptest.NewRecorder())

	assert.Empty(t, jar.Session(c))
	assert.Empty(t, jar.Pending(c))
}
