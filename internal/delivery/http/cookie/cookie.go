// Package cookie reads and writes the two dashboard cookies: the session and
// the pending two-factor state.
package cookie

import (
	"net/http"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"

	"github.com/labstack/echo/v4"
)

// Jar applies the configured cookie names and flags.
type Jar struct {
	sessionName string
	pendingName string
	secure      bool
	domain      string
}

func NewJar(cfg *config.Config) *Jar {
	jar := &Jar{
		sessionName: "token_middleware",
		pendingName: "two_factor_pending",
	}
	if cfg.Session != nil {
		if cfg.Session.CookieName != "" {
			jar.sessionName = cfg.Session.CookieName
		}
		if cfg.Session.PendingCookieName != "" {
			jar.pendingName = cfg.Session.PendingCookieName
		}
		jar.secure = cfg.Session.Secure
		jar.domain = cfg.Session.Domain
	}

	return jar
}

func (j *Jar) SessionName() string { return j.sessionName }

func (j *Jar) Session(c echo.Context) string { return j.read(c, j.sessionName) }

func (j *Jar) Pending(c echo.Context) string { return j.read(c, j.pendingName) }

func (j *Jar) SetSession(c echo.Context, value string, expires time.Time) {
	c.SetCookie(j.build(j.sessionName, value, expires))
}

func (j *Jar) SetPending(c echo.Context, value string, expires time.Time) {
	c.SetCookie(j.build(j.pendingName, value, expires))
}

func (j *Jar) ClearSession(c echo.Context) {
	c.SetCookie(j.expired(j.sessionName))
}

func (j *Jar) ClearPending(c echo.Context) {
	c.SetCookie(j.expired(j.pendingName))
}

func (j *Jar) read(c echo.Context, name string) string {
	ck, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return ck.Value
}

func (j *Jar) build(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   j.domain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *Jar) expired(name string) *http.Cookie {
	ck := j.build(name, "", time.Unix(0, 0))
	ck.MaxAge = -1

	return ck
}
