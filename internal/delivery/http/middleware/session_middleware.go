package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/context"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/cookie"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/session"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"

	echoKeySession = "session"
)

type SessionMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Jar    *cookie.Jar
	Logger *slog.Logger
}

// SessionMiddleware guards the dashboard with the session cookie.
type SessionMiddleware struct {
	authUC usecase.AuthUsecase
	jar    *cookie.Jar
	logger *slog.Logger
}

func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		authUC: params.AuthUC,
		jar:    params.Jar,
		logger: params.Logger,
	}
}

// Protect redirects to the login page unless the session cookie verifies.
// On success the session is attached to the request context for the backend client.
func (m *SessionMiddleware) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := m.authUC.Authenticate(m.jar.Session(c))
		if err != nil {
			if m.jar.Session(c) != "" {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Info("Session rejected",
					slog.String("path", c.Request().URL.Path),
					slog.Any("error", err),
				)
				m.jar.ClearSession(c)
			}

			return c.Redirect(http.StatusFound, LoginPath)
		}

		c.Set(echoKeySession, sess)
		c.SetRequest(c.Request().WithContext(session.WithSession(c.Request().Context(), sess)))

		return next(c)
	}
}

// GuestOnly sends an already signed-in operator to the dashboard.
func (m *SessionMiddleware) GuestOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := m.authUC.Authenticate(m.jar.Session(c)); err == nil {
			return c.Redirect(http.StatusFound, DashboardPath)
		}

		return next(c)
	}
}

// CurrentSession returns the session attached by Protect.
func CurrentSession(c echo.Context) (*entity.Session, bool) {
	sess, ok := c.Get(echoKeySession).(*entity.Session)

	return sess, ok && sess != nil
}
