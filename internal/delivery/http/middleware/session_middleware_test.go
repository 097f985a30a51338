package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/cookie"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/session"
	mockUC "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)

	return NewSessionMiddleware(SessionMiddlewareParams{
		AuthUC: authUC,
		Jar:    cookie.NewJar(&config.Config{}),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), authUC
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestSessionMiddleware_Protect(t *testing.T) {
	validSession := &entity.Session{
		AdminID:     "admin-1",
		Email:       "ops@miorish.com",
		AccessToken: "backend-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	tests := []struct {
		name         string
		cookie       string
		setup        func(authUC *mockUC.MockAuthUsecase)
		wantStatus   int
		wantLocation string
		wantCleared  bool
	}{
		{
			name:   "no cookie redirects to login",
			cookie: "",
			setup: func(authUC *mockUC.MockAuthUsecase) {
				authUC.EXPECT().Authenticate("").Return(nil, domainerrors.ErrUnauthorized)
			},
			wantStatus:   http.StatusFound,
			wantLocation: LoginPath,
		},
		{
			name:   "tampered cookie redirects and is cleared",
			cookie: "tampered",
			setup: func(authUC *mockUC.MockAuthUsecase) {
				authUC.EXPECT().Authenticate("tampered").Return(nil, domainerrors.ErrUnauthorized)
			},
			wantStatus:   http.StatusFound,
			wantLocation: LoginPath,
			wantCleared:  true,
		},
		{
			name:   "valid cookie reaches the handler",
			cookie: "signed",
			setup: func(authUC *mockUC.MockAuthUsecase) {
				authUC.EXPECT().Authenticate("signed").Return(validSession, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, authUC := newTestSessionMiddleware(t)
			tt.setup(authUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/dashboard/products/pending/p-1/approve", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token_middleware", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var reached bool
			err := m.Protect(func(c echo.Context) error {
				reached = true
				sess, ok := CurrentSession(c)
				require.True(t, ok)
				assert.Equal(t, "backend-token", sess.AccessToken)
				assert.Equal(t, "backend-token", session.AccessToken(c.Request().Context()))

				return okHandler(c)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, reached)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			if tt.wantCleared {
				assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "token_middleware=;")
			} else {
				assert.Empty(t, rec.Header().Get(echo.HeaderSetCookie))
			}
		})
	}
}

func TestSessionMiddleware_GuestOnly(t *testing.T) {
	t.Run("signed-in operator goes to the dashboard", func(t *testing.T) {
		m, authUC := newTestSessionMiddleware(t)
		authUC.EXPECT().Authenticate("signed").Return(&entity.Session{AdminID: "admin-1"}, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, LoginPath, nil)
		req.AddCookie(&http.Cookie{Name: "token_middleware", Value: "signed"})
		rec := httptest.NewRecorder()

		err := m.GuestOnly(okHandler)(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, DashboardPath, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("guest sees the login page", func(t *testing.T) {
		m, authUC := newTestSessionMiddleware(t)
		authUC.EXPECT().Authenticate("").Return(nil, domainerrors.ErrUnauthorized)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, LoginPath, nil)
		rec := httptest.NewRecorder()

		err := m.GuestOnly(okHandler)(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
