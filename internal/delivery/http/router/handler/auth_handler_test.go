package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/cookie"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/response"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/session"
	mockUC "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/usecase"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Jar:    cookie.NewJar(&config.Config{}),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), authUC
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, data any) response.Response {
	t.Helper()

	var body response.Response
	if data != nil {
		body.Data = data
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, ck := range rec.Result().Cookies() {
		out[ck.Name] = ck
	}

	return out
}

func TestAuthHandler_Login(t *testing.T) {
	expiresAt := time.Now().Add(15 * time.Minute).UTC()

	t.Run("two-factor account gets the pending cookie", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "ops@miorish.com", Password: "secret"}).
			Return(&usecase.LoginOutcome{
				Step:         usecase.StepAwaitCode,
				Message:      "Enter your authenticator code",
				PendingToken: "pending-token",
				ExpiresAt:    expiresAt,
			}, nil)

		c, rec := newJSONContext(http.MethodPost, "/login", `{"email":"ops@miorish.com","password":"secret"}`)

		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		cookies := cookiesByName(rec)
		require.Contains(t, cookies, "two_factor_pending")
		assert.Equal(t, "pending-token", cookies["two_factor_pending"].Value)
		assert.NotContains(t, cookies, "token_middleware")

		var step LoginStepResponse
		body := decodeResponse(t, rec, &step)
		assert.Equal(t, "Enter your authenticator code", body.Message)
		assert.Equal(t, usecase.StepAwaitCode, step.Step)
	})

	t.Run("verified login sets the session and drops the pending cookie", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().
			Login(mock.Anything, mock.Anything).
			Return(&usecase.LoginOutcome{
				Step:         usecase.StepVerified,
				Message:      "Login successful",
				SessionToken: "session-token",
				Admin:        &entity.AdminProfile{ID: "admin-1", Email: "ops@miorish.com"},
				ExpiresAt:    expiresAt,
			}, nil)

		c, rec := newJSONContext(http.MethodPost, "/login", `{"email":"ops@miorish.com","password":"secret"}`)

		require.NoError(t, h.Login(c))

		cookies := cookiesByName(rec)
		require.Contains(t, cookies, "token_middleware")
		assert.Equal(t, "session-token", cookies["token_middleware"].Value)
		require.Contains(t, cookies, "two_factor_pending")
		assert.Empty(t, cookies["two_factor_pending"].Value)
	})

	t.Run("backend rejection leaves cookies alone", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		c, rec := newJSONContext(http.MethodPost, "/login", `{"email":"ops@miorish.com","password":"wrong"}`)

		err := h.Login(c)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuthHandler_VerifyTwoFactor(t *testing.T) {
	t.Run("expired pending login clears the cookie", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().
			VerifyTwoFactor(mock.Anything, "stale", &usecase.VerifyInput{Code: "123456"}).
			Return(nil, domainerrors.ErrTwoFactorNotPending)

		c, rec := newJSONContext(http.MethodPost, "/login/verify", `{"code":"123456"}`)
		c.Request().AddCookie(&http.Cookie{Name: "two_factor_pending", Value: "stale"})

		err := h.VerifyTwoFactor(c)

		assert.True(t, errors.Is(err, domainerrors.ErrTwoFactorNotPending))
		cookies := cookiesByName(rec)
		require.Contains(t, cookies, "two_factor_pending")
		assert.Empty(t, cookies["two_factor_pending"].Value)
	})

	t.Run("wrong code keeps the pending cookie", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().
			VerifyTwoFactor(mock.Anything, "pending", mock.Anything).
			Return(nil, domainerrors.ErrInvalidTwoFactorCode)

		c, rec := newJSONContext(http.MethodPost, "/login/verify", `{"code":"000000"}`)
		c.Request().AddCookie(&http.Cookie{Name: "two_factor_pending", Value: "pending"})

		err := h.VerifyTwoFactor(c)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidTwoFactorCode))
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuthHandler_LoginPage(t *testing.T) {
	t.Run("pending cookie shows the code step", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().PendingLogin("pending").Return(&entity.PendingTwoFactor{
			Email:     "ops@miorish.com",
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}, nil)

		c, rec := newJSONContext(http.MethodGet, "/login", "")
		c.Request().AddCookie(&http.Cookie{Name: "two_factor_pending", Value: "pending"})

		require.NoError(t, h.LoginPage(c))

		var step LoginStepResponse
		decodeResponse(t, rec, &step)
		assert.Equal(t, usecase.StepAwaitCode, step.Step)
		assert.Equal(t, "ops@miorish.com", step.Email)
	})

	t.Run("no pending cookie shows credentials", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		c, rec := newJSONContext(http.MethodGet, "/login", "")

		require.NoError(t, h.LoginPage(c))

		var step LoginStepResponse
		decodeResponse(t, rec, &step)
		assert.Equal(t, usecase.StepCredentials, step.Step)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.EXPECT().Authenticate("session").Return(&entity.Session{AdminID: "admin-1", AccessToken: "backend-token"}, nil)
	authUC.EXPECT().
		Logout(mock.MatchedBy(func(ctx context.Context) bool {
			return session.AccessToken(ctx) == "backend-token"
		})).
		Return(errors.New("backend down"))

	c, rec := newJSONContext(http.MethodPost, "/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: "token_middleware", Value: "session"})

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := cookiesByName(rec)
	assert.Contains(t, cookies, "token_middleware")
	assert.Contains(t, cookies, "two_factor_pending")
}

func TestAuthHandler_TwoFactorQR(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.EXPECT().TwoFactorEnrollmentQR(mock.Anything).Return([]byte("\x89PNG"), nil)

	c, rec := newJSONContext(http.MethodGet, "/dashboard/security/two-factor/qr", "")

	require.NoError(t, h.TwoFactorQR(c))

	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}
