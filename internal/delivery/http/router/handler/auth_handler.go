package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/context"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/cookie"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/response"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/session"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Jar    *cookie.Jar
	Logger *slog.Logger
}

// AuthHandler serves the login steps, logout and the operator's own profile.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	jar    *cookie.Jar
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		jar:    params.Jar,
		logger: params.Logger,
	}
}

// LoginStepResponse tells the login view which step to render.
type LoginStepResponse struct {
	Step      usecase.LoginStep    `json:"step"`
	Email     string               `json:"email,omitempty"`
	Admin     *entity.AdminProfile `json:"admin,omitempty"`
	ExpiresAt *time.Time           `json:"expires_at,omitempty"`
}

// LoginPage reports the current step: await-code while a pending cookie is valid.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if token := h.jar.Pending(c); token != "" {
		pending, err := h.authUC.PendingLogin(token)
		if err == nil {
			return response.OK(c, LoginStepResponse{Step: usecase.StepAwaitCode, Email: pending.Email, ExpiresAt: &pending.ExpiresAt})
		}
		h.jar.ClearPending(c)
	}

	return response.OK(c, LoginStepResponse{Step: usecase.StepCredentials})
}

// Login forwards the credentials form.
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	outcome, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return h.respond(c, outcome)
}

// VerifyTwoFactor forwards the authenticator code of a pending login.
func (h *AuthHandler) VerifyTwoFactor(c echo.Context) error {
	var req usecase.VerifyInput
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	outcome, err := h.authUC.VerifyTwoFactor(c.Request().Context(), h.jar.Pending(c), &req)
	if err != nil {
		if errors.Is(err, domainerrors.ErrTwoFactorNotPending) {
			h.jar.ClearPending(c)
		}

		return err
	}

	return h.respond(c, outcome)
}

// Logout drops both cookies. The backend is told when the session is still valid.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sess, err := h.authUC.Authenticate(h.jar.Session(c)); err == nil {
		ctx := session.WithSession(c.Request().Context(), sess)
		_ = h.authUC.Logout(ctx)
	}

	h.jar.ClearSession(c)
	h.jar.ClearPending(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Profile returns the signed-in admin.
func (h *AuthHandler) Profile(c echo.Context) error {
	profile, err := h.authUC.Profile(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, profile)
}

// TwoFactorQR renders the authenticator enrollment QR code as a PNG.
func (h *AuthHandler) TwoFactorQR(c echo.Context) error {
	png, err := h.authUC.TwoFactorEnrollmentQR(c.Request().Context())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *AuthHandler) respond(c echo.Context, outcome *usecase.LoginOutcome) error {
	body := LoginStepResponse{Step: outcome.Step, Admin: outcome.Admin}
	if !outcome.ExpiresAt.IsZero() {
		body.ExpiresAt = &outcome.ExpiresAt
	}

	switch outcome.Step {
	case usecase.StepAwaitCode:
		h.jar.SetPending(c, outcome.PendingToken, outcome.ExpiresAt)
	case usecase.StepVerified:
		h.jar.SetSession(c, outcome.SessionToken, outcome.ExpiresAt)
		h.jar.ClearPending(c)
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Session cookie issued")
	}

	return response.Success(c, http.StatusOK, body, outcome.Message)
}
