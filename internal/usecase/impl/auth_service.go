package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/context"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/service"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/validation"
)

type authService struct {
	authRepo     repository.AdminAuthRepository
	tokenService service.SessionTokenService
	qrService    service.QRCodeService
	validator    *validation.Validator
	logger       *slog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	authRepo repository.AdminAuthRepository,
	tokenService service.SessionTokenService,
	qrService service.QRCodeService,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		authRepo:     authRepo,
		tokenService: tokenService,
		qrService:    qrService,
		validator:    validator,
		logger:       logger,
	}
}

// Login submits credentials and decides the next step.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutcome, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	result, err := s.authRepo.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, mapRejection(err, domainerrors.ErrInvalidCredentials)
	}

	if result.RequiresTwoFactor {
		pending := &entity.PendingTwoFactor{Email: input.Email, Challenge: result.Challenge}
		pendingToken, err := s.tokenService.IssuePending(pending)
		if err != nil {
			return nil, errors.Wrap(err, "failed to issue two-factor token")
		}

		return &usecase.LoginOutcome{
			Step:         usecase.StepAwaitCode,
			Message:      firstNonEmpty(result.Message, "Enter the code from your authenticator app"),
			PendingToken: pendingToken,
			ExpiresAt:    pending.ExpiresAt,
		}, nil
	}

	return s.openSession(ctx, input.Email, result)
}

// VerifyTwoFactor forwards the code. The pending token is not consumed on failure.
func (s *authService) VerifyTwoFactor(ctx context.Context, pendingToken string, input *usecase.VerifyInput) (*usecase.LoginOutcome, error) {
	pending, err := s.PendingLogin(pendingToken)
	if err != nil {
		return nil, err
	}

	input.Code = strings.TrimSpace(input.Code)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	result, err := s.authRepo.VerifyTwoFactor(ctx, pending.Email, pending.Challenge, input.Code)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Two-factor verification failed",
			slog.String("email", pending.Email),
		)

		return nil, mapRejection(err, domainerrors.ErrInvalidTwoFactorCode)
	}

	return s.openSession(ctx, pending.Email, result)
}

// PendingLogin validates the await-code cookie.
func (s *authService) PendingLogin(pendingToken string) (*entity.PendingTwoFactor, error) {
	if pendingToken == "" {
		return nil, domainerrors.ErrTwoFactorNotPending
	}

	pending, err := s.tokenService.ParsePending(pendingToken)
	if err != nil {
		return nil, domainerrors.ErrTwoFactorNotPending.WithDetails(err.Error())
	}

	return pending, nil
}

// Authenticate validates the session cookie.
func (s *authService) Authenticate(sessionToken string) (*entity.Session, error) {
	if sessionToken == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	sess, err := s.tokenService.ParseSession(sessionToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	return sess, nil
}

// Logout tells the backend to drop its token; failures are logged only.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.authRepo.Logout(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Backend logout failed",
			slog.Any("error", err),
		)
	}

	return nil
}

func (s *authService) Profile(ctx context.Context) (*entity.AdminProfile, error) {
	return s.authRepo.Profile(ctx)
}

// TwoFactorEnrollmentQR fetches the enrollment URI and renders it.
func (s *authService) TwoFactorEnrollmentQR(ctx context.Context) ([]byte, error) {
	setup, err := s.authRepo.TwoFactorSetup(ctx)
	if err != nil {
		return nil, err
	}

	png, err := s.qrService.EnrollmentPNG(setup.OTPAuthURL)
	if err != nil {
		return nil, err
	}

	return png, nil
}

func (s *authService) openSession(ctx context.Context, email string, result *entity.LoginResult) (*usecase.LoginOutcome, error) {
	if result.Token == "" {
		return nil, domainerrors.ErrBackendResponse.WithDetails("login response carried no token")
	}

	sess := &entity.Session{Email: email, AccessToken: result.Token}
	if result.Admin != nil {
		sess.AdminID = result.Admin.ID
		sess.Name = result.Admin.Name
		if result.Admin.Email != "" {
			sess.Email = result.Admin.Email
		}
	}

	sessionToken, err := s.tokenService.IssueSession(sess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Admin signed in",
		slog.String("admin_id", sess.AdminID),
		slog.String("email", sess.Email),
	)

	return &usecase.LoginOutcome{
		Step:         usecase.StepVerified,
		Message:      firstNonEmpty(result.Message, "Login successful"),
		Admin:        result.Admin,
		SessionToken: sessionToken,
		ExpiresAt:    sess.ExpiresAt,
	}, nil
}

// mapRejection turns a backend 400/401 into the inline auth error, keeping the server's text.
func mapRejection(err error, inline *domainerrors.BaseError) error {
	var backendErr *domainerrors.BackendError
	if !errors.As(err, &backendErr) {
		return err
	}

	switch backendErr.Status() {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return inline.WithMessage(backendErr.ServerMessage())
	default:
		return err
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
