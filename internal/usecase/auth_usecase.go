package usecase

import (
	"context"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// LoginStep is the position in the credentials -> await-code -> verified machine.
type LoginStep string

const (
	StepCredentials LoginStep = "credentials"
	StepAwaitCode   LoginStep = "await-code"
	StepVerified    LoginStep = "verified"
)

// LoginInput is the credentials form.
type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// VerifyInput is the authenticator code form.
type VerifyInput struct {
	Code string `json:"code" form:"code" validate:"required,len=6,numeric"`
}

// LoginOutcome tells the delivery layer which cookie to set and which step to show.
type LoginOutcome struct {
	Step    LoginStep
	Message string
	Admin   *entity.AdminProfile

	// SessionToken is set once verified.
	SessionToken string
	// PendingToken is set while awaiting the code.
	PendingToken string
	ExpiresAt    time.Time
}

// AuthUsecase drives sign-in, two-factor verification and sign-out.
type AuthUsecase interface {
	// Login submits credentials. A flagged account moves to StepAwaitCode.
	Login(ctx context.Context, input *LoginInput) (*LoginOutcome, error)

	// VerifyTwoFactor completes a flagged login. A wrong code leaves pendingToken usable.
	VerifyTwoFactor(ctx context.Context, pendingToken string, input *VerifyInput) (*LoginOutcome, error)

	// PendingLogin reports whether pendingToken still names an unfinished login.
	PendingLogin(pendingToken string) (*entity.PendingTwoFactor, error)

	// Authenticate turns a session cookie value into a session.
	Authenticate(sessionToken string) (*entity.Session, error)

	// Logout ends the backend session. The cookie is cleared regardless.
	Logout(ctx context.Context) error

	// Profile returns the signed-in admin.
	Profile(ctx context.Context) (*entity.AdminProfile, error)

	// TwoFactorEnrollmentQR renders the authenticator enrollment URI as a PNG.
	TwoFactorEnrollmentQR(ctx context.Context) ([]byte, error)
}
