package entity

import "time"

// AdminProfile describes the operator signed in to the console.
type AdminProfile struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
}

// LoginResult is what the backend answers to a credential or code submission.
type LoginResult struct {
	Token             string
	RequiresTwoFactor bool
	// Challenge identifies the pending two-factor attempt on the backend.
	Challenge string
	Admin     *AdminProfile
	Message   string
}

// TwoFactorSetup carries the enrollment secret of an authenticator app.
type TwoFactorSetup struct {
	OTPAuthURL string `json:"otpauth_url"`
	Secret     string `json:"secret"`
}

// Session is the signed-in state carried by the dashboard cookie.
type Session struct {
	AdminID     string
	Email       string
	Name        string
	AccessToken string
	ExpiresAt   time.Time
}

// PendingTwoFactor is the state between credentials-submitted and verified.
type PendingTwoFactor struct {
	Email     string
	Challenge string
	ExpiresAt time.Time
}
