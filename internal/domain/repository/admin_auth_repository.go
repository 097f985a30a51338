// Package repository defines the interfaces for the persistence layer.
// For the console, persistence is the Miorish REST API: every entity is
// backend-owned, and each method maps to exactly one backend call.
package repository

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// AdminAuthRepository wraps the backend's admin authentication endpoints.
type AdminAuthRepository interface {
	// Login submits credentials; the result may ask for a two-factor code.
	Login(ctx context.Context, email, password string) (*entity.LoginResult, error)

	// VerifyTwoFactor completes a flagged login with the authenticator code.
	VerifyTwoFactor(ctx context.Context, email, challenge, code string) (*entity.LoginResult, error)

	// Logout invalidates the backend token of the current session.
	Logout(ctx context.Context) error

	// Profile returns the signed-in admin.
	Profile(ctx context.Context) (*entity.AdminProfile, error)

	// TwoFactorSetup returns the authenticator enrollment data.
	TwoFactorSetup(ctx context.Context) (*entity.TwoFactorSetup, error)
}

// StatsRepository wraps the dashboard statistics endpoint.
type StatsRepository interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}
