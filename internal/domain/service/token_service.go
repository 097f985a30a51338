// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that do not naturally fit within a single entity.
package service

import (
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// Token types carried in the "type" claim.
const (
	TokenTypeSession   = "session"
	TokenTypeTwoFactor = "two_factor"
)

// SessionTokenService signs and verifies the dashboard cookies.
// The session token wraps the backend token so an expired or tampered cookie
// counts as signed out.
type SessionTokenService interface {
	// IssueSession signs a session cookie value for s. ExpiresAt is filled in.
	IssueSession(s *entity.Session) (string, error)

	// ParseSession verifies a session cookie value.
	ParseSession(token string) (*entity.Session, error)

	// IssuePending signs the await-code state of a flagged login.
	IssuePending(p *entity.PendingTwoFactor) (string, error)

	// ParsePending verifies an await-code cookie value.
	ParsePending(token string) (*entity.PendingTwoFactor, error)
}
