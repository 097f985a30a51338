// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/service"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "miorish-admin"

// Each token kind is bound to its own audience.
const (
	sessionAudience   = "admin-console"
	twoFactorAudience = "admin-two-factor"
)

// sessionClaims is the payload of the token_middleware cookie.
type sessionClaims struct {
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	BackendToken string `json:"bt"`
	Type         string `json:"type"`
	jwt.RegisteredClaims
}

// pendingClaims is the payload of the await-code cookie.
type pendingClaims struct {
	Email     string `json:"email"`
	Challenge string `json:"ch,omitempty"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of SessionTokenService using HS256 JWTs.
type jwtService struct {
	sessionSecret   []byte
	twoFactorSecret []byte
	sessionTTL      time.Duration
	pendingTTL      time.Duration
	now             func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" || cfg.SecretKey.TwoFactor == "" {
		return nil, errors.New("session and two-factor secrets must be provided")
	}

	sessionTTL, pendingTTL := 24*time.Hour, 15*time.Minute
	if cfg.Session != nil {
		if cfg.Session.TTL > 0 {
			sessionTTL = cfg.Session.TTL
		}
		if cfg.Session.PendingTTL > 0 {
			pendingTTL = cfg.Session.PendingTTL
		}
	}

	return &jwtService{
		sessionSecret:   []byte(cfg.SecretKey.Session),
		twoFactorSecret: []byte(cfg.SecretKey.TwoFactor),
		sessionTTL:      sessionTTL,
		pendingTTL:      pendingTTL,
		now:             time.Now,
	}, nil
}

// IssueSession signs the session cookie value and stamps s.ExpiresAt.
func (s *jwtService) IssueSession(sess *entity.Session) (string, error) {
	if sess.AccessToken == "" {
		return "", errors.New("session requires a backend token")
	}

	now := s.now()
	sess.ExpiresAt = now.Add(s.sessionTTL)

	claims := sessionClaims{
		Email:        sess.Email,
		Name:         sess.Name,
		BackendToken: sess.AccessToken,
		Type:         service.TokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{sessionAudience},
			Subject:   sess.AdminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.sessionSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ParseSession verifies the signature, expiry and type of a session cookie value.
func (s *jwtService) ParseSession(tokenString string) (*entity.Session, error) {
	claims := &sessionClaims{}
	if err := s.parse(tokenString, claims, s.sessionSecret, sessionAudience); err != nil {
		return nil, err
	}

	if claims.Type != service.TokenTypeSession || claims.BackendToken == "" {
		return nil, errors.New("not a session token")
	}

	sess := &entity.Session{
		AdminID:     claims.Subject,
		Email:       claims.Email,
		Name:        claims.Name,
		AccessToken: claims.BackendToken,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}

	return sess, nil
}

// IssuePending signs the await-code state and stamps p.ExpiresAt.
func (s *jwtService) IssuePending(p *entity.PendingTwoFactor) (string, error) {
	now := s.now()
	p.ExpiresAt = now.Add(s.pendingTTL)

	claims := pendingClaims{
		Email:     p.Email,
		Challenge: p.Challenge,
		Type:      service.TokenTypeTwoFactor,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{twoFactorAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(p.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.twoFactorSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign two-factor token")
	}

	return signed, nil
}

// ParsePending verifies an await-code cookie value.
func (s *jwtService) ParsePending(tokenString string) (*entity.PendingTwoFactor, error) {
	claims := &pendingClaims{}
	if err := s.parse(tokenString, claims, s.twoFactorSecret, twoFactorAudience); err != nil {
		return nil, err
	}

	if claims.Type != service.TokenTypeTwoFactor || claims.Email == "" {
		return nil, errors.New("not a two-factor token")
	}

	pending := &entity.PendingTwoFactor{
		Email:     claims.Email,
		Challenge: claims.Challenge,
	}
	if claims.ExpiresAt != nil {
		pending.ExpiresAt = claims.ExpiresAt.Time
	}

	return pending, nil
}

func (s *jwtService) parse(tokenString string, claims jwt.Claims, secret []byte, audience string) error {
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return errors.Wrap(err, "failed to parse token")
	}

	return nil
}
