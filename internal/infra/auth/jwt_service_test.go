package auth

import (
	"testing"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Session: &config.SessionConfig{TTL: time.Hour, PendingTTL: 5 * time.Minute},
	}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"
	cfg.SecretKey.TwoFactor = "test_two_factor_secret_key_very_long_for_testing"

	return cfg
}

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_SessionRoundTrip(t *testing.T) {
	svc := newTestService(t)

	sess := &entity.Session{AdminID: "admin-1", Email: "ops@miorish.com", Name: "Ops", AccessToken: "backend-token"}
	token, err := svc.IssueSession(sess)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, sess.ExpiresAt.IsZero())

	parsed, err := svc.ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", parsed.AdminID)
	assert.Equal(t, "ops@miorish.com", parsed.Email)
	assert.Equal(t, "backend-token", parsed.AccessToken)
	assert.WithinDuration(t, sess.ExpiresAt, parsed.ExpiresAt, time.Second)
}

func TestJWTService_SessionRequiresBackendToken(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.IssueSession(&entity.Session{AdminID: "admin-1"})
	assert.Error(t, err)
}

func TestJWTService_ExpiredSession(t *testing.T) {
	svc := newTestService(t)
	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueSession(&entity.Session{AdminID: "admin-1", AccessToken: "backend-token"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ParseSession(token)
	assert.Error(t, err)
}

func TestJWTService_TamperedAndForeignTokens(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ParseSession("clearly-not-a-jwt-token-format")
	assert.Error(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":  issuer,
		"type": "session",
		"bt":   "backend-token",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := foreign.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = svc.ParseSession(signed)
	assert.Error(t, err)
}

func TestJWTService_AudienceIsEnforced(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.IssueSession(&entity.Session{AdminID: "admin-1", AccessToken: "backend-token"})
	require.NoError(t, err)

	claims := &sessionClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, jwt.ClaimStrings{sessionAudience}, claims.Audience)

	tests := []struct {
		name     string
		audience any
	}{
		{name: "missing audience", audience: nil},
		{name: "two-factor audience", audience: twoFactorAudience},
		{name: "unrelated audience", audience: "storefront"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapClaims := jwt.MapClaims{
				"iss":  issuer,
				"type": "session",
				"bt":   "backend-token",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}
			if tt.audience != nil {
				mapClaims["aud"] = tt.audience
			}

			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString(svc.sessionSecret)
			require.NoError(t, err)

			_, err = svc.ParseSession(signed)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_PendingTokenIsNotASession(t *testing.T) {
	svc := newTestService(t)

	pending, err := svc.IssuePending(&entity.PendingTwoFactor{Email: "ops@miorish.com", Challenge: "ch-1"})
	require.NoError(t, err)

	got, err := svc.ParsePending(pending)
	require.NoError(t, err)
	assert.Equal(t, "ops@miorish.com", got.Email)
	assert.Equal(t, "ch-1", got.Challenge)

	_, err = svc.ParseSession(pending)
	assert.Error(t, err, "a pending token must never open the dashboard")
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Session = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}
