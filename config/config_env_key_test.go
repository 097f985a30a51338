package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "http://localhost:5000",
		},
		"session": map[string]any{
			"cookieName": "token_middleware",
			"pendingTtl": "15m",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "SESSION_PENDINGTTL", want: "session.pendingTtl"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.Backend = &BackendConfig{BaseURL: "http://backend.local/api/"}
	cfg.Banners = &BannerConfig{Limits: map[string]int{"Weekly": 2}}

	applyDefaults(cfg)

	assert.Equal(t, "http://backend.local/api", cfg.Backend.BaseURL)
	assert.Equal(t, defaultBackendTimeout, cfg.Backend.Timeout)
	assert.Equal(t, "token_middleware", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxImageBytes)
	assert.Equal(t, 10, cfg.Approval.SellerReasonMinLength)
	assert.Equal(t, 3, cfg.Banners.Limits["homepage"])
	assert.Equal(t, 2, cfg.Banners.Limits["weekly"], "configured limit overrides the default")
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	require.Error(t, cfg.validate(), "missing backend url")

	cfg.Backend.BaseURL = "http://backend.local"
	require.Error(t, cfg.validate(), "missing secrets")

	cfg.SecretKey.Session = "session-secret"
	cfg.SecretKey.TwoFactor = "two-factor-secret"
	require.NoError(t, cfg.validate())

	cfg.Audit.Enabled = true
	require.Error(t, cfg.validate(), "audit needs postgres")
}
