package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "12MB"

	defaultBackendTimeout        = 15 * time.Second
	defaultSessionCookieName     = "token_middleware"
	defaultPendingCookieName     = "two_factor_pending"
	defaultSessionTTL            = 24 * time.Hour
	defaultPendingTTL            = 15 * time.Minute
	defaultMaxImageBytes         = 5 * 1024 * 1024
	defaultSellerReasonMinLength = 10
	defaultAuditListLimit        = 50
)

// DefaultBannerLimits is the per-type cap on banners shown in each banner tab.
func DefaultBannerLimits() map[string]int {
	return map[string]int{
		"homepage": 3,
		"weekly":   1,
		"popular":  4,
		"brand":    10,
	}
}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Session   string `json:"session" yaml:"session"`
		TwoFactor string `json:"twoFactor" yaml:"twoFactor"`
	} `json:"secretKey" yaml:"secretKey"`

	// Backend is the Miorish REST API every dashboard page reads from and writes to
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Session configures the dashboard cookies
	Session *SessionConfig `json:"session" yaml:"session"`

	// Upload configures client-side image pre-validation
	Upload *UploadConfig `json:"upload" yaml:"upload"`

	// Banners configures the per-type banner tab limits
	Banners *BannerConfig `json:"banners" yaml:"banners"`

	// Approval configures the seller/product approval desk
	Approval *ApprovalConfig `json:"approval" yaml:"approval"`

	// Audit configures the moderation audit trail
	Audit *AuditConfig `json:"audit" yaml:"audit"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// PubSub configuration for moderation event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for two-factor enrollment codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig defines how the console reaches the Miorish REST API
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines the dashboard session cookies
type SessionConfig struct {
	CookieName        string        `json:"cookieName" yaml:"cookieName"`
	PendingCookieName string        `json:"pendingCookieName" yaml:"pendingCookieName"`
	TTL               time.Duration `json:"ttl" yaml:"ttl"`
	PendingTTL        time.Duration `json:"pendingTtl" yaml:"pendingTtl"`
	Secure            bool          `json:"secure" yaml:"secure"`
	Domain            string        `json:"domain" yaml:"domain"`
}

// UploadConfig defines image pre-validation limits
type UploadConfig struct {
	MaxImageBytes int64 `json:"maxImageBytes" yaml:"maxImageBytes"`
}

// BannerConfig defines how many banners each tab accepts
type BannerConfig struct {
	Limits map[string]int `json:"limits" yaml:"limits"`
}

// ApprovalConfig defines approval desk rules
type ApprovalConfig struct {
	SellerReasonMinLength int `json:"sellerReasonMinLength" yaml:"sellerReasonMinLength"`
}

// AuditConfig defines the moderation audit trail
type AuditConfig struct {
	Enabled     bool `json:"enabled" yaml:"enabled"`
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	ListLimit   int  `json:"listLimit" yaml:"listLimit"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MetricsConfig defines the Prometheus exposition
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env overrides: BACKEND_BASEURL -> backend.baseUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Backend == nil {
		cfg.Backend = &BackendConfig{}
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.PendingCookieName == "" {
		cfg.Session.PendingCookieName = defaultPendingCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.PendingTTL <= 0 {
		cfg.Session.PendingTTL = defaultPendingTTL
	}

	if cfg.Upload == nil {
		cfg.Upload = &UploadConfig{}
	}
	if cfg.Upload.MaxImageBytes <= 0 {
		cfg.Upload.MaxImageBytes = defaultMaxImageBytes
	}

	if cfg.Banners == nil {
		cfg.Banners = &BannerConfig{}
	}
	limits := DefaultBannerLimits()
	for bannerType, limit := range cfg.Banners.Limits {
		limits[strings.ToLower(bannerType)] = limit
	}
	cfg.Banners.Limits = limits

	if cfg.Approval == nil {
		cfg.Approval = &ApprovalConfig{}
	}
	if cfg.Approval.SellerReasonMinLength <= 0 {
		cfg.Approval.SellerReasonMinLength = defaultSellerReasonMinLength
	}

	if cfg.Audit == nil {
		cfg.Audit = &AuditConfig{}
	}
	if cfg.Audit.ListLimit <= 0 {
		cfg.Audit.ListLimit = defaultAuditListLimit
	}
}

func (cfg *Config) validate() error {
	if cfg.Backend.BaseURL == "" {
		return errors.New("backend.baseUrl is required")
	}
	if cfg.SecretKey.Session == "" || cfg.SecretKey.TwoFactor == "" {
		return errors.New("secretKey.session and secretKey.twoFactor are required")
	}
	if cfg.Audit.Enabled && cfg.Postgres == nil {
		return errors.New("postgres must be configured when audit is enabled")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
