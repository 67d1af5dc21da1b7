package config

import (
	"os"
	"path/filepath"
	"strconv"
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
	defaultMaxRequestBodySize = "100KB"
	defaultSessionTTL         = 30 * 24 * time.Hour
	defaultImpersonationTTL   = time.Hour
	defaultCookieName         = "kiosk_session"
	defaultTopDonorsLimit     = 10
)

type Config struct {
	Env Env `json:"env" yaml:"env"`

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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// PaymentsOAuth configures the merchant connection handshake with the payments provider
	PaymentsOAuth *PaymentsOAuthConfig `json:"paymentsOAuth" yaml:"paymentsOAuth"`

	Reporting *ReportingConfig `json:"reporting" yaml:"reporting"`

	// PubSub configuration for donor change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// SecretKeyConfig holds the symmetric keys used by the service.
type SecretKeyConfig struct {
	// Session signs session tokens (HMAC).
	Session string `json:"session" yaml:"session"`
	// Credentials seals provider access/refresh tokens at rest. Must be 32 bytes.
	Credentials string `json:"credentials" yaml:"credentials"`
}

// AuthConfig defines session and authorization configuration
type AuthConfig struct {
	SuperAdminEmails []string      `json:"superAdminEmails" yaml:"superAdminEmails"`
	SessionTTL       time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	ImpersonationTTL time.Duration `json:"impersonationTTL" yaml:"impersonationTTL"`
	CookieName       string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure     bool          `json:"cookieSecure" yaml:"cookieSecure"`
}

// PaymentsOAuthConfig defines the payments provider OAuth application
type PaymentsOAuthConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string   `json:"redirectUri" yaml:"redirectUri"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
	AuthURL      string   `json:"authUrl" yaml:"authUrl"`
	TokenURL     string   `json:"tokenUrl" yaml:"tokenUrl"`
	APIBaseURL   string   `json:"apiBaseUrl" yaml:"apiBaseUrl"`

	// DashboardURL is where the browser lands after a successful connection
	DashboardURL string `json:"dashboardUrl" yaml:"dashboardUrl"`
}

// ReportingConfig defines reporting defaults
type ReportingConfig struct {
	Timezone       string `json:"timezone" yaml:"timezone"`
	TopDonorsLimit int    `json:"topDonorsLimit" yaml:"topDonorsLimit"`
}

// Env identifies the running deployment.
type Env struct {
	Env         string `json:"env" yaml:"env"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Debug       bool   `json:"debug" yaml:"debug"`
	Log         Log    `json:"log" yaml:"log"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Endpoint overrides the Google Pub/Sub API endpoint, e.g. a regional one (for google provider)
	Endpoint string `json:"endpoint" yaml:"endpoint"`
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

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SECRETKEY_SESSION -> secretKey.session
			key := canonicalizeEnvKey(k, existingConfigMap)
			if isListKey(key) {
				return key, splitList(v)
			}

			return key, v
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
				mapstructure.StringToSliceHookFunc(","),
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

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Auth.ImpersonationTTL <= 0 {
		cfg.Auth.ImpersonationTTL = defaultImpersonationTTL
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = defaultCookieName
	}

	if cfg.Reporting == nil {
		cfg.Reporting = &ReportingConfig{}
	}
	if cfg.Reporting.Timezone == "" {
		cfg.Reporting.Timezone = "UTC"
	}
	if cfg.Reporting.TopDonorsLimit <= 0 {
		cfg.Reporting.TopDonorsLimit = defaultTopDonorsLimit
	}
}

// IsSuperAdminEmail reports whether email is on the configured allow-list.
func (c *AuthConfig) IsSuperAdminEmail(email string) bool {
	if c == nil {
		return false
	}

	needle := strings.ToLower(strings.TrimSpace(email))
	if needle == "" {
		return false
	}

	for _, allowed := range c.SuperAdminEmails {
		if strings.ToLower(strings.TrimSpace(allowed)) == needle {
			return true
		}
	}

	return false
}

func isListKey(key string) bool {
	return key == "auth.superAdminEmails" || key == "paymentsOAuth.scopes"
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
