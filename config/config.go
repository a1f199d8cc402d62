package config

import (
	"os"
	"path/filepath"
	"runtime"
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

	defaultBcryptCost            = 10
	defaultSessionTTL            = time.Hour
	defaultPendingProfileTTL     = 15 * time.Minute
	DefaultLandingPath           = "/home"
	DefaultProfileCompletionPath = "/auth/complete-profile"
	defaultCookieName            = "token"
	defaultPendingCookieName     = "profile_pending"
	defaultStateCookieName       = "oauth_state"
	defaultRedisKeyPrefix        = "identity:revoked:"
	defaultPublishTimeout        = 5 * time.Second
	defaultPoolMonitorInterval   = 5 * time.Second
	defaultPoolWaitWarnThreshold = 50 * time.Millisecond
)

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
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database struct {
		// AutoMigrate creates or updates the identities table on start.
		AutoMigrate           bool          `json:"autoMigrate" yaml:"autoMigrate"`
		SlowQueryThreshold    time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
		// PoolMonitorInterval is how often connection pool waits are sampled.
		PoolMonitorInterval   time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
		PoolWaitWarnThreshold time.Duration `json:"poolWaitWarnThreshold" yaml:"poolWaitWarnThreshold"`
	} `json:"database" yaml:"database"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Cookie *CookieConfig `json:"cookie" yaml:"cookie"`

	// Redis backs the session denylist. When absent an in-process denylist is used.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Metrics struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"metrics" yaml:"metrics"`

	// PubSub receives identity lifecycle events. Unset disables publishing.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// PubSubConfig selects where identity lifecycle events are published.
type PubSubConfig struct {
	// Provider is "local" for an HTTP endpoint or "google" for Google Pub/Sub.
	Provider      string        `json:"provider" yaml:"provider"`
	ProjectID     string        `json:"projectId" yaml:"projectId"`
	TopicID       string        `json:"topicId" yaml:"topicId"`
	LocalEndpoint string        `json:"localEndpoint" yaml:"localEndpoint"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

type GoogleOAuthConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string   `json:"redirectUri" yaml:"redirectUri"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost          int           `json:"bcryptCost" yaml:"bcryptCost"`
	MaxConcurrentHashes int           `json:"maxConcurrentHashes" yaml:"maxConcurrentHashes"`
	SessionTTL          time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	PendingProfileTTL   time.Duration `json:"pendingProfileTTL" yaml:"pendingProfileTTL"`
	// LandingPath is where a browser is sent once a session is issued.
	LandingPath           string `json:"landingPath" yaml:"landingPath"`
	ProfileCompletionPath string `json:"profileCompletionPath" yaml:"profileCompletionPath"`
}

// CookieConfig defines attributes shared by every cookie the service sets
type CookieConfig struct {
	Name        string `json:"name" yaml:"name"`
	PendingName string `json:"pendingName" yaml:"pendingName"`
	StateName   string `json:"stateName" yaml:"stateName"`
	Path        string `json:"path" yaml:"path"`
	Domain      string `json:"domain" yaml:"domain"`
	Secure      bool   `json:"secure" yaml:"secure"`
	HTTPOnly    bool   `json:"httpOnly" yaml:"httpOnly"`
	// SameSite is one of "lax", "strict", "none" or empty for the browser default.
	SameSite string `json:"sameSite" yaml:"sameSite"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports configuration that would make the service unsafe to start.
func (cfg *Config) Validate() error {
	if len(cfg.SecretKey.Session) < MinSessionSecretLength {
		return errors.Errorf("secretKey.session must be at least %d bytes", MinSessionSecretLength)
	}
	if cfg.Auth.SessionTTL <= 0 {
		return errors.New("auth.sessionTTL must be positive")
	}

	switch strings.ToLower(cfg.Cookie.SameSite) {
	case "", "lax", "strict", "none":
	default:
		return errors.Errorf("unknown cookie.sameSite: %s", cfg.Cookie.SameSite)
	}

	if cfg.PubSub != nil {
		switch cfg.PubSub.Provider {
		case "":
		case PubSubProviderLocal:
			if cfg.PubSub.LocalEndpoint == "" {
				return errors.New("pubsub.localEndpoint is required for the local provider")
			}
		case PubSubProviderGoogle:
			if cfg.PubSub.ProjectID == "" || cfg.PubSub.TopicID == "" {
				return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
			}
		default:
			return errors.Errorf("unknown pubsub.provider: %s", cfg.PubSub.Provider)
		}
	}

	return nil
}

// MinSessionSecretLength is the shortest HMAC secret accepted for session signing.
const MinSessionSecretLength = 32

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database.PoolMonitorInterval <= 0 {
		cfg.Database.PoolMonitorInterval = defaultPoolMonitorInterval
	}
	if cfg.Database.PoolWaitWarnThreshold <= 0 {
		cfg.Database.PoolWaitWarnThreshold = defaultPoolWaitWarnThreshold
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.MaxConcurrentHashes <= 0 {
		cfg.Auth.MaxConcurrentHashes = runtime.GOMAXPROCS(0)
	}
	if cfg.Auth.SessionTTL == 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Auth.PendingProfileTTL == 0 {
		cfg.Auth.PendingProfileTTL = defaultPendingProfileTTL
	}
	if cfg.Auth.LandingPath == "" {
		cfg.Auth.LandingPath = DefaultLandingPath
	}
	if cfg.Auth.ProfileCompletionPath == "" {
		cfg.Auth.ProfileCompletionPath = DefaultProfileCompletionPath
	}

	if cfg.Cookie == nil {
		cfg.Cookie = &CookieConfig{HTTPOnly: true}
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = defaultCookieName
	}
	if cfg.Cookie.PendingName == "" {
		cfg.Cookie.PendingName = defaultPendingCookieName
	}
	if cfg.Cookie.StateName == "" {
		cfg.Cookie.StateName = defaultStateCookieName
	}
	if cfg.Cookie.Path == "" {
		cfg.Cookie.Path = "/"
	}

	if cfg.Redis != nil && cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = defaultRedisKeyPrefix
	}

	if cfg.PubSub != nil && cfg.PubSub.Timeout <= 0 {
		cfg.PubSub.Timeout = defaultPublishTimeout
	}
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
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
