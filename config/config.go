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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	// MinSigningKeyLength is the smallest HMAC key accepted for token signing (256 bits).
	MinSigningKeyLength = 32

	MinCaptchaLength = 4
	MaxCaptchaLength = 6

	defaultTokenTTL           = 24 * time.Hour
	defaultCaptchaLength      = 6
	defaultCaptchaTTL         = 5 * time.Minute
	defaultCaptchaSweep       = time.Minute
	defaultBcryptCost         = 12
	defaultRedisKeyPrefix     = "credgate:captcha:"
	defaultPostgresSSLMode    = "disable"
	defaultPostgresPoolConns  = 10
	defaultPostgresIdleConns  = 5
	defaultPostgresConnMaxAge = 30 * time.Minute
	defaultWorkerPort         = 8081
)

// Captcha store backends.
const (
	CaptchaStoreMemory = "memory"
	CaptchaStoreRedis  = "redis"
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
	} `json:"http" yaml:"http"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Token *TokenConfig `json:"token" yaml:"token"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Captcha configuration for one-time challenge codes
	Captcha *CaptchaConfig `json:"captcha" yaml:"captcha"`

	// Redis backs the captcha store when captcha.store is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for auth event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configures the audit worker that consumes auth events
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// PostgresConfig describes the primary connection and optional read replicas.
type PostgresConfig struct {
	Master          ConnectionConfig   `json:"master" yaml:"master"`
	Replicas        []ConnectionConfig `json:"replicas" yaml:"replicas"`
	DBName          string             `json:"dbName" yaml:"dbName"`
	SSLMode         string             `json:"sslMode" yaml:"sslMode"`
	MaxOpenConns    int                `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int                `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration      `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

type ConnectionConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
}

// TokenConfig defines signing material and lifetime for session tokens.
type TokenConfig struct {
	SigningKey string        `json:"signingKey" yaml:"signingKey"`
	DefaultTTL time.Duration `json:"defaultTTL" yaml:"defaultTTL"`
	Issuer     string        `json:"issuer" yaml:"issuer"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int      `json:"minLength" yaml:"minLength"`
	RequireUppercase bool     `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool     `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool     `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool     `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int      `json:"maxLength" yaml:"maxLength"`
	ForbiddenWords   []string `json:"forbiddenWords" yaml:"forbiddenWords"`
}

// CaptchaConfig defines how challenge codes are generated and stored
type CaptchaConfig struct {
	// Number of digits in a generated code (4..6)
	Length int `json:"length" yaml:"length"`

	// Lifetime of a challenge from creation
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// Backend: "memory" for a single instance, "redis" when running several
	Store string `json:"store" yaml:"store"`

	// How often the memory store evicts expired challenges
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`

	// Return the code in the generate response. Only for local development.
	ExposeCode bool `json:"exposeCode" yaml:"exposeCode"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// WorkerConfig defines the push endpoint of the audit worker
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// Expected audience of Pub/Sub push OIDC tokens. Empty means the request URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty or "none" to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: TOKEN_SIGNINGKEY -> token.signingKey (not token.signingkey)
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)

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

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		if replicas := buildReplicasFromEnv(); len(replicas) > 0 {
			cfg.Postgres.Replicas = replicas
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section left empty by the config file.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Token == nil {
		c.Token = &TokenConfig{}
	}
	if c.Token.DefaultTTL == 0 {
		c.Token.DefaultTTL = defaultTokenTTL
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = defaultBcryptCost
	}

	if c.Captcha == nil {
		c.Captcha = &CaptchaConfig{}
	}
	if c.Captcha.Length == 0 {
		c.Captcha.Length = defaultCaptchaLength
	}
	if c.Captcha.TTL == 0 {
		c.Captcha.TTL = defaultCaptchaTTL
	}
	if c.Captcha.SweepInterval == 0 {
		c.Captcha.SweepInterval = defaultCaptchaSweep
	}
	if c.Captcha.Store == "" {
		c.Captcha.Store = CaptchaStoreMemory
	}

	if c.Redis != nil && c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = defaultRedisKeyPrefix
	}

	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port == 0 {
		c.Worker.Port = defaultWorkerPort
	}

	if c.Postgres != nil {
		if c.Postgres.SSLMode == "" {
			c.Postgres.SSLMode = defaultPostgresSSLMode
		}
		if c.Postgres.MaxOpenConns == 0 {
			c.Postgres.MaxOpenConns = defaultPostgresPoolConns
		}
		if c.Postgres.MaxIdleConns == 0 {
			c.Postgres.MaxIdleConns = defaultPostgresIdleConns
		}
		if c.Postgres.ConnMaxLifetime == 0 {
			c.Postgres.ConnMaxLifetime = defaultPostgresConnMaxAge
		}
	}
}

// Validate rejects configurations the service must not start with.
func (c *Config) Validate() error {
	if c.Token == nil || c.Token.SigningKey == "" {
		return errors.New("token.signingKey must be provided")
	}
	if len(c.Token.SigningKey) < MinSigningKeyLength {
		return errors.Errorf("token.signingKey must be at least %d bytes, got %d", MinSigningKeyLength, len(c.Token.SigningKey))
	}

	if c.Captcha != nil {
		if c.Captcha.Length < MinCaptchaLength || c.Captcha.Length > MaxCaptchaLength {
			return errors.Errorf("captcha.length must be between %d and %d, got %d", MinCaptchaLength, MaxCaptchaLength, c.Captcha.Length)
		}
		if c.Captcha.TTL <= 0 {
			return errors.Errorf("captcha.ttl must be positive, got %s", c.Captcha.TTL)
		}

		switch c.Captcha.Store {
		case CaptchaStoreMemory:
		case CaptchaStoreRedis:
			if c.Redis == nil || c.Redis.Addr == "" {
				return errors.New("redis.addr must be provided when captcha.store is redis")
			}
		default:
			return errors.Errorf("unknown captcha.store: %s", c.Captcha.Store)
		}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []ConnectionConfig {
	var replicas []ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
