package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

const (
	StreakModeFull   = "full"
	StreakModeWindow = "window"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// postgres
	PostgresHost        string `toml:"postgres_host"`
	PostgresPort        string `toml:"postgres_port"`
	PostgresDBName      string `toml:"postgres_db_name"`
	PostgresUser        string `toml:"postgres_user"`
	PostgresAutoMigrate bool   `toml:"postgres_auto_migrate"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// auth
	JWTIssuer      string   `toml:"jwt_issuer"`
	AllowedOrigins []string `toml:"allowed_origins"`

	// kafka, publishing is disabled when no brokers are set
	KafkaBrokers       []string `toml:"kafka_brokers"`
	KafkaWorkoutsTopic string   `toml:"kafka_workouts_topic"`

	// workouts
	Timezone                    string `toml:"timezone"`
	RejectPartialSubmissions    bool   `toml:"reject_partial_submissions"`
	StreakMode                  string `toml:"streak_mode"`
	StreakLookback              int    `toml:"streak_lookback"`
	SubmissionsRateLimitPerMin  int    `toml:"submissions_rate_limit_per_min"`
	IdempotencyCacheSizeMB      int    `toml:"idempotency_cache_size_mb"`
	IdempotencyKeyExpirySeconds int    `toml:"idempotency_key_expiry_seconds"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML config file and returns the section for the given env,
// with defaults applied.
func Load(env, path string) (*Config, error) {
	var tomlCfg Toml
	if _, err := toml.DecodeFile(path, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.StreakMode == "" {
		c.StreakMode = StreakModeFull
	}
	if c.StreakLookback == 0 {
		c.StreakLookback = 100
	}
	if c.SubmissionsRateLimitPerMin == 0 {
		c.SubmissionsRateLimitPerMin = 30
	}
	if c.IdempotencyCacheSizeMB == 0 {
		c.IdempotencyCacheSizeMB = 16
	}
	if c.IdempotencyKeyExpirySeconds == 0 {
		c.IdempotencyKeyExpirySeconds = 24 * 60 * 60
	}
	if c.KafkaWorkoutsTopic == "" {
		c.KafkaWorkoutsTopic = "workouts.logged"
	}
}

func (c *Config) Validate() error {
	if c.StreakMode != StreakModeFull && c.StreakMode != StreakModeWindow {
		return fmt.Errorf("unknown streak mode: %s", c.StreakMode)
	}
	if c.StreakLookback < 0 {
		return errors.New("streak lookback must not be negative")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %s: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the location used to cut calendar days.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Secrets are never stored in the config file.
type Secrets struct {
	JWTSecret        string `env:"FITLOG_JWT_SECRET, required"`
	RedisPassword    string `env:"FITLOG_REDIS_PASS"`
	SentryDSN        string `env:"SENTRY_DSN"`
	MCPSecretHash    string `env:"FITLOG_MCP_SECRET_HASH"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME, default=fitlog"`
}

func LoadSecrets(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var secrets Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &secrets,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &secrets, nil
}
