package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	AuthModeStatic  = "static"
	AuthModeSession = "session"
)

type Config struct {
	Environment string `toml:"environment"`
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
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresPassword string `toml:"postgres_password"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// auth
	AuthMode         string        `toml:"auth_mode"`
	DevLoginEnabled  bool          `toml:"dev_login_enabled"`
	StaticUserID     string        `toml:"static_user_id"`
	StaticUserEmail  string        `toml:"static_user_email"`
	StaticUserName   string        `toml:"static_user_name"`
	SessionTTL       time.Duration `toml:"session_ttl"`
	AllowedOrigins   []string      `toml:"allowed_origins"`
	StreakTimezone   string        `toml:"streak_timezone"`
	LibraryCacheSize int           `toml:"library_cache_size_mb"`

	// coach
	CoachModel                  string `toml:"coach_model"`
	CoachRateLimitAllowedPerMin int    `toml:"coach_rate_limit_allowed_per_min"`
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
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with defaults filled in for the omitted optional values.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

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
		c.Port = 5000
	}
	if c.AuthMode == "" {
		c.AuthMode = AuthModeSession
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = 7 * 24 * time.Hour
	}
	if c.StreakTimezone == "" {
		c.StreakTimezone = "UTC"
	}
	if c.LibraryCacheSize == 0 {
		c.LibraryCacheSize = 8
	}
	if c.CoachModel == "" {
		c.CoachModel = "gemini-2.5-flash-lite"
	}
	if c.CoachRateLimitAllowedPerMin == 0 {
		c.CoachRateLimitAllowedPerMin = 10
	}
}

func (c *Config) Validate() error {
	switch c.AuthMode {
	case AuthModeSession:
	case AuthModeStatic:
		if c.StaticUserID == "" {
			return errors.New("static auth mode requires static_user_id")
		}
	default:
		return fmt.Errorf("unknown auth mode: %s", c.AuthMode)
	}

	if c.DevLoginEnabled && c.StaticUserID == "" {
		return errors.New("dev login requires static_user_id")
	}

	if _, err := time.LoadLocation(c.StreakTimezone); err != nil {
		return fmt.Errorf("streak timezone: %w", err)
	}

	return nil
}

// Location returns the timezone used for calendar day boundaries.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.StreakTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
