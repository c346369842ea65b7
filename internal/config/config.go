package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds application level configuration.
type Config struct {
	ServerPort      string        `yaml:"server_port"      env:"SERVER_PORT"      env-default:"8080"`
	Env             string        `yaml:"env"              env:"APP_ENV"          env-default:"development"`
	LogLevel        string        `yaml:"log_level"        env:"LOG_LEVEL"        env-default:"info"`
	PageSize        int           `yaml:"page_size"        env:"PAGE_SIZE"        env-default:"9"`
	SessionTTL      time.Duration `yaml:"session_ttl"      env:"SESSION_TTL"      env-default:"24h"`
	MaxSessions     int           `yaml:"max_sessions"     env:"MAX_SESSIONS"     env-default:"10000"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"MAX_UPLOAD_BYTES" env-default:"10485760"`
	SeedPath        string        `yaml:"seed_path"        env:"SEED_PATH"`
	SwaggerHost     string        `yaml:"swagger_host"     env:"SWAGGER_HOST"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Load reads configuration from an optional .env file, an optional YAML file
// and the environment. Priority: ENV > YAML > defaults.
// The YAML path comes from CONFIG_PATH (fallback "./config.yaml"); a missing
// fallback file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings the dashboard cannot run with.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", c.PageSize)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", c.MaxUploadBytes)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %s)", c.SessionTTL)
	}
	if c.MaxSessions <= 0 {
		return fmt.Errorf("max_sessions must be > 0 (got %d)", c.MaxSessions)
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
