package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL  string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecretKey string `envconfig:"JWT_SECRET_KEY" required:"true"`
	ServerPort   int    `envconfig:"SERVER_PORT" default:"8080"`

	R2 R2Config `envconfig:"R2"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"100"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	StandingsCacheTTL        time.Duration `envconfig:"STANDINGS_CACHE_TTL" default:"5m"`
	StandingsRefreshInterval time.Duration `envconfig:"STANDINGS_REFRESH_INTERVAL" default:"1m"`
}

// R2Config is optional; snapshot publishing is disabled when any field is empty.
type R2Config struct {
	AccountID       string `envconfig:"ACCOUNT_ID"`
	AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
	BucketName      string `envconfig:"BUCKET_NAME"`
	PublicBaseURL   string `envconfig:"PUBLIC_BASE_URL"`
}

func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" &&
		c.BucketName != "" && c.PublicBaseURL != ""
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if c.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}
	if c.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.RateLimitRequests)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}
	if c.StandingsCacheTTL < 0 {
		return fmt.Errorf("STANDINGS_CACHE_TTL must not be negative, got %s", c.StandingsCacheTTL)
	}
	if c.StandingsRefreshInterval <= 0 {
		return fmt.Errorf("STANDINGS_REFRESH_INTERVAL must be positive, got %s", c.StandingsRefreshInterval)
	}
	return nil
}
