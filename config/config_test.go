package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/standings?sslmode=disable")
	t.Setenv("JWT_SECRET_KEY", "secret")
}

func TestFromEnvDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("port: want 8080, got %d", cfg.ServerPort)
	}
	if cfg.RateLimitRequests != 100 {
		t.Errorf("rate limit: want 100, got %d", cfg.RateLimitRequests)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("rate window: want 1m, got %s", cfg.RateLimitWindow)
	}
	if cfg.StandingsCacheTTL != 5*time.Minute {
		t.Errorf("cache ttl: want 5m, got %s", cfg.StandingsCacheTTL)
	}
	if cfg.R2.Enabled() {
		t.Error("R2 should be disabled without credentials")
	}
}

func TestFromEnvMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET_KEY", "secret")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestFromEnvPortRange(t *testing.T) {
	tests := []struct {
		port    string
		wantErr bool
	}{
		{"1", false},
		{"65535", false},
		{"0", true},
		{"70000", true},
		{"abc", true},
	}
	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			setRequired(t)
			t.Setenv("SERVER_PORT", tt.port)
			_, err := FromEnv()
			if (err != nil) != tt.wantErr {
				t.Errorf("SERVER_PORT=%s: wantErr %v, got %v", tt.port, tt.wantErr, err)
			}
		})
	}
}

func TestR2Enabled(t *testing.T) {
	setRequired(t)
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "bucket")
	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if !cfg.R2.Enabled() {
		t.Error("R2 should be enabled")
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("origins: want 2, got %v", cfg.CORSAllowedOrigins)
	}
}
