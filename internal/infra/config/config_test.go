package config_test

import (
	"testing"
	"time"

	"github.com/asghar-0017/aparntment-frontend/internal/infra/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "dev" {
		t.Errorf("expected dev env, got %q", cfg.Env)
	}
	if cfg.CacheMode != "memory" {
		t.Errorf("expected memory cache mode, got %q", cfg.CacheMode)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Errorf("expected 10s api timeout, got %v", cfg.APITimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:5152")
	t.Setenv("CACHE_MODE", "Redis")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("REDIS_DB", "3")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:5152" {
		t.Errorf("unexpected api base url %q", cfg.APIBaseURL)
	}
	if cfg.CacheMode != "redis" {
		t.Errorf("expected redis cache mode, got %q", cfg.CacheMode)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("expected 30s ttl, got %v", cfg.CacheTTL)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("expected redis db 3, got %d", cfg.RedisDB)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad cache mode", key: "CACHE_MODE", value: "disk"},
		{name: "bad ttl", key: "CACHE_TTL", value: "fast"},
		{name: "bad redis db", key: "REDIS_DB", value: "three"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := config.Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
