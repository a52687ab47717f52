package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env            string
	HTTPAddr       string
	APIBaseURL     string
	APITimeout     time.Duration
	PublicBaseURL  string
	WhatsAppNumber string
	CacheMode      string
	CacheTTL       time.Duration
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
}

// Load parses configuration from the current environment, reading a local
// .env file first when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:            getEnv("APP_ENV", "dev"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":5173"),
		APIBaseURL:     getEnv("API_BASE_URL", "https://aparntment-rental-frontend.vercel.app"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:5173"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "+923041513361"),
		CacheMode:      strings.ToLower(getEnv("CACHE_MODE", "memory")),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
	}

	timeout, err := parseDurationEnv("API_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.APITimeout = timeout

	ttl, err := parseDurationEnv("CACHE_TTL", 2*time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.CacheTTL = ttl

	db, err := parseIntEnv("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.RedisDB = db

	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL is required")
	}
	switch cfg.CacheMode {
	case "memory", "redis":
	default:
		return Config{}, fmt.Errorf("invalid CACHE_MODE: %q", cfg.CacheMode)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s integer: %w", key, err)
	}
	return n, nil
}
