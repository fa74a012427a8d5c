package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	JWKSURL     string
	CORSOrigins string
	// Redis cache for the published menu structure. Empty disables caching.
	RedisAddr    string
	MenuCacheTTL time.Duration
	// S3 bucket for uploaded file payloads. Empty falls back to the
	// in-memory store (dev only, contents are lost on restart).
	S3Bucket string
	S3Region string
	// Access policy for the "admin" menu capability.
	AdminRole  string
	AdminUsers []string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		JWKSURL:      getEnv("JWKS_URL", ""),
		CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:3000"),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		MenuCacheTTL: getDuration("MENU_CACHE_TTL", 5*time.Minute),
		S3Bucket:     getEnv("S3_BUCKET", ""),
		S3Region:     getEnv("S3_REGION", "us-east-1"),
		AdminRole:    getEnv("ADMIN_ROLE", "Admin"),
		AdminUsers:   getList("ADMIN_USERS"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getList parses a comma-separated env var, dropping empty entries.
func getList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
