package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Database. sqlite:///path or postgres:// DSN.
	DatabaseURL string

	// Server
	Port        string
	Environment string
	LogLevel    string
	CORSOrigins string
	StaticDir   string

	// Security
	RateLimitEnabled   bool
	RateLimitPerMinute int
	AuthEnabled        bool
	JWTSecret          string
	AdminToken         string

	// AI service
	AIProvider   string
	OpenAIAPIKey string
	OpenAIModel  string
	AITimeout    time.Duration

	// Monitoring
	SentryDSN         string
	PrometheusEnabled bool
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "sqlite:///./moderation.db"),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:8000,http://127.0.0.1:8000"),
		StaticDir:   getEnv("STATIC_DIR", ""),

		RateLimitEnabled:   parseBool(getEnv("RATE_LIMIT_ENABLED", "false")),
		RateLimitPerMinute: parseInt(getEnv("RATE_LIMIT_PER_MINUTE", "60"), 60),
		AuthEnabled:        parseBool(getEnv("AUTH_ENABLED", "false")),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AdminToken:         getEnv("ADMIN_TOKEN", ""),

		AIProvider:   getEnv("AI_PROVIDER", "rules"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AITimeout:    parseDuration(getEnv("AI_TIMEOUT", "60s"), 60*time.Second),

		SentryDSN:         getEnv("SENTRY_DSN", ""),
		PrometheusEnabled: parseBool(getEnv("PROMETHEUS_ENABLED", "true")),
	}
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true")
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
