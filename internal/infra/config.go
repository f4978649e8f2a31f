package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv              string
	LogLevel            string
	Port                string
	DatabaseURL         string
	DBMaxConns          int
	DBMinConns          int
	KieAPIKey           string
	KieBaseURL          string
	KieTimeout          time.Duration
	CallbackURL         string
	CallbackURLFallback string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
	RateLimitPerMin     int
	WorkerPollInterval  time.Duration
	AllowedOrigins      []string
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DBMaxConns:          getEnvInt("DB_MAX_CONNS", 10),
		DBMinConns:          getEnvInt("DB_MIN_CONNS", 1),
		KieAPIKey:           os.Getenv("KIE_API_KEY"),
		KieBaseURL:          getEnv("KIE_BASE_URL", "https://api.kie.ai/api/v1"),
		KieTimeout:          time.Second * time.Duration(getEnvInt("KIE_TIMEOUT_SECONDS", 60)),
		CallbackURL:         os.Getenv("KIE_CALLBACK_URL"),
		CallbackURLFallback: getEnv("KIE_CALLBACK_URL_FALLBACK", "https://proxy.kie.ai/mcp-callback"),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:     getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		WorkerPollInterval:  time.Second * time.Duration(getEnvInt("WORKER_POLL_SECONDS", 15)),
		AllowedOrigins:      getEnvList("ALLOWED_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.KieAPIKey == "" {
		return nil, fmt.Errorf("KIE_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
