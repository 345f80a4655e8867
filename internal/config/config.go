package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	HTTPPort string

	DatabaseURL string
	JWTSecret   string
	CORSOrigins []string

	LogLevel  string
	LogFormat string

	// rules | llm
	MenuGenerator string

	WeatherAPIKey  string
	WeatherBaseURL string
	WeatherTimeout time.Duration

	LLMProvider string // gemini | chat
	LLMAPIKey   string
	LLMModel    string
	LLMAPIURL   string
	LLMTimeout  time.Duration

	R2Endpoint      string
	R2AccessKey     string
	R2SecretKey     string
	R2Bucket        string
	R2PublicBaseURL string
}

// Load reads .env (outside production) and the process environment.
func Load() *Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	return &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		MenuGenerator: strings.ToLower(getEnv("MENU_GENERATOR", "rules")),

		WeatherAPIKey:  getEnv("WEATHER_API_KEY", ""),
		WeatherBaseURL: getEnv("WEATHER_API_URL", "https://api.weatherapi.com/v1"),
		WeatherTimeout: getDuration("WEATHER_TIMEOUT", 5*time.Second),

		LLMProvider: strings.ToLower(getEnv("LLM_PROVIDER", "gemini")),
		LLMAPIKey:   getEnv("LLM_API_KEY", ""),
		LLMModel:    getEnv("LLM_MODEL", "gemini-1.5-flash"),
		LLMAPIURL:   getEnv("LLM_API_URL", ""),
		LLMTimeout:  getDuration("LLM_TIMEOUT", 30*time.Second),

		R2Endpoint:      getEnv("R2_ENDPOINT", ""),
		R2AccessKey:     getEnv("R2_ACCESS_KEY", ""),
		R2SecretKey:     getEnv("R2_SECRET_KEY", ""),
		R2Bucket:        getEnv("R2_BUCKET_NAME", ""),
		R2PublicBaseURL: getEnv("R2_PUBLIC_BASE_URL", ""),
	}
}

// Validate fails fast on settings the server cannot run without.
func (c *Config) Validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing env vars: %s", strings.Join(missing, ", "))
	}

	switch c.MenuGenerator {
	case "rules":
	case "llm":
		if c.LLMAPIKey == "" {
			return errors.New("MENU_GENERATOR=llm requires LLM_API_KEY")
		}
		if c.LLMProvider == "chat" && c.LLMAPIURL == "" {
			return errors.New("LLM_PROVIDER=chat requires LLM_API_URL")
		}
	default:
		return fmt.Errorf("unknown MENU_GENERATOR %q (use rules or llm)", c.MenuGenerator)
	}

	return nil
}

// WeatherEnabled reports whether the live weather provider can be queried.
func (c *Config) WeatherEnabled() bool {
	return c.WeatherAPIKey != ""
}

// StorageEnabled reports whether published cards are uploaded.
func (c *Config) StorageEnabled() bool {
	return c.R2Endpoint != "" && c.R2Bucket != "" && c.R2AccessKey != "" && c.R2SecretKey != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// bare number = seconds
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
