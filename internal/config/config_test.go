package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("MENU_GENERATOR", "")
	t.Setenv("WEATHER_TIMEOUT", "")

	cfg := Load()

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.MenuGenerator != "rules" {
		t.Errorf("expected rules generator by default, got %s", cfg.MenuGenerator)
	}
	if cfg.WeatherTimeout != 5*time.Second {
		t.Errorf("expected 5s weather timeout, got %v", cfg.WeatherTimeout)
	}
}

func TestValidate(t *testing.T) {
	t.Run("missing required vars", func(t *testing.T) {
		cfg := &Config{MenuGenerator: "rules"}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing DATABASE_URL and JWT_SECRET")
		}
	})

	t.Run("llm generator without key", func(t *testing.T) {
		cfg := &Config{DatabaseURL: "postgres://x", JWTSecret: "s", MenuGenerator: "llm"}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for llm generator without api key")
		}
	})

	t.Run("unknown generator", func(t *testing.T) {
		cfg := &Config{DatabaseURL: "postgres://x", JWTSecret: "s", MenuGenerator: "magic"}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for unknown generator")
		}
	})

	t.Run("valid", func(t *testing.T) {
		cfg := &Config{DatabaseURL: "postgres://x", JWTSecret: "s", MenuGenerator: "rules"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGetDurationAcceptsSeconds(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "12")
	if d := getDuration("LLM_TIMEOUT", time.Second); d != 12*time.Second {
		t.Fatalf("expected 12s, got %v", d)
	}
}
