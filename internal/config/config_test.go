package config_test

import (
	"strings"
	"testing"

	"github.com/example/infobip-go/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "LOG_LEVEL", "IB_BASE_URL", "IB_API_KEY", "IB_API_KEY_PREFIX",
		"IB_BEARER_TOKEN", "IB_USERNAME", "IB_PASSWORD", "IB_HTTP_TIMEOUT_SECONDS", "IB_MAX_BODY_BYTES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadSuccess(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("IB_BASE_URL", "https://xyz.api.infobip.com")
	t.Setenv("IB_API_KEY", " secret ")
	t.Setenv("IB_HTTP_TIMEOUT_SECONDS", "5")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Env != "production" {
		t.Fatalf("expected app env production, got %s", cfg.App.Env)
	}
	if cfg.App.LogLevel != "warn" {
		t.Fatalf("expected log level warn, got %s", cfg.App.LogLevel)
	}
	if cfg.Infobip.APIKey != "secret" {
		t.Fatalf("expected trimmed api key, got %q", cfg.Infobip.APIKey)
	}
	if cfg.Infobip.APIKeyPrefix != "App" {
		t.Fatalf("expected default prefix App, got %s", cfg.Infobip.APIKeyPrefix)
	}
	if cfg.HTTP.TimeoutSeconds != 5 {
		t.Fatalf("expected timeout 5, got %d", cfg.HTTP.TimeoutSeconds)
	}
	if cfg.HTTP.MaxBodyBytes != 1<<20 {
		t.Fatalf("expected default body limit, got %d", cfg.HTTP.MaxBodyBytes)
	}
}

func TestLoadCollectsAllErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("IB_HTTP_TIMEOUT_SECONDS", "soon")

	_, err := config.Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	for _, want := range []string{
		"config validation failed",
		"IB_BASE_URL is required",
		"IB_HTTP_TIMEOUT_SECONDS must be a valid integer",
		"one of IB_API_KEY, IB_BEARER_TOKEN or IB_USERNAME is required",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestLoadBasicCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("IB_BASE_URL", "https://xyz.api.infobip.com")
	t.Setenv("IB_USERNAME", "user")
	t.Setenv("IB_PASSWORD", "pass")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Infobip.Username != "user" || cfg.Infobip.Password != "pass" {
		t.Fatalf("unexpected basic credentials: %+v", cfg.Infobip)
	}
}
