package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures the runtime settings a client process reads from its
// environment. Only one credential mode is expected to be populated.
type Config struct {
	App     AppConfig
	Infobip InfobipConfig
	HTTP    HTTPConfig
}

// AppConfig contains generic application level settings.
type AppConfig struct {
	Env      string
	LogLevel string
}

// InfobipConfig holds the API endpoint and credentials.
type InfobipConfig struct {
	BaseURL      string
	APIKey       string
	APIKeyPrefix string
	BearerToken  string
	Username     string
	Password     string
}

// HTTPConfig tunes the outbound transport.
type HTTPConfig struct {
	TimeoutSeconds int
	MaxBodyBytes   int
}

// Load reads environment variables (and a .env file when present), applies
// defaults, validates required values and returns a populated Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ldr := &envLoader{}

	cfg := &Config{}
	cfg.App.Env = ldr.getString("APP_ENV", "development", false)
	cfg.App.LogLevel = ldr.getString("LOG_LEVEL", "info", false)

	cfg.Infobip.BaseURL = ldr.getString("IB_BASE_URL", "", true)
	cfg.Infobip.APIKey = ldr.getString("IB_API_KEY", "", false)
	cfg.Infobip.APIKeyPrefix = ldr.getString("IB_API_KEY_PREFIX", "App", false)
	cfg.Infobip.BearerToken = ldr.getString("IB_BEARER_TOKEN", "", false)
	cfg.Infobip.Username = ldr.getString("IB_USERNAME", "", false)
	cfg.Infobip.Password = ldr.getString("IB_PASSWORD", "", false)

	cfg.HTTP.TimeoutSeconds = ldr.getInt("IB_HTTP_TIMEOUT_SECONDS", 30, false)
	cfg.HTTP.MaxBodyBytes = ldr.getInt("IB_MAX_BODY_BYTES", 1<<20, false)

	if cfg.Infobip.APIKey == "" && cfg.Infobip.BearerToken == "" && cfg.Infobip.Username == "" {
		ldr.addError("one of IB_API_KEY, IB_BEARER_TOKEN or IB_USERNAME is required")
	}
	if cfg.HTTP.TimeoutSeconds <= 0 {
		ldr.addError("IB_HTTP_TIMEOUT_SECONDS must be positive")
	}
	if cfg.HTTP.MaxBodyBytes <= 0 {
		ldr.addError("IB_MAX_BODY_BYTES must be positive")
	}

	if err := ldr.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type envLoader struct {
	errs []string
}

func (l *envLoader) validate() error {
	if len(l.errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(l.errs, "; "))
}

func (l *envLoader) lookup(key string, required bool) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		if val = strings.TrimSpace(val); val != "" {
			return val, true
		}
	}
	if required {
		l.addError(fmt.Sprintf("%s is required", key))
	}
	return "", false
}

func (l *envLoader) getString(key, def string, required bool) string {
	if val, ok := l.lookup(key, required); ok {
		return val
	}
	return def
}

func (l *envLoader) getInt(key string, def int, required bool) int {
	val, ok := l.lookup(key, required)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		l.addError(fmt.Sprintf("%s must be a valid integer", key))
		return def
	}
	return i
}

func (l *envLoader) addError(err string) {
	l.errs = append(l.errs, err)
}
