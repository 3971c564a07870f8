// Package configuration holds the endpoint and credentials used to reach the
// messaging API.
package configuration

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/example/infobip-go/internal/config"
)

// DefaultAPIKeyPrefix is prepended to API keys in the Authorization header.
const DefaultAPIKeyPrefix = "App"

// APIKey authenticates with a static key.
type APIKey struct {
	Key    string
	Prefix string
}

// BasicAuth authenticates with account credentials.
type BasicAuth struct {
	Username string
	Password string
}

// Configuration describes where requests go and how they are authorised.
// Exactly one of APIKey, BearerToken or BasicAuth must be set.
type Configuration struct {
	BaseURL     string
	APIKey      *APIKey
	BearerToken string
	BasicAuth   *BasicAuth
}

// WithAPIKey builds a configuration using API key authentication.
func WithAPIKey(baseURL, key string) Configuration {
	return Configuration{
		BaseURL: baseURL,
		APIKey:  &APIKey{Key: key, Prefix: DefaultAPIKeyPrefix},
	}
}

// WithBearerToken builds a configuration using an OAuth bearer token.
func WithBearerToken(baseURL, token string) Configuration {
	return Configuration{BaseURL: baseURL, BearerToken: token}
}

// WithBasicAuth builds a configuration using basic credentials.
func WithBasicAuth(baseURL, username, password string) Configuration {
	return Configuration{
		BaseURL:   baseURL,
		BasicAuth: &BasicAuth{Username: username, Password: password},
	}
}

// FromEnv reads IB_BASE_URL and the credential variables, loading a .env file
// first when one exists. IB_API_KEY wins over IB_BEARER_TOKEN, which wins
// over IB_USERNAME/IB_PASSWORD.
func FromEnv() (Configuration, error) {
	cfg, err := config.Load()
	if err != nil {
		return Configuration{}, err
	}
	return fromConfig(cfg.Infobip), nil
}

func fromConfig(ib config.InfobipConfig) Configuration {
	out := Configuration{BaseURL: ib.BaseURL}
	switch {
	case ib.APIKey != "":
		out.APIKey = &APIKey{Key: ib.APIKey, Prefix: ib.APIKeyPrefix}
	case ib.BearerToken != "":
		out.BearerToken = ib.BearerToken
	case ib.Username != "":
		out.BasicAuth = &BasicAuth{Username: ib.Username, Password: ib.Password}
	}
	return out
}

// Validate checks the base URL and that exactly one credential mode is set.
func (c Configuration) Validate() error {
	var problems []string

	u, err := url.Parse(strings.TrimSpace(c.BaseURL))
	switch {
	case strings.TrimSpace(c.BaseURL) == "":
		problems = append(problems, "base url is required")
	case err != nil || u.Scheme == "" || u.Host == "":
		problems = append(problems, fmt.Sprintf("base url %q must be absolute", c.BaseURL))
	}

	modes := 0
	if c.APIKey != nil {
		modes++
		if strings.TrimSpace(c.APIKey.Key) == "" {
			problems = append(problems, "api key is empty")
		}
	}
	if c.BearerToken != "" {
		modes++
	}
	if c.BasicAuth != nil {
		modes++
		if strings.TrimSpace(c.BasicAuth.Username) == "" {
			problems = append(problems, "basic auth username is empty")
		}
	}
	switch modes {
	case 0:
		problems = append(problems, "no credentials configured")
	case 1:
	default:
		problems = append(problems, "more than one credential mode configured")
	}

	if len(problems) > 0 {
		return errors.New("infobip configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// Authorization renders the Authorization header value.
func (c Configuration) Authorization() string {
	switch {
	case c.APIKey != nil:
		prefix := strings.TrimSpace(c.APIKey.Prefix)
		if prefix == "" {
			prefix = DefaultAPIKeyPrefix
		}
		return prefix + " " + strings.TrimSpace(c.APIKey.Key)
	case c.BearerToken != "":
		return "Bearer " + c.BearerToken
	case c.BasicAuth != nil:
		creds := c.BasicAuth.Username + ":" + c.BasicAuth.Password
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
	}
	return ""
}
