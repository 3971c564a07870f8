// Package infobip bundles the SMS, email and WhatsApp channel clients over
// one shared transport.
package infobip

import (
	"fmt"
	"net/http"
	"time"

	"github.com/example/infobip-go/api"
	"github.com/example/infobip-go/configuration"
	"github.com/example/infobip-go/email"
	"github.com/example/infobip-go/internal/config"
	"github.com/example/infobip-go/internal/logger"
	"github.com/example/infobip-go/sms"
	"github.com/example/infobip-go/whatsapp"
)

// Client exposes one client per channel. All of them share the same
// api.Client and are safe for concurrent use.
type Client struct {
	SMS      *sms.Client
	Email    *email.Client
	WhatsApp *whatsapp.Client
}

// NewClient validates cfg and builds the channel clients.
func NewClient(cfg configuration.Configuration, opts ...api.Option) (*Client, error) {
	transport, err := api.NewClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{
		SMS:      sms.NewClient(transport),
		Email:    email.NewClient(transport),
		WhatsApp: whatsapp.NewClient(transport),
	}, nil
}

// NewClientFromEnv reads credentials and runtime settings from the
// environment (and .env). APP_ENV and LOG_LEVEL shape the logger,
// IB_HTTP_TIMEOUT_SECONDS and IB_MAX_BODY_BYTES the transport. Options in
// opts are applied last and win.
func NewClientFromEnv(opts ...api.Option) (*Client, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg, err := configuration.FromEnv()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(settings.App.Env, settings.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("infobip: LOG_LEVEL: %w", err)
	}

	base := []api.Option{
		api.WithLogger(logger.Component(log, "infobip.api")),
		api.WithHTTPClient(&http.Client{Timeout: time.Duration(settings.HTTP.TimeoutSeconds) * time.Second}),
		api.WithBodyLimit(int64(settings.HTTP.MaxBodyBytes)),
	}
	return NewClient(cfg, append(base, opts...)...)
}
