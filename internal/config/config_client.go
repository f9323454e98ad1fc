package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCredentials holds the login used by the client before any call to
// the protected asset endpoints.
type ClientCredentials struct {
	Username string
	Password string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Credentials contains the login used by the client.
	Credentials ClientCredentials
	// LogLevel is the zerolog level name for client diagnostics.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Server-only settings such as the token sign key are not required here, so
// the merged config is not validated as a whole; only the [ClientConfig]
// view is.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Credentials: ClientCredentials{
			Username: cfg.Adapter.Username,
			Password: cfg.Adapter.Password,
		},
		LogLevel: cfg.App.LogLevel,
	}
}
