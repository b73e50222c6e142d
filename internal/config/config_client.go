package config

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// UserIDs are the records fetched on every refresh, in display order.
	UserIDs []int64
	// Interactive selects the terminal UI.
	Interactive bool
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the users API root.
	BaseURL string
	// RequestTimeout is the session-wide request timeout.
	RequestTimeout time.Duration
	// Headers are the session default headers.
	Headers map[string]string
	// Token is the bearer token for user requests, empty for none.
	Token string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh job runs. Zero disables it.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			UserIDs:     slices.Clone(cfg.App.UserIDs),
			Interactive: cfg.App.Interactive,
			LogLevel:    cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Headers:        maps.Clone(cfg.Adapter.Headers),
			Token:          cfg.Adapter.Token,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
