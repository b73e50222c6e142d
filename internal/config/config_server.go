package config

import (
	"fmt"
	"time"
)

// ServerConfig is the fixture server view of [StructuredConfig].
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
	FixturesPath   string
	LogLevel       string
}

// GetServerConfig builds and validates the fixture server config from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		Token:          cfg.Server.Token,
		FixturesPath:   cfg.Server.FixturesPath,
		LogLevel:       cfg.App.LogLevel,
	}

	return serverCfg, serverCfg.validate()
}
