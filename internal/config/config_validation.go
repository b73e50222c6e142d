// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable at
// all. Per-field rules live in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	for key := range cfg.Adapter.Headers {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%w: empty header name", ErrInvalidAdapterConfigs)
		}
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateBaseURL(cfg.Adapter.BaseURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if len(cfg.App.UserIDs) == 0 {
		return fmt.Errorf("%w: no user ids", ErrInvalidAppConfigs)
	}
	for _, id := range cfg.App.UserIDs {
		if id <= 0 {
			return fmt.Errorf("%w: user id %d", ErrInvalidAppConfigs, id)
		}
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validateBaseURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty base url")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("base url must include a host")
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	return nil
}
