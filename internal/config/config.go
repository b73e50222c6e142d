// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-rx-api binaries. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds what the client fetches and how it presents it.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote API location and the request session settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background refresh.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds the settings of the local fixture users API.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// UserIDs are the user records loaded on every refresh.
	// Env: APP_USER_IDS (comma separated)
	UserIDs []int64 `env:"USER_IDS" envSeparator:","`

	// Interactive starts the terminal UI instead of plain log output.
	// Env: APP_INTERACTIVE
	Interactive bool `env:"INTERACTIVE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds the settings of the outbound request session.
type Adapter struct {
	// BaseURL is the root of the users API, e.g. "https://jsonplaceholder.typicode.com".
	// A bare host:port gets an http:// scheme.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every request sent through the session.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Headers are default headers added to every request.
	// Env: ADAPTER_HEADERS ("Key:Value,Other:Value")
	Headers map[string]string `env:"HEADERS"`

	// Token is sent as a bearer token on every user request when set.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often users are reloaded. Zero disables the
	// periodic refresh.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Server holds network settings for the fixture users API.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, e.g. "localhost:8080".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of one inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token, when set, is the bearer token every request must carry.
	// Env: SERVER_TOKEN
	Token string `env:"TOKEN"`

	// FixturesPath is a JSON file with the served users. Empty means the
	// built-in fixtures.
	// Env: SERVER_FIXTURES
	FixturesPath string `env:"FIXTURES"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. For every field the first source with a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
