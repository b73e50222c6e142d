package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"net"
	"slices"
	"strconv"
	"strings"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a users API base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-H default header "Key: Value", repeatable
//	-users comma-separated user ids, repeatable
//	-i run the terminal UI
//	-log-level zerolog level name
//	-refresh refresh interval (e.g., "1m"), 0 disables
//	-t bearer token sent with user requests
//	-listen fixture server address host:port
//	-server-timeout fixture server request timeout
//	-server-token bearer token the fixture server requires
//	-fixtures JSON file with the served users
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		baseURL         string
		requestTimeout  time.Duration
		headers         = headerFlag{}
		userIDs         idListFlag
		interactive     bool
		logLevel        string
		refreshInterval time.Duration
		jsonConfigPath  string
		token           string

		serverAddress NetAddress
		serverTimeout time.Duration
		serverToken   string
		fixturesPath  string
	)

	fs := flag.NewFlagSet("go-rx-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&baseURL, "a", "", "Users API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(headers, "H", "Default header 'Key: Value' (repeatable)")
	fs.Var(&userIDs, "users", "Comma-separated user ids")
	fs.BoolVar(&interactive, "i", false, "Run the terminal UI")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&refreshInterval, "refresh", 0, "Refresh interval (e.g., 1m), 0 disables")
	fs.StringVar(&token, "t", "", "Bearer token sent with user requests")
	fs.Var(&serverAddress, "listen", "Fixture server address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Fixture server request timeout")
	fs.StringVar(&serverToken, "server-token", "", "Bearer token the fixture server requires")
	fs.StringVar(&fixturesPath, "fixtures", "", "JSON file with the served users")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			UserIDs:     userIDs,
			Interactive: interactive,
			LogLevel:    logLevel,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Workers: Workers{RefreshInterval: refreshInterval},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
			Token:          serverToken,
			FixturesPath:   fixturesPath,
		},
		JSONFilePath: jsonConfigPath,
	}
	if len(headers) > 0 {
		cfg.Adapter.Headers = headers
	}

	return cfg, nil
}

// headerFlag collects repeated "Key: Value" arguments.
// It implements the flag.Value interface.
type headerFlag map[string]string

func (h headerFlag) String() string {
	pairs := make([]string, 0, len(h))
	for _, k := range slices.Sorted(maps.Keys(h)) {
		pairs = append(pairs, k+": "+h[k])
	}
	return strings.Join(pairs, ", ")
}

// Set parses one "Key: Value" pair. The value may itself contain colons.
func (h headerFlag) Set(s string) error {
	key, value, ok := strings.Cut(s, ":")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return errors.New("need header in a form `Key: Value`")
	}

	h[key] = strings.TrimSpace(value)
	return nil
}

// NetAddress is a host:port flag value.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. An empty host listens on all interfaces.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of range", port)
	}

	a.Host = host
	a.Port = port
	return nil
}

// idListFlag collects comma-separated positive ids.
// It implements the flag.Value interface.
type idListFlag []int64

func (l *idListFlag) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, 0, len(*l))
	for _, id := range *l {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

func (l *idListFlag) Set(s string) error {
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return err
		}
		if id < 1 {
			return errors.New("user id is a positive integer")
		}
		*l = append(*l, id)
	}
	return nil
}
