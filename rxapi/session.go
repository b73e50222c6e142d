package rxapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-rx-api/internal/utils"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	// DefaultRequestTimeout is the transport-level timeout applied when the
	// session config leaves RequestTimeout unset.
	DefaultRequestTimeout = 1200 * time.Second

	// RequestIDHeader carries the per-subscription request identifier.
	RequestIDHeader = "X-Request-ID"

	contentTypeJSON = "application/json"
)

// SessionConfig configures a Session.
type SessionConfig struct {
	// RequestTimeout bounds every request sent through the session.
	// Defaults to DefaultRequestTimeout.
	RequestTimeout time.Duration
	// Headers are default headers applied to every request. They are merged
	// on top of Content-Type: application/json.
	Headers map[string]string
}

// SessionOption customises a Session at construction time.
type SessionOption func(*Session)

// WithLogger sets the logger used by the session and by every API bound to it.
func WithLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// WithHTTPClient replaces the underlying *http.Client (transport, TLS,
// proxies). The session timeout is applied on top of it.
func WithHTTPClient(c *http.Client) SessionOption {
	return func(s *Session) {
		if c.Transport != nil {
			s.client.SetTransport(c.Transport)
		}
		if c.Jar != nil {
			s.client.SetCookieJar(c.Jar)
		}
	}
}

// Session is the engine handle shared by the APIs that use it. It owns a
// resty client, the request timeout and the default headers.
//
// A Session is read-mostly: SetTimeout and SetDefaultHeaders must
// happen-before any dispatch that relies on the new values. They are not
// synchronised with in-flight requests.
type Session struct {
	client  *utils.HTTPClient
	headers Headers
	logger  zerolog.Logger
}

var _ Engine = (*Session)(nil)

// NewSession constructs a caller-owned Session.
func NewSession(cfg SessionConfig, opts ...SessionOption) *Session {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	headers := NewHeaders(map[string]string{"Content-Type": contentTypeJSON})
	headers.Merge(cfg.Headers)

	s := &Session{
		client:  utils.NewHTTPClient(cfg.RequestTimeout, headers.Map()),
		headers: headers,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.client.SetLogger(restyLogger{s.logger})

	return s
}

// SetTimeout replaces the transport-level request timeout.
func (s *Session) SetTimeout(d time.Duration) *Session {
	s.client.SetTimeout(d)
	return s
}

// Timeout returns the transport-level request timeout.
func (s *Session) Timeout() time.Duration {
	return s.client.Timeout()
}

// SetDefaultHeaders merges h into the session default headers. Same keys
// are overwritten.
func (s *Session) SetDefaultHeaders(h map[string]string) *Session {
	s.headers.Merge(h)
	s.client.SetHeaders(h)
	return s
}

// DefaultHeaders returns a copy of the session default headers.
func (s *Session) DefaultHeaders() Headers {
	return s.headers.Clone()
}

// Logger returns the session logger.
func (s *Session) Logger() zerolog.Logger {
	return s.logger
}

// Execute implements Engine on top of resty. Parameters are sent in the
// query string for GET and as a JSON body otherwise.
func (s *Session) Execute(ctx context.Context, d Descriptor) (*Response, error) {
	req := s.client.R().SetContext(ctx)
	for _, k := range d.Headers.Keys() {
		req.SetHeader(k, d.Headers.Get(k))
	}
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		req.SetHeader(RequestIDHeader, requestID)
	}
	if d.Encoding() == EncodingJSON && d.Parameters != nil {
		if req.Header.Get("Content-Type") == "" {
			req.SetHeader("Content-Type", contentTypeJSON)
		}
		req.SetBody(d.Parameters)
	}

	resp, err := req.Execute(d.Method, d.TargetURL())
	if resp == nil || resp.RawResponse == nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, err
}

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct {
	l zerolog.Logger
}

var _ resty.Logger = restyLogger{}

func (r restyLogger) Errorf(format string, v ...any) {
	r.l.Error().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.l.Warn().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.l.Debug().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}
