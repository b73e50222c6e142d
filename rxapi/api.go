package rxapi

import (
	"context"
	"maps"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// API is a fluent request descriptor builder and a Publisher of the
// response body. Every setter returns the receiver so calls can be chained:
//
//	api := rxapi.New(session).
//	    SetURL("https://api.example.com/users").
//	    SetHTTPMethod(http.MethodPost).
//	    SetHeaders(map[string]string{"Authorization": "Bearer " + token}).
//	    SetParameter(map[string]any{"username": "alice"})
//
// Each Subscribe takes its own Descriptor snapshot, so an API may be
// reconfigured and subscribed again without affecting requests in flight.
type API struct {
	mu sync.RWMutex

	engine       Engine
	logger       zerolog.Logger
	url          string
	method       string
	headers      Headers
	params       map[string]any
	validateJSON bool
}

var _ Publisher = (*API)(nil)

// New returns an API bound to engine, usually a *Session. A nil engine gets
// a fresh Session with default configuration.
func New(engine Engine) *API {
	a := &API{
		method:       http.MethodGet,
		headers:      NewHeaders(map[string]string{"Content-Type": contentTypeJSON}),
		validateJSON: true,
	}
	return a.SetSession(engine)
}

// SetSession replaces the engine handle. When engine is a *Session its
// logger is adopted.
func (a *API) SetSession(engine Engine) *API {
	if engine == nil {
		engine = NewSession(SessionConfig{})
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.engine = engine
	if s, ok := engine.(*Session); ok {
		a.logger = s.Logger()
	} else {
		a.logger = zerolog.Nop()
	}
	return a
}

// SetLogger overrides the logger used for this API's subscriptions.
func (a *API) SetLogger(l zerolog.Logger) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger = l
	return a
}

// SetHeaders merges h into the request headers key by key. Later calls win
// for the same key; keys from earlier calls are kept.
func (a *API) SetHeaders(h map[string]string) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.headers.Merge(h)
	return a
}

// SetURL replaces the target URL. It is not validated until dispatch.
func (a *API) SetURL(url string) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.url = url
	return a
}

// SetHTTPMethod replaces the HTTP method (GET, POST, PUT, DELETE, ...).
func (a *API) SetHTTPMethod(method string) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.method = strings.ToUpper(strings.TrimSpace(method))
	return a
}

// SetParameter replaces the request parameters. The map is copied.
func (a *API) SetParameter(params map[string]any) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.params = maps.Clone(params)
	return a
}

// SetJSONValidation toggles checking that non-empty response bodies are
// valid JSON. Enabled by default.
func (a *API) SetJSONValidation(enabled bool) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.validateJSON = enabled
	return a
}

// Descriptor snapshots and validates the current configuration.
func (a *API) Descriptor() (Descriptor, error) {
	a.mu.RLock()
	d := Descriptor{
		URL:        a.url,
		Method:     a.method,
		Headers:    a.headers,
		Parameters: a.params,
	}.clone()
	a.mu.RUnlock()

	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Subscribe implements Publisher. The subscriber receives its Subscription
// synchronously; the HTTP call starts on the first positive Request.
// An invalid configuration is delivered as a single *ConfigurationError.
func (a *API) Subscribe(ctx context.Context, s Subscriber) {
	d, err := a.Descriptor()

	a.mu.RLock()
	engine, logger, validate := a.engine, a.logger, a.validateJSON
	a.mu.RUnlock()

	sub := newSubscription(ctx, s, engine, d, validate, logger)
	if err != nil {
		sub.initErr = err
	}

	s.OnSubscribe(sub)
	if err != nil {
		sub.fail(err)
	}
}
