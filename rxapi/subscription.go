package rxapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/go-rx-api/internal/utils"
	"github.com/rs/zerolog"
)

var requestIDs = utils.NewUUIDGenerator()

// subscription bridges one Engine call into the Subscriber contract.
// target is the only path to the subscriber; detach clears it, so at most
// one terminal event can ever be delivered.
type subscription struct {
	mu      sync.Mutex
	target  Subscriber
	started bool
	cancel  context.CancelFunc

	parent       context.Context
	engine       Engine
	desc         Descriptor
	validateJSON bool
	initErr      error
	logger       zerolog.Logger
}

func newSubscription(ctx context.Context, target Subscriber, engine Engine, d Descriptor, validateJSON bool, logger zerolog.Logger) *subscription {
	return &subscription{
		target:       target,
		parent:       ctx,
		engine:       engine,
		desc:         d,
		validateJSON: validateJSON,
		logger:       logger,
	}
}

// Request implements Subscription.
func (s *subscription) Request(n int64) {
	s.mu.Lock()
	if s.target == nil || s.started {
		s.mu.Unlock()
		return
	}
	if s.initErr != nil {
		s.mu.Unlock()
		s.fail(s.initErr)
		return
	}
	if n <= 0 {
		s.mu.Unlock()
		s.fail(ErrInvalidDemand)
		return
	}

	s.started = true
	requestID := requestIDs.Generate()
	ctx, cancel := context.WithCancel(utils.WithRequestID(s.parent, requestID))
	s.cancel = cancel
	s.mu.Unlock()

	l := s.logger.With().
		Str("request_id", requestID).
		Str("method", s.desc.Method).
		Str("url", s.desc.URL).
		Logger()

	go s.run(ctx, cancel, l)
}

// Cancel implements Subscription.
func (s *subscription) Cancel() {
	s.mu.Lock()
	s.target = nil
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (s *subscription) run(ctx context.Context, cancel context.CancelFunc, l zerolog.Logger) {
	defer cancel()

	start := time.Now()
	l.Debug().Msg("request started")

	resp, err := s.engine.Execute(ctx, s.desc)
	if ctx.Err() != nil {
		s.detach()
		l.Debug().Dur("elapsed", time.Since(start)).Msg("request cancelled")
		return
	}

	body, err := classify(resp, err, s.validateJSON)
	event := l.Debug().Dur("elapsed", time.Since(start))
	if resp != nil {
		event = event.Int("status", resp.StatusCode)
	}
	event.AnErr("error", err).Msg("request finished")

	target := s.detach()
	if target == nil {
		return
	}
	if err != nil {
		target.OnError(err)
		return
	}
	target.OnNext(body)
	target.OnComplete()
}

func (s *subscription) fail(err error) {
	if target := s.detach(); target != nil {
		target.OnError(err)
	}
}

// detach clears and returns the current target. Only the first caller gets
// a non-nil Subscriber.
func (s *subscription) detach() Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := s.target
	s.target = nil
	return target
}

// classify turns an Engine outcome into either a body or exactly one of
// ErrUnauthorized, ErrNoInternetConnection or the underlying error.
func classify(resp *Response, err error, validateJSON bool) ([]byte, error) {
	if resp != nil && resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if err != nil {
		if isSessionTaskError(err) {
			return nil, ErrNoInternetConnection
		}
		return nil, err
	}

	body := []byte{}
	if resp != nil && resp.Body != nil {
		body = resp.Body
	}
	if validateJSON && len(body) > 0 && !json.Valid(body) {
		return nil, &ResponseSerializationError{StatusCode: resp.StatusCode, Err: errInvalidJSON}
	}
	return body, nil
}

// isSessionTaskError reports whether err came from the transport round trip
// rather than from building the request or reading its result.
func isSessionTaskError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Op != "parse"
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
