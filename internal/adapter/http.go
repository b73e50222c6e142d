package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-rx-api/internal/config"
	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/models"
	"github.com/MKhiriev/go-rx-api/rxapi"
)

type httpUserAdapter struct {
	session *rxapi.Session
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPUserAdapter constructs a [UserAdapter] backed by one rxapi.Session.
// It normalises and validates adapterCfg.BaseURL and configures the session
// with the request timeout and default headers from adapterCfg. A non-empty
// adapterCfg.Token becomes the initial bearer token.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPUserAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (UserAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	session := rxapi.NewSession(rxapi.SessionConfig{
		RequestTimeout: adapterCfg.RequestTimeout,
		Headers:        adapterCfg.Headers,
	}, rxapi.WithLogger(logger.Logger))

	a := &httpUserAdapter{session: session, baseURL: baseURL, logger: logger}
	if adapterCfg.Token != "" {
		a.SetToken(adapterCfg.Token)
	}
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [UserAdapter].
func (h *httpUserAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [UserAdapter].
func (h *httpUserAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// UserPublisher implements [UserAdapter]. The request is built per
// subscription, so a token set later is picked up by later subscribers.
func (h *httpUserAdapter) UserPublisher(id int64) rxapi.Publisher {
	return rxapi.Deferred(func() rxapi.Publisher {
		api := rxapi.New(h.session).SetURL(fmt.Sprintf("%s/users/%d", h.baseURL, id))
		if token := h.Token(); token != "" {
			api.SetHeaders(map[string]string{"Authorization": "Bearer " + token})
		}
		return api
	})
}

// GetUser implements [UserAdapter].
func (h *httpUserAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	body, err := rxapi.Await(ctx, h.UserPublisher(id))
	if err != nil {
		h.logger.Debug().Err(err).Int64("user_id", id).Msg("get user failed")
		return models.User{}, mapRxError(err)
	}

	return decodeUser(id, body)
}

// GetUsers implements [UserAdapter].
func (h *httpUserAdapter) GetUsers(ctx context.Context, ids []int64) ([]models.User, error) {
	publishers := make([]rxapi.Publisher, 0, len(ids))
	for _, id := range ids {
		publishers = append(publishers, h.UserPublisher(id))
	}

	bodies, err := rxapi.Collect(ctx, publishers...)
	if err != nil {
		h.logger.Debug().Err(err).Ints64("user_ids", ids).Msg("get users failed")
		return nil, mapRxError(err)
	}

	users := make([]models.User, 0, len(bodies))
	for i, body := range bodies {
		u, err := decodeUser(ids[i], body)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

func decodeUser(id int64, body []byte) (models.User, error) {
	u, err := rxapi.Decode[models.User](body)
	if err != nil {
		return models.User{}, mapRxError(err)
	}
	if u.IsZero() {
		return models.User{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return u, nil
}
