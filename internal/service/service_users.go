package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rx-api/internal/adapter"
	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/models"
	"github.com/MKhiriev/go-rx-api/rxapi"
)

type userService struct {
	adapter adapter.UserAdapter
	logger  *logger.Logger
}

// NewUserService creates a UserService on top of userAdapter.
func NewUserService(userAdapter adapter.UserAdapter, logger *logger.Logger) UserService {
	return &userService{adapter: userAdapter, logger: logger}
}

// LoadUsers implements UserService.
func (s *userService) LoadUsers(ctx context.Context, ids []int64) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, ErrNoUserIDs
	}

	start := time.Now()
	users, err := s.adapter.GetUsers(ctx, ids)
	if err != nil {
		s.logger.Err(err).Ints64("user_ids", ids).Msg("load users failed")
		return nil, mapAdapterError(err)
	}

	s.logger.Debug().
		Int("count", len(users)).
		Dur("elapsed", time.Since(start)).
		Msg("users loaded")
	return users, nil
}

// LoadChain implements UserService. The second request is only sent after
// the first body has decoded to a non-empty user.
func (s *userService) LoadChain(ctx context.Context, first, second int64) ([]models.User, error) {
	var head models.User

	chain := rxapi.FlatMap(s.adapter.UserPublisher(first), func(body []byte) rxapi.Publisher {
		u, err := rxapi.Decode[models.User](body)
		if err != nil {
			return rxapi.Fail(err)
		}
		if u.IsZero() {
			return rxapi.Fail(fmt.Errorf("%w: id %d", ErrUserNotFound, first))
		}
		head = u
		return s.adapter.UserPublisher(second)
	})

	tail, err := rxapi.AwaitDecoded[models.User](ctx, chain)
	if err != nil {
		s.logger.Err(err).Int64("first", first).Int64("second", second).Msg("load chain failed")
		return nil, mapAdapterError(err)
	}
	if tail.IsZero() {
		return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, second)
	}

	return []models.User{head, tail}, nil
}
