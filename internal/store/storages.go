package store

import (
	"fmt"

	"github.com/MKhiriev/go-rx-api/internal/logger"
)

// NewUserRepository loads the fixtures at path (built-in when empty) into a
// memory repository.
func NewUserRepository(path string, logger *logger.Logger) (UserRepository, error) {
	users, err := LoadUsers(path)
	if err != nil {
		return nil, err
	}

	repo, err := NewMemoryUserRepository(users)
	if err != nil {
		return nil, fmt.Errorf("index fixtures: %w", err)
	}

	source := path
	if source == "" {
		source = "built-in"
	}
	logger.Info().Str("source", source).Int("count", len(users)).Msg("user fixtures loaded")

	return repo, nil
}
