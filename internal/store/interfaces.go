package store

import (
	"context"

	"github.com/MKhiriev/go-rx-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the read-only user source behind the fixture server.
type UserRepository interface {
	// GetUser returns the user with id or ErrUserNotFound.
	GetUser(ctx context.Context, id int64) (models.User, error)
	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
}
