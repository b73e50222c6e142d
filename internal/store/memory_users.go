package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-rx-api/models"
)

type memoryUserRepository struct {
	byID  map[int64]models.User
	order []models.User
}

// NewMemoryUserRepository indexes users by id. Ids must be positive and
// unique.
func NewMemoryUserRepository(users []models.User) (UserRepository, error) {
	repo := &memoryUserRepository{byID: make(map[int64]models.User, len(users))}

	for _, u := range users {
		if u.ID <= 0 {
			return nil, fmt.Errorf("%w: id %d", ErrInvalidUser, u.ID)
		}
		if _, dup := repo.byID[u.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidUser, u.ID)
		}
		repo.byID[u.ID] = u
	}

	repo.order = slices.SortedFunc(func(yield func(models.User) bool) {
		for _, u := range repo.byID {
			if !yield(u) {
				return
			}
		}
	}, func(a, b models.User) int { return cmp.Compare(a.ID, b.ID) })

	return repo, nil
}

func (r *memoryUserRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	u, ok := r.byID[id]
	if !ok {
		return models.User{}, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	return u, nil
}

func (r *memoryUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.order), nil
}
