// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rx-api/models"
)

// UserService defines the client-side use cases over the users API.
type UserService interface {
	// LoadUsers fetches every id concurrently and returns the users in the
	// order of ids. Any failure fails the whole call.
	LoadUsers(ctx context.Context, ids []int64) ([]models.User, error)

	// LoadChain fetches first, and only once it has decoded successfully,
	// fetches second. Returns both users in that order.
	LoadChain(ctx context.Context, first, second int64) ([]models.User, error)
}

// RefreshResult is one outcome of a periodic refresh.
type RefreshResult struct {
	Users []models.User
	Err   error
	At    time.Time
}

// RefreshJob reloads a fixed set of users in the background.
type RefreshJob interface {
	// Start stops any previous run, then reloads ids every interval until ctx
	// is cancelled or Stop is called. A non-positive interval means
	// DefaultRefreshInterval.
	Start(ctx context.Context, ids []int64, interval time.Duration)

	// SetHandler replaces the function receiving refresh outcomes. Outcomes
	// produced while no handler is set are dropped.
	SetHandler(fn func(RefreshResult))

	// Stop cancels the background run and waits for it to exit. Safe to call
	// when the job is not running.
	Stop()
}
