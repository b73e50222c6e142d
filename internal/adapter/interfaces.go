// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides access to the remote users API.
//
// The primary abstraction is [UserAdapter], which decouples the service
// layer from the request engine. The package ships an implementation built
// on rxapi publishers ([NewHTTPUserAdapter]).
//
// Error values defined in errors.go are mapped from rxapi failures by
// mapRxError so that callers can use [errors.Is] without importing rxapi
// (e.g. [ErrUnauthorized] for 401, [ErrOffline] for transport failures).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-rx-api/models"
	"github.com/MKhiriev/go-rx-api/rxapi"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_adapter_mock.go -package=mock

// UserAdapter defines access to user records of the remote API.
type UserAdapter interface {
	// SetToken stores the bearer token attached to every later request.
	// An empty token removes the Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently stored, or "".
	Token() string

	// UserPublisher returns a lazy publisher of the raw JSON body of user id.
	// Nothing is sent until a subscriber requests the value. Failures are
	// delivered as rxapi errors, unmapped.
	UserPublisher(id int64) rxapi.Publisher

	// GetUser fetches and decodes one user. Returns [ErrNotFound] when the
	// API answers with an empty record.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// GetUsers fetches all ids concurrently and returns them in input order.
	// The first failure cancels the remaining requests.
	GetUsers(ctx context.Context, ids []int64) ([]models.User, error)
}
