// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rx-api/internal/adapter"
	"github.com/MKhiriev/go-rx-api/rxapi"
)

// mapAdapterError translates adapter and raw publisher errors into service
// business errors. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrSessionExpired), errors.Is(err, ErrOffline), errors.Is(err, ErrUserNotFound):
		return err
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, rxapi.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	case errors.Is(err, adapter.ErrOffline), errors.Is(err, rxapi.ErrNoInternetConnection):
		return fmt.Errorf("%w: %w", ErrOffline, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}

	return err
}
