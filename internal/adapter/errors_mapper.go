package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rx-api/rxapi"
)

func mapRxError(err error) error {
	var serr *rxapi.ResponseSerializationError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, rxapi.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case errors.Is(err, rxapi.ErrNoInternetConnection):
		return fmt.Errorf("%w: %w", ErrOffline, err)
	case errors.As(err, &serr), errors.Is(err, rxapi.ErrDecode):
		return fmt.Errorf("%w: %w", ErrBadResponse, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("request failed: %w", err)
	}
}
