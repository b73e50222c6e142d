package rxapi

import (
	"encoding/json"
	"reflect"

	"github.com/rs/zerolog"
)

// Decode unmarshals a JSON body into T. On failure it returns the zero T
// and a *DecodeError matching ErrDecode.
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, &DecodeError{Type: reflect.TypeFor[T]().String(), Err: err}
	}
	return v, nil
}

// DecodeOrZero is Decode for callers that treat an undecodable body as
// empty: the error is logged and the zero T returned.
func DecodeOrZero[T any](data []byte, logger zerolog.Logger) T {
	v, err := Decode[T](data)
	if err != nil {
		logger.Error().Err(err).Int("body_len", len(data)).Msg("decode failed, using zero value")
	}
	return v
}
