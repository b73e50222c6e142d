package rxapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is delivered when the server answers with HTTP 401,
	// regardless of whether the transport call itself succeeded.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoInternetConnection replaces any session/transport-level failure
	// (no connectivity, DNS failure, refused connection, transport timeout).
	ErrNoInternetConnection = errors.New("no internet connection")
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("invalid request configuration")
	// ErrInvalidDemand is delivered when a subscriber requests a non-positive
	// number of values.
	ErrInvalidDemand = errors.New("demand must be greater than zero")
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("decode response")
)

// ConfigurationError reports a request descriptor that cannot be dispatched.
type ConfigurationError struct {
	// Field names the descriptor field at fault (e.g. "url").
	Field string
	// Reason describes what is wrong with it.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("rxapi: %s: %s: %s", ErrConfiguration, e.Field, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// DecodeError is returned by Decode when the body cannot be decoded into
// the requested type.
type DecodeError struct {
	// Type is the Go type the body was decoded into.
	Type string
	// Err is the underlying encoding/json error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("rxapi: %s into %s: %v", ErrDecode, e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ResponseSerializationError is delivered when JSON validation is enabled
// on the API and the response body is not valid JSON.
type ResponseSerializationError struct {
	// StatusCode is the HTTP status of the offending response.
	StatusCode int
	// Err describes the serialization failure.
	Err error
}

func (e *ResponseSerializationError) Error() string {
	return fmt.Sprintf("rxapi: response serialization failed (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *ResponseSerializationError) Unwrap() error {
	return e.Err
}

var errInvalidJSON = errors.New("body is not valid JSON")
