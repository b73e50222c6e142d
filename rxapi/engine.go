package rxapi

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=engine.go -destination=../internal/mock/engine_mock.go -package=mock

// Engine performs the actual network I/O for a Descriptor.
// Implementations must honour ctx cancellation and return a non-nil
// *Response whenever the server answered, even if err is also non-nil.
type Engine interface {
	// Execute sends the request described by d and returns the complete
	// response. It blocks until the round trip finishes or ctx is done.
	Execute(ctx context.Context, d Descriptor) (*Response, error)
}

// Response is the raw outcome of an Engine call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the raw response body; nil when the server sent none.
	Body []byte
}
