package http

import (
	"net/http"

	"github.com/MKhiriev/go-rx-api/internal/utils"
	"github.com/MKhiriev/go-rx-api/rxapi"
	"github.com/rs/zerolog"
)

// withRequestID reuses the caller's X-Request-ID or generates one, echoes it
// in the response and attaches a request-scoped logger to the context.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(rxapi.RequestIDHeader)
		if requestID == "" {
			requestID = h.requestIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		ctx := utils.WithRequestID(l.WithContext(r.Context()), requestID)

		w.Header().Set(rxapi.RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
