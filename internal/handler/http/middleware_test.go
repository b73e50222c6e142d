package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/internal/utils"
	"github.com/MKhiriev/go-rx-api/rxapi"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler создаёт Handler с логгером, пишущим в buf.
func newTestHandler(buf *bytes.Buffer) *Handler {
	return &Handler{
		logger:     &logger.Logger{Logger: zerolog.New(buf)},
		requestIDs: utils.NewUUIDGenerator(),
	}
}

// ---- Request ID ----

func TestWithRequestID_ReusesHeader(t *testing.T) {
	h := newTestHandler(&bytes.Buffer{})
	var fromCtx string

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx, _ = utils.GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	req.Header.Set(rxapi.RequestIDHeader, "client-id")
	rr := httptest.NewRecorder()
	h.withRequestID(next).ServeHTTP(rr, req)

	assert.Equal(t, "client-id", rr.Header().Get(rxapi.RequestIDHeader))
	assert.Equal(t, "client-id", fromCtx)
}

func TestWithRequestID_GeneratesUniqueUUIDs(t *testing.T) {
	h := newTestHandler(&bytes.Buffer{})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	seen := make(map[string]struct{})

	for range 50 {
		rr := httptest.NewRecorder()
		h.withRequestID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rr.Header().Get(rxapi.RequestIDHeader)
		parsed, err := uuid.Parse(id)
		require.NoError(t, err, "request id must be a UUID, got: %s", id)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate request id: %s", id)
		seen[id] = struct{}{}
	}
}

// ---- Логирование ----

func TestWithLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	req.Header.Set(rxapi.RequestIDHeader, "rid-1")
	rr := httptest.NewRecorder()
	h.withRequestID(h.withLogging(next)).ServeHTTP(rr, req)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"rid-1"`)
	assert.Contains(t, out, `"uri":"/users/7"`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":15`)
}

// ---- responseWriter ----

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
}
