package rxapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-rx-api/rxapi"
	"github.com/go-chi/chi/v5"
)

const waitTimeout = 3 * time.Second

// recorder - подписчик, который записывает все события в порядке поступления.
type recorder struct {
	mu     sync.Mutex
	sub    rxapi.Subscription
	events []string
	values [][]byte
	errs   []error

	autoRequest bool
	once        sync.Once
	done        chan struct{}
}

func newRecorder(autoRequest bool) *recorder {
	return &recorder{autoRequest: autoRequest, done: make(chan struct{})}
}

func (r *recorder) OnSubscribe(s rxapi.Subscription) {
	r.mu.Lock()
	r.sub = s
	r.events = append(r.events, "subscribe")
	r.mu.Unlock()

	if r.autoRequest {
		s.Request(rxapi.Unlimited)
	}
}

func (r *recorder) OnNext(body []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "next")
	r.values = append(r.values, body)
}

func (r *recorder) OnError(err error) {
	r.mu.Lock()
	r.events = append(r.events, "error")
	r.errs = append(r.errs, err)
	r.mu.Unlock()
	r.once.Do(func() { close(r.done) })
}

func (r *recorder) OnComplete() {
	r.mu.Lock()
	r.events = append(r.events, "complete")
	r.mu.Unlock()
	r.once.Do(func() { close(r.done) })
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(waitTimeout):
		t.Fatalf("subscriber not terminated, events so far: %v", r.snapshot())
	}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) subscription() rxapi.Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sub
}

type testUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type echoReply struct {
	Method  string            `json:"method"`
	Query   string            `json:"query"`
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
}

// testAPI - httptest-сервер с маршрутами, которые нужны тестам rxapi.
type testAPI struct {
	*httptest.Server
	hits    atomic.Int64
	arrived chan struct{}
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	api := &testAPI{arrived: make(chan struct{}, 1)}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			api.hits.Add(1)
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") != "1" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
			return
		}
		if req.Header.Get("Authorization") == "Bearer expired" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"username":"alice"}`))
	})
	r.Get("/secure", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"token expired"}`))
	})
	r.Get("/text", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("plain text"))
	})
	r.Get("/empty", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/slow", func(w http.ResponseWriter, req *http.Request) {
		select {
		case api.arrived <- struct{}{}:
		default:
		}
		<-req.Context().Done()
	})
	r.HandleFunc("/echo", func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		reply := echoReply{
			Method:  req.Method,
			Query:   req.URL.RawQuery,
			Headers: make(map[string]string),
			Body:    string(body),
		}
		for k := range req.Header {
			reply.Headers[k] = req.Header.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reply)
	})

	api.Server = httptest.NewServer(r)
	t.Cleanup(api.Close)
	return api
}

func (a *testAPI) waitArrived(t *testing.T) {
	t.Helper()
	select {
	case <-a.arrived:
	case <-time.After(waitTimeout):
		t.Fatal("request never reached the server")
	}
}
