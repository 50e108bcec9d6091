// Package testutil provides an in-process fake servarr used by tests of the
// adapter, network, runner and cli packages.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-arr-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// FakeToken is the API key the fake accepts.
const FakeToken = "test-api-key"

// RecordedRequest is what the fake saw of one incoming request.
type RecordedRequest struct {
	Method    string
	Path      string
	RawQuery  string
	APIKey    string
	RequestID string
	Body      []byte
}

// FakeBackend is an httptest server speaking enough of one servarr API to
// exercise the client. Routes are mounted under /api/<version>.
type FakeBackend struct {
	Server *httptest.Server
	Kind   models.BackendKind

	router chi.Router
	mu     sync.Mutex
	seen   []RecordedRequest
}

// NewFakeBackend starts a fake of kind answering /system/status and /health.
// Tests add further routes with [FakeBackend.JSON], [FakeBackend.Raw] or
// [FakeBackend.Handle] before issuing requests. The server is closed on test
// cleanup.
func NewFakeBackend(t *testing.T, kind models.BackendKind) *FakeBackend {
	t.Helper()

	f := &FakeBackend{Kind: kind}

	root := chi.NewRouter()
	root.Use(middleware.Recoverer)
	root.Use(f.record)
	root.Use(requireAPIKey)

	api := chi.NewRouter()
	root.Mount("/api/"+kind.APIVersion(), api)
	f.router = api

	f.JSON(http.MethodGet, "/system/status", http.StatusOK, models.SystemStatus{
		AppName: kind.Title(), Version: "5.0.0.0", Branch: "master", OsName: "linux",
	})
	f.JSON(http.MethodGet, "/health", http.StatusOK, []models.HealthCheck{})

	f.Server = httptest.NewServer(root)
	t.Cleanup(f.Server.Close)
	return f
}

// Descriptor returns a descriptor pointing at the fake with a valid token.
func (f *FakeBackend) Descriptor() models.BackendDescriptor {
	return models.BackendDescriptor{Kind: f.Kind, URI: f.Server.URL, APIToken: FakeToken}
}

// Handle mounts h for method and path (relative to the API root).
func (f *FakeBackend) Handle(method, path string, h http.HandlerFunc) {
	f.router.MethodFunc(method, path, h)
}

// JSON mounts a handler answering with status and v encoded as JSON.
func (f *FakeBackend) JSON(method, path string, status int, v any) {
	f.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	})
}

// Raw mounts a handler answering with status and body verbatim.
func (f *FakeBackend) Raw(method, path string, status int, body string) {
	f.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// Requests returns a copy of every request received so far.
func (f *FakeBackend) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.seen))
	copy(out, f.seen)
	return out
}

// LastRequest returns the most recent request, or false if none arrived.
func (f *FakeBackend) LastRequest() (RecordedRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.seen) == 0 {
		return RecordedRequest{}, false
	}
	return f.seen[len(f.seen)-1], true
}

func (f *FakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		f.mu.Lock()
		f.seen = append(f.seen, RecordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			RawQuery:  r.URL.RawQuery,
			APIKey:    r.Header.Get("X-Api-Key"),
			RequestID: r.Header.Get("X-Request-Id"),
			Body:      body,
		})
		f.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != FakeToken {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
