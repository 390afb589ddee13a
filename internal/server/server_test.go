package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonathan/ytj-lookup/internal/registry"
	"github.com/jonathan/ytj-lookup/internal/server/middleware"
	"github.com/jonathan/ytj-lookup/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookup records the IDs it was asked for and answers from a fixed outcome.
type fakeLookup struct {
	mu      sync.Mutex
	calls   []string
	outcome *registry.Outcome
	err     error
}

func (f *fakeLookup) Lookup(_ context.Context, businessID string) (*registry.Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, businessID)
	if f.err != nil {
		return nil, f.err
	}
	if f.outcome == nil {
		return &registry.Outcome{BusinessID: businessID}, nil
	}
	outcome := *f.outcome
	outcome.BusinessID = businessID
	return &outcome, nil
}

func (f *fakeLookup) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func nokiaOutcome() *registry.Outcome {
	return &registry.Outcome{
		Found: true,
		Company: types.NormalizedCompany{
			CompanyName:      "Oy Nokia Ab",
			Website:          "www.nokia.com",
			BusinessID:       "0112038-9",
			RegistrationDate: "1978-03-15",
			Status:           "2",
			Address:          types.Address{Street: "Karakaari 7", PostCode: "02610", City: "ESPOO"},
		},
	}
}

func newTestServer(t *testing.T, lookup Lookuper) *Server {
	t.Helper()
	s, err := New(Config{Addr: "127.0.0.1:0"}, lookup, nil)
	require.NoError(t, err)
	return s
}

func TestNew_RequiresLookup(t *testing.T) {
	_, err := New(Config{}, nil, nil)
	assert.Error(t, err)
}

func TestNew_InvalidTemplatePath(t *testing.T) {
	_, err := New(Config{TemplatePath: "/nonexistent/index.html"}, &fakeLookup{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load page template")
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeLookup{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHandler_SetsRequestID(t *testing.T) {
	s := newTestServer(t, &fakeLookup{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-42")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, "trace-42", w.Header().Get(middleware.RequestIDHeader))
}

func TestHandler_UnknownRoute(t *testing.T) {
	s := newTestServer(t, &fakeLookup{})

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t, &fakeLookup{})

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t, &fakeLookup{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	s, err := New(Config{Addr: ln.Addr().String()}, &fakeLookup{}, nil)
	require.NoError(t, err)

	err = s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
