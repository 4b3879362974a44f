package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/demobank/bankcli/internal/client/api"
	"github.com/demobank/bankcli/internal/client/models"
	"github.com/demobank/bankcli/internal/logging"
)

// memStore is an in-memory tokenstore.Store for facade tests.
type memStore struct {
	mu   sync.Mutex
	pair *models.TokenPair
}

func (m *memStore) Save(_ context.Context, pair models.TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = &pair
	return nil
}

func (m *memStore) Load(_ context.Context) (*models.TokenPair, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pair == nil {
		return nil, nil
	}
	cp := *m.pair
	return &cp, nil
}

func (m *memStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = nil
	return nil
}

func (m *memStore) HasToken(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pair != nil, nil
}

func nopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newGateway wires an api.Client against an httptest server and counts the
// requests that actually reach it.
func newGateway(t *testing.T, handler http.Handler, store *memStore) (*api.Client, *int) {
	t.Helper()

	var calls int
	counting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler.ServeHTTP(w, r)
	})

	srv := httptest.NewServer(counting)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, store, srv.Client(), nopLogger()), &calls
}
