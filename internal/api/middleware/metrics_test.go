package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observedRequest struct {
	method, route, status string
}

type fakeGatewayMetrics struct {
	mu       sync.Mutex
	observed []observedRequest
}

func (f *fakeGatewayMetrics) ObserveRequest(method, route, status string, _ float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observed = append(f.observed, observedRequest{method, route, status})
}

func TestMetrics_RecordsRoutePatternAndStatus(t *testing.T) {
	m := &fakeGatewayMetrics{}

	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/items/1", "/items/2", "/", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, m.observed, 4)
	assert.Equal(t, observedRequest{"GET", "/items/{id}", "418"}, m.observed[0])
	assert.Equal(t, observedRequest{"GET", "/items/{id}", "418"}, m.observed[1])
	assert.Equal(t, observedRequest{"GET", "/", "200"}, m.observed[2])
	assert.Equal(t, "404", m.observed[3].status)
}
