package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pets-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/pets/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Delete("/pets/{id}", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "pet not found", http.StatusNotFound)
	})

	for _, path := range []string{"/pets/1", "/pets/2", "/pets/3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/pets/9", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/pets/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("DELETE", "/pets/{id}", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requests))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestMetrics_ImplicitStatusIs200(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/ping", func(http.ResponseWriter, *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/ping", "200")))
}

func TestRequestLog_WritesOneLinePerRequest(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, Output: &buf})

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLog(log))
	r.Post("/pets", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/pets", strings.NewReader("{}")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/pets", entry["path"])
	assert.EqualValues(t, 201, entry["status"])
	assert.EqualValues(t, 2, entry["bytes"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestNewMetrics_SharedRegistryReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	a := NewMetrics(reg)
	var b *Metrics
	require.NotPanics(t, func() { b = NewMetrics(reg) })

	assert.Same(t, a.requests, b.requests)
	assert.Same(t, a.duration, b.duration)
}

func TestRegisterOrExisting_PanicsOnConflictingDescriptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterOrExisting(reg, prometheus.NewCounter(prometheus.CounterOpts{Name: "pets_x", Help: "a"}))

	assert.Panics(t, func() {
		RegisterOrExisting(reg, prometheus.NewCounter(prometheus.CounterOpts{Name: "pets_x", Help: "different help"}))
	})
}
