package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New("hotel_manager")

	m.ObserveCommand("search", nil, 3*time.Millisecond)
	m.ObserveCommand("search", errors.New("boom"), time.Millisecond)
	m.ObserveCommand("availability", nil, time.Millisecond)
	m.ObserveLoad("hotels", nil)
	m.ObserveLoad("bookings", errors.New("missing"))

	body := scrape(t, m)
	assert.Contains(t, body, `hotel_manager_commands_total{command="search",status="ok"} 1`)
	assert.Contains(t, body, `hotel_manager_commands_total{command="search",status="error"} 1`)
	assert.Contains(t, body, `hotel_manager_commands_total{command="availability",status="ok"} 1`)
	assert.Contains(t, body, `hotel_manager_storage_loads_total{source="bookings",status="error"} 1`)
	assert.Contains(t, body, `hotel_manager_storage_loads_total{source="hotels",status="ok"} 1`)
}

func TestMetrics_Router(t *testing.T) {
	m := New("hotel_manager")
	m.ObserveCommand("availability", nil, time.Millisecond)

	router := m.Router("/metrics")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "hotel_manager_commands_total")
	assert.Contains(t, string(body), "hotel_manager_command_duration_seconds")

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/metrics", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}
