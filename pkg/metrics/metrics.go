package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the collectors of one process on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	StorageLoads    *prometheus.CounterVec
}

// New creates and registers all collectors under the given namespace.
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "commands_total",
				Help:      "Console commands executed.",
			},
			[]string{"command", "status"},
		),
		CommandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "command_duration_seconds",
				Help:      "Console command duration seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		StorageLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "storage_loads_total",
				Help:      "Hotel and booking data loads.",
			},
			[]string{"source", "status"},
		),
	}

	m.registry.MustRegister(m.CommandsTotal, m.CommandDuration, m.StorageLoads)
	return m
}

// ObserveCommand records one command execution.
func (m *Metrics) ObserveCommand(command string, err error, dur time.Duration) {
	m.CommandsTotal.WithLabelValues(command, status(err)).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(dur.Seconds())
}

// ObserveLoad records one load of a data source (hotels, bookings).
func (m *Metrics) ObserveLoad(source string, err error) {
	m.StorageLoads.WithLabelValues(source, status(err)).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Router builds the HTTP routes of the metrics endpoint.
func (m *Metrics) Router(path string) *mux.Router {
	r := mux.NewRouter()
	r.Handle(path, m.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return r
}

// Logger is the subset of pkg/logger the metrics server needs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Serve runs the metrics endpoint until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, port int, path string, log Logger) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           m.Router(path),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Metrics endpoint listening on %s%s", srv.Addr, path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server failed: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Metrics server forced to shutdown: %v", err)
		}
	}()
}

func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
