package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
)

// Server exposes /metrics and /healthz on a side port
type Server struct {
	server *http.Server
	logger coreport.Logger
}

// NewServer creates the metrics side server. A nil healthCheck makes
// /healthz unconditionally healthy.
func NewServer(addr string, gatherer prometheus.Gatherer, healthCheck func(context.Context) error, logger coreport.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if healthCheck != nil {
			if err := healthCheck(r.Context()); err != nil {
				logger.Warn("Health check failed", map[string]any{"error": err.Error()})
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start serves until the listener is closed
func (s *Server) Start() {
	s.logger.Info("Metrics server listening", map[string]any{"addr": s.server.Addr})
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Metrics server stopped", map[string]any{"error": err.Error()})
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
