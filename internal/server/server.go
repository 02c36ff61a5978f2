// Package server is the optional HTTP surface of a somtsp run: health,
// Prometheus metrics, the latest ring snapshot, the websocket stream and a
// stop toggle.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/somtsp/internal/metrics"
	"github.com/katalvlaran/somtsp/internal/stream"
)

// Stopper ends the current run. *driver.Driver satisfies it.
type Stopper interface {
	Stop()
}

// Server routes requests to the run it observes.
type Server struct {
	broker  *stream.Broker
	metrics *metrics.Metrics
	stopper Stopper
	logger  *slog.Logger

	Mux *chi.Mux
}

// New builds the router. m and stopper may be nil; the matching routes then
// answer 404 and 503.
func New(b *stream.Broker, m *metrics.Metrics, stopper Stopper, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		broker:  b,
		metrics: m,
		stopper: stopper,
		logger:  logger,
		Mux:     chi.NewRouter(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Mux.Use(s.logRequests)
	s.Mux.Use(s.recoverer)

	s.Mux.Get("/healthz", s.health)
	if s.metrics != nil {
		s.Mux.Method(http.MethodGet, "/metrics",
			promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	}
	s.Mux.Get("/snapshot", s.snapshot)
	s.Mux.Method(http.MethodGet, "/ws", stream.Handler(s.broker))
	s.Mux.Post("/stop", s.stop)
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Mux.ServeHTTP(w, r)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.successResponse(w, r, "ok", nil)
}

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.broker.Latest()
	if !ok {
		s.errorResponse(w, r, http.StatusServiceUnavailable, "no snapshot yet")
		return
	}
	s.successResponse(w, r, "ok", snap)
}

func (s *Server) stop(w http.ResponseWriter, r *http.Request) {
	if s.stopper == nil {
		s.errorResponse(w, r, http.StatusServiceUnavailable, "no run to stop")
		return
	}
	s.stopper.Stop()
	s.logger.Info("stop requested", "ip", r.RemoteAddr)
	s.writeJSON(w, r, http.StatusAccepted, Response{Success: true, Message: "stopping"})
}

// Serve serves h on ln until ctx is done, then shuts down gracefully within
// shutdownTimeout.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, shutdownTimeout time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, shutdownTimeout time.Duration, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return Serve(ctx, ln, h, shutdownTimeout, logger)
}
