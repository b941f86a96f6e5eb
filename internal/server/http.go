package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Monirah1998/trivia-udacity/internal/config"
)

// Check is a named dependency probe run by /v1/ping.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Routes mounts API endpoints on a mux.
type Routes interface {
	Register(mux *http.ServeMux)
}

// NewHTTPServer wires ops routes (health, metrics, ping) and the API routes
// behind the middleware chain.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, checks []Check, routes ...Routes) *http.Server {
	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      NewHandler(logger, checks, routes...),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// NewHandler builds the full handler chain without binding an address.
func NewHandler(logger zerolog.Logger, checks []Check, routes ...Routes) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pingDependencies(ctx, checks); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	for _, rt := range routes {
		rt.Register(mux)
	}

	var h http.Handler = mux
	h = envelopeMuxErrors(h)
	h = instrument(h)
	h = cors(h)
	h = requestLogging(logger, h)
	return h
}

func pingDependencies(ctx context.Context, checks []Check) error {
	for _, c := range checks {
		if err := c.Ping(ctx); err != nil {
			return &pingError{name: c.Name, err: err}
		}
	}
	return nil
}

type pingError struct {
	name string
	err  error
}

func (e *pingError) Error() string { return e.name + ": " + e.err.Error() }
func (e *pingError) Unwrap() error { return e.err }
