package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

func New(logger *slog.Logger, port string, rollup rollupService) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      NewRouter(logger, rollup),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// NewRouter - read-only routes over the rollup.
func NewRouter(logger *slog.Logger, rollup rollupService) http.Handler {
	query := newQueryHandlers(logger, rollup)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", query.Ping)
	mux.HandleFunc("GET /info", query.Info)
	mux.HandleFunc("GET /state", query.State)
	mux.HandleFunc("GET /root", query.Root)
	mux.HandleFunc("GET /games/{id}", query.Game)
	mux.HandleFunc("GET /games/{id}/proof", query.Proof)

	return mux
}

func (that *Server) Start() error {
	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
