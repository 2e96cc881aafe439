package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dilluhn/npo-rss-feed/internal/ports"
)

const contentType = "application/rss+xml; charset=utf-8"

// Server exposes the latest published feed over HTTP.
type Server struct {
	addr   string
	path   string
	store  ports.Publisher
	logger *slog.Logger
}

// New wires the serving surface to the publisher snapshot.
func New(addr, path string, store ports.Publisher, logger *slog.Logger) *Server {
	if path == "" {
		path = "/"
	}
	return &Server{addr: addr, path: path, store: store, logger: logger}
}

// Handler builds the HTTP handler serving the feed at `/` and the configured
// path.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveFeed)
	if s.path != "/" {
		mux.HandleFunc(s.path, s.serveFeed)
	}
	return mux
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	if s.logger != nil {
		s.logger.Info("serving feed", "addr", s.addr, "path", s.path)
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) serveFeed(w http.ResponseWriter, r *http.Request) {
	// Feed readers poll cross-origin and must always see the current document.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Path != "/" && r.URL.Path != s.path {
		http.NotFound(w, r)
		return
	}

	data, ok := s.store.Latest()
	if !ok {
		http.Error(w, "feed not built yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(data); err != nil && s.logger != nil {
		s.logger.Warn("write response", "error", err)
	}
}
