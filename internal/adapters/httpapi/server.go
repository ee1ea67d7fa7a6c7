// Package httpapi serves the family tree over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.trai.ch/kin/internal/app"
	"go.trai.ch/kin/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server exposes an App through REST endpoints. Every request touching the
// diagram is executed on the event loop.
type Server struct {
	app      *app.App
	loop     *app.Loop
	exporter ports.Exporter
	logger   ports.Logger
}

// New creates a Server.
func New(a *app.App, loop *app.Loop, exporter ports.Exporter, logger ports.Logger) *Server {
	return &Server{app: a, loop: loop, exporter: exporter, logger: logger}
}

// Handler returns the routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /nodes", s.handleNodes)
	mux.HandleFunc("GET /node/{id}", s.handleNode)
	mux.HandleFunc("POST /node/add", s.handleAdd)
	mux.HandleFunc("PUT /node/edit/{id}", s.handleEdit)
	mux.HandleFunc("POST /node/{id}/expand", s.handleExpand)
	mux.HandleFunc("POST /node/{id}/move", s.handleMove)
	mux.HandleFunc("POST /node/{id}/select", s.handleSelect)
	mux.HandleFunc("POST /pointer", s.handlePointer)
	mux.HandleFunc("GET /panel", s.handlePanel)
	mux.HandleFunc("GET /scene.png", s.handleScene)
	return mux
}

// ListenAndServe listens on addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "addr", addr)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("serving family tree on http://" + ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, "failed to shut down http server")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
