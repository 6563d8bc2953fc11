// Package handlers serves the lesson over HTTP: the index page, the action endpoints and one SSE stream per
// open page that keeps it in sync with its session.
package handlers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/CAFxX/httpcompression"
	ds "github.com/starfederation/datastar-go/datastar"

	"linegraph/events"
	"linegraph/web"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	renderer Renderer
	hub      *events.EventHub
	logger   *slog.Logger
	handler  *http.ServeMux
}

func NewServer(renderer Renderer, hub *events.EventHub, logger *slog.Logger) (*Server, error) {
	s := &Server{
		renderer: renderer,
		hub:      hub,
		logger:   logger,
	}

	compress, err := httpcompression.DefaultAdapter()
	if err != nil {
		return nil, err
	}

	handler := http.NewServeMux()
	handler.Handle("GET /{$}", compress(http.HandlerFunc(s.IndexHandler)))
	handler.Handle("GET /static/", compress(http.FileServer(http.FS(web.Static))))
	handler.HandleFunc("GET /stream", s.StreamHandler)

	for pattern, uiHandler := range renderer.Handlers() {
		handler.HandleFunc(pattern, uiHandler)
	}

	s.handler = handler

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves on addr until ctx is cancelled, then shuts down. Open streams end with ctx.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info("web.listen", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// IndexHandler is the main entrypoint for the UI
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	data, err := s.renderer.Page(clientFor(w, r))
	if err != nil {
		s.logger.Error("web.index", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Templates().ExecuteTemplate(&buf, "index", data); err != nil {
		s.logger.Error("web.index", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// StreamHandler keeps one page in sync with its session until the client goes away.
func (s *Server) StreamHandler(w http.ResponseWriter, r *http.Request) {
	c := clientFor(w, r)

	// Subscribe before the first paint so nothing between the two is missed.
	_, updates, cancel := s.hub.Subscribe()
	defer cancel()

	// The session animates only while some stream is showing it.
	detach := s.renderer.Attach(c)
	defer detach()

	sse := ds.NewSSE(w, r)
	if err := s.renderer.OnConnect(sse, c); err != nil {
		s.logger.Error("web.stream.connect", "session", c.ID, "err", err)
		return
	}

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-updates:
			if !ok {
				return
			}
			if event.SessionID != c.ID {
				continue
			}
			if err := s.renderer.OnEvent(sse, c, event); err != nil {
				s.logger.Debug("web.stream.event", "session", c.ID, "kind", string(event.Kind), "err", err)
				return
			}
		}
	}
}
