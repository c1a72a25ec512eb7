// Package server hosts the rendered board for a browser.
//
// Every request is an independent projection of an immutable snapshot; the
// server holds no per-request state.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/superposition/board-chess-club/internal/chess"
	"github.com/superposition/board-chess-club/internal/config"
	"github.com/superposition/board-chess-club/internal/engine"
	"github.com/superposition/board-chess-club/internal/position"
	"github.com/superposition/board-chess-club/internal/render/htmltk"
	"github.com/superposition/board-chess-club/internal/view"
)

const shutdownTimeout = 5 * time.Second

// Server serves board pages.
type Server struct {
	settings  *config.Settings
	projector *view.Projector
	logger    *slog.Logger
	router    chi.Router
}

// New builds a server for settings. A nil logger means slog.Default().
func New(settings *config.Settings, logger *slog.Logger) (*Server, error) {
	if settings == nil {
		return nil, errors.New("settings are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	projector, err := settings.Projector()
	if err != nil {
		return nil, fmt.Errorf("init projector: %w", err)
	}

	s := &Server{
		settings:  settings,
		projector: projector,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleBoard)
	r.Get("/healthz", s.handleHealth)
	s.router = r

	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// request holds the inputs of one render.
type request struct {
	board       *chess.Board
	orientation view.Orientation
	mode        view.Mode
}

// parseRequest applies the fen, orientation, flip and labels query
// parameters over the configured defaults.
func (s *Server) parseRequest(r *http.Request) (request, error) {
	q := r.URL.Query()
	req := request{
		board:       s.settings.Board,
		orientation: s.settings.Orientation,
		mode:        s.settings.Mode,
	}

	if fen := q.Get("fen"); fen != "" {
		board, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			return req, err
		}
		req.board = board
	}

	if v := q.Get("orientation"); v != "" {
		o, err := view.ParseOrientation(v)
		if err != nil {
			return req, err
		}
		req.orientation = o
	}
	if v := q.Get("flip"); v != "" {
		flip, err := strconv.ParseBool(v)
		if err != nil {
			return req, fmt.Errorf("flip %q: %w", v, err)
		}
		req.orientation = view.Normal
		if flip {
			req.orientation = view.Flipped
		}
	}

	if v := q.Get("labels"); v != "" {
		labels, err := strconv.ParseBool(v)
		if err != nil {
			return req, fmt.Errorf("labels %q: %w", v, err)
		}
		req.mode = view.Plain
		if labels {
			req.mode = view.Labeled
		}
	}

	return req, nil
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		s.logger.Info("rejected board request",
			"request_id", middleware.GetReqID(r.Context()),
			"query", r.URL.RawQuery,
			"error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	grid := s.projector.Project(position.For(req.board), req.orientation, req.mode)
	page := htmltk.BoardPage(s.settings.Title, grid, s.settings.Render)

	var buf bytes.Buffer
	if err := htmltk.Write(&buf, page); err != nil {
		s.logger.Error("render board page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Debug("write board page", "error", err)
		return
	}
	s.logger.Debug("served board",
		"request_id", middleware.GetReqID(r.Context()),
		"fen", engine.BoardToFEN(req.board),
		"orientation", req.orientation.String(),
		"mode", req.mode.String())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// ListenAndServe runs the HTTP server until ctx ends, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	httpServer := &http.Server{
		Addr:              s.settings.HTTPAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	s.logger.Info("board server listening", "addr", s.settings.HTTPAddr)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.logger.Info("board server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
