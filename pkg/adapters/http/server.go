// Package http exposes the solver over a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jml312/domino-train/internal/dto"
	"github.com/jml312/domino-train/pkg/adapters/file"
	"github.com/jml312/domino-train/pkg/domain"
	"github.com/jml312/domino-train/pkg/ports"
	"github.com/jml312/domino-train/pkg/schema"
)

// Solver is the part of dominotrain.Solver the server needs.
type Solver interface {
	Solve(ctx context.Context, p *domain.Puzzle) (*domain.Result, error)
}

// Server holds the handlers and their collaborators.
type Server struct {
	Solver  Solver
	Library ports.PuzzleLoader
	Store   ports.ResultStore
	Streams *StreamManager

	metrics http.Handler
	logger  *slog.Logger
	version string
	maxBody int64
}

// DefaultMaxBodyBytes caps a POST /solve body unless WithMaxBodyBytes says otherwise.
const DefaultMaxBodyBytes = 64 << 10

// Option configures a Server.
type Option func(*Server)

// WithLibrary enables the /puzzles routes.
func WithLibrary(l ports.PuzzleLoader) Option {
	return func(s *Server) { s.Library = l }
}

// WithStore enables GET /results/{key}.
func WithStore(store ports.ResultStore) Option {
	return func(s *Server) { s.Store = store }
}

// WithMetricsHandler serves the given handler (usually promhttp) on /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVersion sets the version reported by /info.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// WithMaxBodyBytes caps the size of a puzzle document (0 keeps the default).
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// NewServer creates a server. Pass Server.Hooks to the solver to feed /events.
func NewServer(solver Solver, opts ...Option) *Server {
	s := &Server{
		Solver:  solver,
		Streams: NewStreamManager(),
		logger:  slog.Default(),
		version: "dev",
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Post("/solve", s.Solve)
	r.Route("/puzzles", func(r chi.Router) {
		r.Get("/", s.ListPuzzles)
		r.Get("/{id}", s.GetPuzzle)
		r.Post("/{id}/solve", s.SolvePuzzle)
	})
	r.Get("/results/{key}", s.GetResult)
	r.Get("/events", s.SubscribeEvents)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	return enableCORS(r)
}

// NewHandler is a shortcut for NewServer(solver, opts...).Handler().
func NewHandler(solver Solver, opts ...Option) http.Handler {
	return NewServer(solver, opts...).Handler()
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "dominotrain-http",
		"version": s.version,
	})
}

// Solve handles the POST /solve request. The body is a puzzle document.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	p, err := file.DecodePuzzle(r.Body, file.FormatJSON)
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.writeErrorStatus(w, r, status, err)
		return
	}
	if err := applyObjective(p, r); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.solve(w, r, p)
}

// SolvePuzzle handles the POST /puzzles/{id}/solve request.
func (s *Server) SolvePuzzle(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadPuzzle(w, r)
	if !ok {
		return
	}
	if err := applyObjective(p, r); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.solve(w, r, p)
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request, p *domain.Puzzle) {
	result, err := s.Solver.Solve(r.Context(), p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// ListPuzzles handles the GET /puzzles request.
func (s *Server) ListPuzzles(w http.ResponseWriter, r *http.Request) {
	if s.Library == nil {
		s.writeError(w, r, errNoLibrary)
		return
	}
	ids, err := s.Library.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"puzzles": ids})
}

// GetPuzzle handles the GET /puzzles/{id} request.
func (s *Server) GetPuzzle(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadPuzzle(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, dto.FromPuzzle(p))
}

func (s *Server) loadPuzzle(w http.ResponseWriter, r *http.Request) (*domain.Puzzle, bool) {
	if s.Library == nil {
		s.writeError(w, r, errNoLibrary)
		return nil, false
	}
	p, err := s.Library.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return p, true
}

// GetResult handles the GET /results/{key} request.
func (s *Server) GetResult(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		s.writeError(w, r, errNoStore)
		return
	}
	result, err := s.Store.Load(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// applyObjective lets ?objective= override the puzzle document.
func applyObjective(p *domain.Puzzle, r *http.Request) error {
	raw := r.URL.Query().Get("objective")
	if raw == "" {
		return nil
	}
	objective, err := domain.ParseObjective(raw)
	if err != nil {
		return err
	}
	p.Objective = objective
	return nil
}

var (
	errNoLibrary = errors.New("no puzzle library configured")
	errNoStore   = errors.New("no result store configured")
)

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrPuzzleNotFound), errors.Is(err, domain.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, errNoLibrary), errors.Is(err, errNoStore):
		return http.StatusNotImplemented
	case dto.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeErrorStatus(w, r, statusFor(err), err)
}

func (s *Server) writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	} else {
		s.logger.Warn("Request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "err", err)
	}

	resp := errorResponse{Error: err.Error()}
	for _, e := range schema.ValidationErrors(err) {
		resp.Details = append(resp.Details, e.Error())
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "err", err)
	}
}
