// Package server exposes the hand checker over HTTP
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arcanaland/handcheck/internal/checker"
	"github.com/arcanaland/handcheck/internal/hand"
	"github.com/arcanaland/handcheck/internal/logger"
	"github.com/arcanaland/handcheck/internal/validator"
)

// ClassifyRequest is the POST /v1/classify body
type ClassifyRequest struct {
	Cards string `json:"cards"`
}

// ClassifyResponse is a successful classification
type ClassifyResponse struct {
	Cards    []string `json:"cards"`
	Category string   `json:"category"`
	Label    string   `json:"label"`
	Detail   string   `json:"detail,omitempty"`
}

// CategoryResponse is one row of GET /v1/hands
type CategoryResponse struct {
	Position    int    `json:"position"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// Server routes requests to a checker
type Server struct {
	checker *checker.Checker
	log     *logger.Logger
	router  chi.Router
}

// New builds the router
func New(c *checker.Checker, l *logger.Logger) *Server {
	s := &Server{checker: c, log: l}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(l))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/v1", func(r chi.Router) {
		r.Get("/hands", s.handleHands)
		r.Get("/classify", s.handleClassifyQuery)
		r.Post("/classify", s.handleClassifyBody)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %v", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info().Msg("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %v", err)
		}
		return nil
	}
}

func (s *Server) handleHands(w http.ResponseWriter, _ *http.Request) {
	all := hand.Categories()
	rows := make([]CategoryResponse, 0, len(all))
	for _, c := range all {
		rows = append(rows, CategoryResponse{
			Position:    c.Position(),
			ID:          c.String(),
			Name:        c.Name(),
			Description: c.Description(),
			Example:     c.Example(),
		})
	}
	s.writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleClassifyQuery(w http.ResponseWriter, r *http.Request) {
	s.classify(w, r.URL.Query().Get("cards"))
}

func (s *Server) handleClassifyBody(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad request", Reason: err.Error()})
		return
	}
	s.classify(w, req.Cards)
}

func (s *Server) classify(w http.ResponseWriter, raw string) {
	res, err := s.checker.Check(raw)
	if err != nil {
		var invalid *validator.InvalidInputError
		reason := err.Error()
		if errors.As(err, &invalid) {
			reason = invalid.Reason
		}
		s.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: checker.ErrorText, Reason: reason})
		return
	}

	cards := make([]string, len(res.Cards))
	for i, c := range res.Cards {
		cards[i] = c.Token()
	}
	s.writeJSON(w, http.StatusOK, ClassifyResponse{
		Cards:    cards,
		Category: res.Category.String(),
		Label:    res.Category.Label(),
		Detail:   res.Detail,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn().Err(err).Msg("write response")
	}
}
