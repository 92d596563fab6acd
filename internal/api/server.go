// File path: internal/api/server.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/dkoushik/prepwell/internal/common"
	"github.com/dkoushik/prepwell/internal/recommend"
)

// Corpus is the store surface the HTTP layer needs: the recommender contract
// plus catalog listings.
type Corpus interface {
	recommend.Corpus
	Subjects(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// Server routes portal requests to the question corpus and the
// recommendation pipeline.
type Server struct {
	router      chi.Router
	corpus      Corpus
	recommender *recommend.Recommender
}

// NewServer constructs the HTTP server around its collaborators.
func NewServer(corpus Corpus, recommender *recommend.Recommender) (*Server, error) {
	if corpus == nil {
		return nil, fmt.Errorf("corpus required")
	}
	if recommender == nil {
		return nil, fmt.Errorf("recommender required")
	}
	srv := &Server{
		router:      chi.NewRouter(),
		corpus:      corpus,
		recommender: recommender,
	}
	srv.routes()
	common.Logger().Info("api: server ready")
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(requestLogger)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/questions", s.handleListQuestions)
		r.Get("/questions/{id}", s.handleGetQuestion)
		r.Get("/questions/{id}/similar", s.handleSimilar)
		r.Get("/subjects", s.handleSubjects)
		r.Get("/logs", s.handleLogs)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
