// File path: internal/api/handlers.go
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/dkoushik/prepwell/internal/common"
	"github.com/dkoushik/prepwell/internal/question"
)

const defaultListLimit = 50

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	filter := question.Filter{Limit: defaultListLimit}
	filter.Subject = strings.TrimSpace(r.URL.Query().Get("subject"))
	if v := strings.TrimSpace(r.URL.Query().Get("difficulty")); v != "" {
		filter.Difficulty = question.NormalizeDifficulty(v)
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			filter.Limit = parsed
		}
	}
	questions, err := s.corpus.FindMany(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"count":     len(questions),
	})
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q, err := s.corpus.FindByID(r.Context(), id)
	if errors.Is(err, question.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("question %s not found", id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	count := 0
	if v := r.URL.Query().Get("count"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid count %q", v))
			return
		}
		count = parsed
	}
	subject := strings.TrimSpace(r.URL.Query().Get("subject"))

	result, err := s.recommender.Recommend(r.Context(), id, count, subject)
	if errors.Is(err, question.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("question %s not found", id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := s.corpus.Subjects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	total, err := s.corpus.Count(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"subjects": subjects,
		"total":    total,
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"logs": common.LogEntries(),
	})
}
