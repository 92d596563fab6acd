// File path: internal/api/server_test.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkoushik/prepwell/internal/question"
	"github.com/dkoushik/prepwell/internal/recommend"
)

type stubCorpus struct {
	questions []question.Question
}

func (s *stubCorpus) FindByID(ctx context.Context, id string) (question.Question, error) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return question.Question{}, question.ErrNotFound
}

func (s *stubCorpus) FindMany(ctx context.Context, filter question.Filter) ([]question.Question, error) {
	out := make([]question.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if filter.Subject != "" && q.Subject != filter.Subject {
			continue
		}
		out = append(out, q)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *stubCorpus) Subjects(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, q := range s.questions {
		if q.Subject != "" && !seen[q.Subject] {
			seen[q.Subject] = true
			out = append(out, q.Subject)
		}
	}
	return out, nil
}

func (s *stubCorpus) Count(ctx context.Context) (int, error) {
	return len(s.questions), nil
}

func mcq(id, text, subject string, topics ...string) question.Question {
	return question.Question{
		ID:      id,
		Text:    text,
		Subject: subject,
		Options: question.OptionList{
			{Text: "a", IsCorrect: true}, {Text: "b"}, {Text: "c"}, {Text: "d"},
		},
		CorrectAnswer: "a",
		Topics:        question.StringList(topics),
		Difficulty:    question.DifficultyEasy,
		Provenance:    question.ProvenanceDB,
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	corpus := &stubCorpus{questions: []question.Question{
		mcq("q1", "calculate the force on the block", "Physics", "mechanics"),
		mcq("q2", "calculate the force on the ramp", "Physics", "mechanics"),
		mcq("q3", "momentum of two colliding bodies", "Physics", "mechanics"),
		mcq("q4", "periodic table of the elements", "Chemistry", "chemistry"),
	}}
	srv, err := NewServer(corpus, recommend.New(corpus, nil))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func doRequest(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, newTestServer(t), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListQuestions(t *testing.T) {
	rec := doRequest(t, newTestServer(t), "/api/questions?subject=Physics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var body struct {
		Questions []question.Question `json:"questions"`
		Count     int                 `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 3 || len(body.Questions) != 3 {
		t.Errorf("count = %d, len = %d, want 3 physics questions", body.Count, len(body.Questions))
	}
}

func TestGetQuestion(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, "/api/questions/q1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var q question.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if q.ID != "q1" {
		t.Errorf("id = %q", q.ID)
	}

	if rec := doRequest(t, srv, "/api/questions/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}
}

func TestSimilarQuestions(t *testing.T) {
	rec := doRequest(t, newTestServer(t), "/api/questions/q1/similar?count=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var result recommend.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Metadata.FromCorpus != 2 || result.Metadata.FromAI != 0 {
		t.Errorf("metadata = %+v", result.Metadata)
	}
	if len(result.Questions) != 2 {
		t.Errorf("len = %d, want 2", len(result.Questions))
	}
	for _, q := range result.Questions {
		if q.ID == "q1" {
			t.Error("source question returned as its own recommendation")
		}
	}
}

func TestSimilarQuestionsNotFound(t *testing.T) {
	rec := doRequest(t, newTestServer(t), "/api/questions/missing/similar")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSimilarQuestionsBadCount(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{
		"/api/questions/q1/similar?count=0",
		"/api/questions/q1/similar?count=-1",
		"/api/questions/q1/similar?count=abc",
	} {
		if rec := doRequest(t, srv, path); rec.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", path, rec.Code)
		}
	}
}

func TestSubjects(t *testing.T) {
	rec := doRequest(t, newTestServer(t), "/api/subjects")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Subjects []string `json:"subjects"`
		Total    int      `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 4 || len(body.Subjects) != 2 {
		t.Errorf("total = %d, subjects = %v", body.Total, body.Subjects)
	}
}

func TestRequestIDHeader(t *testing.T) {
	rec := doRequest(t, newTestServer(t), "/healthz")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}
