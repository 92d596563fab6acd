// File path: internal/genai/validate_test.go
package genai

import (
	"fmt"
	"testing"
	"time"

	"github.com/dkoushik/prepwell/internal/question"
)

func candidateJSON(correctFlags [4]bool) string {
	options := ""
	for i, correct := range correctFlags {
		if i > 0 {
			options += ","
		}
		options += fmt.Sprintf(`{"text":"option %d","isCorrect":%t}`, i, correct)
	}
	return fmt.Sprintf(`{"text":"sample question","options":[%s],"correctAnswer":"option 1","explanation":"because"}`, options)
}

func TestParseCandidatesValidBatch(t *testing.T) {
	raw := "[" + candidateJSON([4]bool{false, true, false, false}) + "," +
		candidateJSON([4]bool{true, false, false, false}) + "]"
	got, err := parseCandidates(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestParseCandidatesRejectsWholePayload(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no json", "I could not generate questions."},
		{"top-level object treated as array", `{"text":"q"}`},
		{"nothing complete", `[{"text":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseCandidates(tc.raw); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestParseCandidatesDropsInvalidElements(t *testing.T) {
	valid := candidateJSON([4]bool{false, true, false, false})
	cases := []struct {
		name string
		bad  string
	}{
		{"zero correct options", candidateJSON([4]bool{false, false, false, false})},
		{"two correct options", candidateJSON([4]bool{true, true, false, false})},
		{"empty text", `{"text":"","options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":false},{"text":"c","isCorrect":false},{"text":"d","isCorrect":false}],"correctAnswer":"a"}`},
		{"three options", `{"text":"q","options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":false},{"text":"c","isCorrect":false}],"correctAnswer":"a"}`},
		{"missing correct answer", `{"text":"q","options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":false},{"text":"c","isCorrect":false},{"text":"d","isCorrect":false}]}`},
		{"wrongly typed isCorrect", `{"text":"q","options":[{"text":"a","isCorrect":"yes"},{"text":"b","isCorrect":false},{"text":"c","isCorrect":false},{"text":"d","isCorrect":false}],"correctAnswer":"a"}`},
		{"wrongly typed option text", `{"text":"q","options":[{"text":12,"isCorrect":true},{"text":"b","isCorrect":false},{"text":"c","isCorrect":false},{"text":"d","isCorrect":false}],"correctAnswer":"a"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseCandidates("[" + valid + "," + tc.bad + "]")
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("len = %d, want only the valid element kept", len(got))
			}
		})
	}
}

func TestParseCandidatesTruncatedTail(t *testing.T) {
	raw := "[" + candidateJSON([4]bool{false, true, false, false}) + `,{"text":"cut off mid`
	got, err := parseCandidates(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 surviving element", len(got))
	}
	if got[0].Text != "sample question" {
		t.Errorf("kept wrong element: %+v", got[0])
	}
}

func TestEnrich(t *testing.T) {
	source := question.Question{
		ID:         "phy-001",
		Subject:    "Physics",
		Difficulty: question.DifficultyEasy,
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	candidates := []candidate{
		{
			Text: "What force accelerates a 1 kg mass at 1 m/s²?",
			Options: []candidateOption{
				{Text: "1 N", IsCorrect: true}, {Text: "2 N"}, {Text: "3 N"}, {Text: "4 N"},
			},
			CorrectAnswer: "1 N",
			Difficulty:    "Easy",
		},
		{
			Text: "Another question text about momentum",
			Options: []candidateOption{
				{Text: "a", IsCorrect: true}, {Text: "b"}, {Text: "c"}, {Text: "d"},
			},
			CorrectAnswer: "a",
			Subject:       "Mechanics",
		},
	}

	got := enrich(source, candidates, now)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "ai_phy-001_0" || got[1].ID != "ai_phy-001_1" {
		t.Errorf("synthetic ids = %s, %s", got[0].ID, got[1].ID)
	}
	for _, q := range got {
		if q.Provenance != question.ProvenanceAI {
			t.Errorf("provenance = %q, want ai", q.Provenance)
		}
		if q.Similarity != generatedSimilarity {
			t.Errorf("similarity = %f, want %f", q.Similarity, generatedSimilarity)
		}
		if q.BasedOn != "phy-001" {
			t.Errorf("basedOn = %q", q.BasedOn)
		}
		if !q.GeneratedAt.Equal(now) {
			t.Errorf("generatedAt = %v", q.GeneratedAt)
		}
		if err := q.Validate(); err != nil {
			t.Errorf("enriched question invalid: %v", err)
		}
	}
	if got[0].Subject != "Physics" {
		t.Errorf("subject fallback = %q, want source subject", got[0].Subject)
	}
	if got[1].Subject != "Mechanics" {
		t.Errorf("candidate subject ignored: %q", got[1].Subject)
	}
	if got[0].Difficulty != question.DifficultyEasy {
		t.Errorf("difficulty = %q, want normalized easy", got[0].Difficulty)
	}
	if got[1].Difficulty != question.DifficultyEasy {
		t.Errorf("difficulty fallback = %q, want source difficulty", got[1].Difficulty)
	}
}
