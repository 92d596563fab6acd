// File path: internal/genai/validate.go
package genai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dkoushik/prepwell/internal/question"
	"github.com/dkoushik/prepwell/internal/recommend"
)

// generatedSimilarity is the fixed similarity assigned to generated
// questions: they were produced specifically to match the source, so no
// heuristic score applies.
const generatedSimilarity = 0.9

type candidateOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type candidate struct {
	Text          string            `json:"text"`
	Options       []candidateOption `json:"options"`
	CorrectAnswer string            `json:"correctAnswer"`
	Explanation   string            `json:"explanation"`
	Subject       string            `json:"subject"`
	Difficulty    string            `json:"difficulty"`
}

// parseCandidates repairs and parses the raw model response into candidate
// questions. Elements that fail to decode or validate are dropped
// individually; an error is returned only when the payload as a whole is
// unusable.
func parseCandidates(raw string) ([]candidate, error) {
	repaired := repairJSON(raw)
	if repaired == "" {
		return nil, errors.New("no parseable JSON in response")
	}
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(repaired), &elements); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w", err)
	}
	out := make([]candidate, 0, len(elements))
	for _, element := range elements {
		var c candidate
		if err := json.Unmarshal(element, &c); err != nil {
			continue
		}
		if err := validateCandidate(c); err != nil {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func validateCandidate(c candidate) error {
	if strings.TrimSpace(c.Text) == "" {
		return errors.New("empty question text")
	}
	if len(c.Options) != 4 {
		return fmt.Errorf("expected 4 options, got %d", len(c.Options))
	}
	correct := 0
	for _, opt := range c.Options {
		if strings.TrimSpace(opt.Text) == "" {
			return errors.New("empty option text")
		}
		if opt.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("expected exactly 1 correct option, got %d", correct)
	}
	if strings.TrimSpace(c.CorrectAnswer) == "" {
		return errors.New("empty correct answer")
	}
	return nil
}

// enrich converts validated candidates into Questions carrying synthetic ids
// and generation provenance.
func enrich(source question.Question, candidates []candidate, now time.Time) []question.Question {
	out := make([]question.Question, 0, len(candidates))
	for i, c := range candidates {
		options := make(question.OptionList, 0, len(c.Options))
		for _, opt := range c.Options {
			options = append(options, question.Option{Text: opt.Text, IsCorrect: opt.IsCorrect})
		}
		subject := strings.TrimSpace(c.Subject)
		if subject == "" {
			subject = source.Subject
		}
		difficulty := source.Difficulty
		if strings.TrimSpace(c.Difficulty) != "" {
			difficulty = question.NormalizeDifficulty(c.Difficulty)
		}
		out = append(out, question.Question{
			ID:            fmt.Sprintf("ai_%s_%d", source.ID, i),
			Text:          c.Text,
			Options:       options,
			CorrectAnswer: c.CorrectAnswer,
			Explanation:   c.Explanation,
			Subject:       subject,
			Topics:        question.StringList(recommend.ExtractTopics(c.Text)),
			Difficulty:    difficulty,
			Provenance:    question.ProvenanceAI,
			Similarity:    generatedSimilarity,
			BasedOn:       source.ID,
			GeneratedAt:   now,
		})
	}
	return out
}
