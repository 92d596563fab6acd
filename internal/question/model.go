// File path: internal/question/model.go
package question

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a question id does not resolve in the corpus.
var ErrNotFound = errors.New("question not found")

// Provenance records where a question came from.
type Provenance string

const (
	ProvenanceDB Provenance = "db"
	ProvenanceAI Provenance = "ai"
)

// Difficulty is the normalized difficulty vocabulary. Corpus rows and
// generated questions arrive with differing vocabularies (beginner/advanced,
// Easy/Hard); NormalizeDifficulty unifies them at the boundary.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// NormalizeDifficulty maps any known difficulty label onto the normalized
// vocabulary. Unknown or empty labels map to medium.
func NormalizeDifficulty(value string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy", "beginner", "basic", "simple":
		return DifficultyEasy
	case "hard", "advanced", "expert", "difficult":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Option is one multiple-choice answer.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// OptionList stores options as a JSON column in SQLite.
type OptionList []Option

func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("marshal options: %w", err)
	}
	return string(data), nil
}

func (o *OptionList) Scan(src interface{}) error {
	return scanJSON(src, o, "options")
}

// StringList stores topic tags as a JSON column in SQLite.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(data), nil
}

func (s *StringList) Scan(src interface{}) error {
	return scanJSON(src, s, "string list")
}

func scanJSON(src, dest interface{}, what string) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("scan %s: unsupported type %T", what, src)
	}
}

// Question is the central entity of the corpus and the recommendation
// pipeline.
type Question struct {
	ID            string     `json:"id" db:"id"`
	Text          string     `json:"text" db:"text"`
	Options       OptionList `json:"options" db:"options"`
	CorrectAnswer string     `json:"correct_answer" db:"correct_answer"`
	Explanation   string     `json:"explanation,omitempty" db:"explanation"`
	Subject       string     `json:"subject" db:"subject"`
	Topics        StringList `json:"topics,omitempty" db:"topics"`
	Difficulty    Difficulty `json:"difficulty" db:"difficulty"`
	Provenance    Provenance `json:"provenance" db:"provenance"`

	// Similarity is set on recommendation results: the ranker score for
	// corpus matches, a fixed constant for generated questions.
	Similarity float64 `json:"similarity,omitempty" db:"-"`

	// BasedOn and GeneratedAt are populated on AI-generated questions only.
	BasedOn     string    `json:"based_on,omitempty" db:"-"`
	GeneratedAt time.Time `json:"generated_at,omitempty" db:"-"`
}

// Validate reports whether the question is well formed: non-empty text,
// exactly four options with exactly one marked correct, and a non-empty
// denormalized correct answer.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("question text required")
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("expected 4 options, got %d", len(q.Options))
	}
	correct := 0
	for i, opt := range q.Options {
		if strings.TrimSpace(opt.Text) == "" {
			return fmt.Errorf("option %d text required", i)
		}
		if opt.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("expected exactly 1 correct option, got %d", correct)
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return errors.New("correct answer required")
	}
	return nil
}
