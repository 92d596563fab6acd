// File path: internal/recommend/recommender.go
package recommend

import (
	"context"
	"fmt"

	"github.com/dkoushik/prepwell/internal/common"
	"github.com/dkoushik/prepwell/internal/question"
)

// DefaultTarget is the number of similar questions returned when the caller
// does not request a specific count.
const DefaultTarget = 3

// Corpus describes the minimal contract the recommender needs from the
// persistence layer.
type Corpus interface {
	FindByID(ctx context.Context, id string) (question.Question, error)
	FindMany(ctx context.Context, filter question.Filter) ([]question.Question, error)
}

// Generator produces additional questions on demand when the corpus cannot
// satisfy the target. Implementations never return an error: every failure
// mode degrades to an empty slice.
type Generator interface {
	Generate(ctx context.Context, source question.Question, count int, subjectOverride string) []question.Question
}

// Metadata captures where the questions in a Result came from.
type Metadata struct {
	FromCorpus     int               `json:"from_corpus"`
	FromAI         int               `json:"from_ai"`
	SourceQuestion question.Question `json:"source_question"`
}

// Result is the per-request recommendation payload. It always satisfies
// FromCorpus + FromAI == len(Questions) <= target.
type Result struct {
	Questions []question.Question `json:"questions"`
	Metadata  Metadata            `json:"metadata"`
}

// Recommender combines corpus ranking with generated fallback questions.
type Recommender struct {
	corpus        Corpus
	generator     Generator
	defaultTarget int
}

// Option customizes a Recommender.
type Option func(*Recommender)

// WithDefaultTarget overrides the count used when a request does not specify
// one.
func WithDefaultTarget(n int) Option {
	return func(r *Recommender) {
		if n > 0 {
			r.defaultTarget = n
		}
	}
}

// New constructs a Recommender. The generator may be nil, in which case a
// corpus shortfall simply yields fewer results.
func New(corpus Corpus, generator Generator, opts ...Option) *Recommender {
	r := &Recommender{
		corpus:        corpus,
		generator:     generator,
		defaultTarget: DefaultTarget,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Recommend returns up to target questions similar to the source question.
// Corpus matches are always preferred; the generator only fills the
// shortfall. The only propagated failure is an unresolved source id
// (question.ErrNotFound); generation failures degrade to fewer results.
func (r *Recommender) Recommend(ctx context.Context, sourceID string, target int, subjectOverride string) (Result, error) {
	logger := common.Logger()
	if target <= 0 {
		target = r.defaultTarget
	}
	source, err := r.corpus.FindByID(ctx, sourceID)
	if err != nil {
		return Result{}, fmt.Errorf("resolve source question: %w", err)
	}

	corpus, err := r.corpus.FindMany(ctx, question.Filter{})
	if err != nil {
		return Result{}, fmt.Errorf("load corpus snapshot: %w", err)
	}
	matches := Rank(source, corpus, target)

	var generated []question.Question
	if shortfall := target - len(matches); shortfall > 0 && r.generator != nil {
		logger.Debug("recommend: corpus shortfall", "source", sourceID, "needed", shortfall)
		generated = r.generator.Generate(ctx, source, shortfall, subjectOverride)
	}

	combined := make([]question.Question, 0, target)
	seen := make(map[string]struct{}, target)
	fromCorpus, fromAI := 0, 0
	for _, q := range matches {
		if len(combined) == target {
			break
		}
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		combined = append(combined, q)
		fromCorpus++
	}
	for _, q := range generated {
		if len(combined) == target {
			break
		}
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		combined = append(combined, q)
		fromAI++
	}

	logger.Info("recommend: request served",
		"source", sourceID, "target", target,
		"from_corpus", fromCorpus, "from_ai", fromAI)
	return Result{
		Questions: combined,
		Metadata: Metadata{
			FromCorpus:     fromCorpus,
			FromAI:         fromAI,
			SourceQuestion: source,
		},
	}, nil
}
