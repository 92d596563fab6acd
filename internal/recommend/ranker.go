// File path: internal/recommend/ranker.go
package recommend

import (
	"sort"

	"github.com/dkoushik/prepwell/internal/question"
)

// MinScore is the relevance threshold; matches at or below it are noise.
const MinScore = 0.3

// Rank filters and orders corpus questions by similarity to the source,
// returning at most target results. The source itself is excluded by id, ties
// keep corpus iteration order, and every returned question carries its score
// and DB provenance.
func Rank(source question.Question, corpus []question.Question, target int) []question.Question {
	if target <= 0 {
		return nil
	}
	type scored struct {
		q     question.Question
		score float64
	}
	candidates := make([]scored, 0, len(corpus))
	for _, q := range corpus {
		if q.ID == source.ID {
			continue
		}
		s := Score(source, q)
		if s <= MinScore {
			continue
		}
		candidates = append(candidates, scored{q: q, score: s})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > target {
		candidates = candidates[:target]
	}
	out := make([]question.Question, 0, len(candidates))
	for _, c := range candidates {
		q := c.q
		q.Similarity = c.score
		q.Provenance = question.ProvenanceDB
		out = append(out, q)
	}
	return out
}
