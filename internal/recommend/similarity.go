// File path: internal/recommend/similarity.go
package recommend

import (
	"strings"

	"github.com/dkoushik/prepwell/internal/question"
)

const (
	topicWeight = 0.6
	lexWeight   = 0.4

	// Tokens this short (articles, copulas, symbols) carry no domain signal.
	minTokenLen = 4
)

// Score computes a similarity score in [0,1] between two questions. Topic
// overlap is the primary signal; lexical overlap of longer tokens is a
// secondary tie-breaker that rewards shared domain vocabulary.
func Score(a, b question.Question) float64 {
	return topicWeight*topicScore(a, b) + lexWeight*lexScore(a.Text, b.Text)
}

func topicScore(a, b question.Question) float64 {
	topicsA := topicsFor(a)
	topicsB := topicsFor(b)
	shared := 0
	for tag := range topicsA {
		if _, ok := topicsB[tag]; ok {
			shared++
		}
	}
	return float64(shared) / float64(maxInt(len(topicsA), len(topicsB), 1))
}

func lexScore(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)
	setA := make(map[string]struct{}, len(tokensA))
	for _, tok := range tokensA {
		if len(tok) >= minTokenLen {
			setA[tok] = struct{}{}
		}
	}
	shared := 0
	seen := make(map[string]struct{}, len(tokensB))
	for _, tok := range tokensB {
		if len(tok) < minTokenLen {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, ok := setA[tok]; ok {
			shared++
		}
	}
	return float64(shared) / float64(maxInt(len(tokensA), len(tokensB), 1))
}

func topicsFor(q question.Question) map[string]struct{} {
	tags := []string(q.Topics)
	if len(tags) == 0 {
		tags = ExtractTopics(q.Text)
	}
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

func maxInt(values ...int) int {
	out := values[0]
	for _, v := range values[1:] {
		if v > out {
			out = v
		}
	}
	return out
}
