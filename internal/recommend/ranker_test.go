// File path: internal/recommend/ranker_test.go
package recommend

import (
	"testing"

	"github.com/dkoushik/prepwell/internal/question"
)

func rankCorpus() (question.Question, []question.Question) {
	source := q("src", "calculate the force on the block", "mechanics")
	corpus := []question.Question{
		q("src", "calculate the force on the block", "mechanics"),
		// Same topic and heavy lexical overlap: highest score.
		q("a", "calculate the force on the ramp", "mechanics"),
		// Same topic only.
		q("b", "momentum of two colliding bodies", "mechanics"),
		// Half topic overlap and no shared tokens: 0.6 * 0.5 = 0.3, which
		// sits exactly at the threshold and is excluded.
		q("c", "heat moves along a solid rod", "mechanics", "thermodynamics"),
		// No overlap at all.
		q("d", "periodic table of the elements", "chemistry"),
	}
	return source, corpus
}

func TestRankExcludesSourceAndNoise(t *testing.T) {
	source, corpus := rankCorpus()
	got := Rank(source, corpus, 10)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(got), got)
	}
	for _, r := range got {
		if r.ID == source.ID {
			t.Error("source question leaked into results")
		}
		if r.Similarity <= MinScore {
			t.Errorf("result %s score %f at or below threshold", r.ID, r.Similarity)
		}
		if r.Provenance != question.ProvenanceDB {
			t.Errorf("result %s provenance = %q, want db", r.ID, r.Provenance)
		}
	}
}

func TestRankOrdersByDescendingScore(t *testing.T) {
	source, corpus := rankCorpus()
	got := Rank(source, corpus, 10)
	for i := 1; i < len(got); i++ {
		if got[i].Similarity > got[i-1].Similarity {
			t.Fatalf("results out of order: %f before %f", got[i-1].Similarity, got[i].Similarity)
		}
	}
	if got[0].ID != "a" {
		t.Errorf("top result = %s, want a", got[0].ID)
	}
}

func TestRankRespectsTarget(t *testing.T) {
	source, corpus := rankCorpus()
	if got := Rank(source, corpus, 1); len(got) != 1 {
		t.Errorf("target 1 returned %d results", len(got))
	}
	if got := Rank(source, corpus, 0); got != nil {
		t.Errorf("target 0 returned %v", got)
	}
}

func TestRankStableTieBreak(t *testing.T) {
	source := q("src", "one", "mechanics")
	corpus := []question.Question{
		q("first", "two", "mechanics"),
		q("second", "three", "mechanics"),
	}
	got := Rank(source, corpus, 2)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Errorf("tie broke corpus order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestRankEmptyCorpus(t *testing.T) {
	source := q("src", "anything", "general")
	if got := Rank(source, nil, 3); len(got) != 0 {
		t.Errorf("empty corpus returned %v", got)
	}
}
