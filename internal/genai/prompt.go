// File path: internal/genai/prompt.go
package genai

import (
	"fmt"
	"strings"

	"github.com/dkoushik/prepwell/internal/question"
	"github.com/dkoushik/prepwell/internal/recommend"
)

const maxPromptKeywords = 8

// subjectEntry pairs a subject label with keywords that imply it, used only
// when the source question carries no subject and no override is given.
type subjectEntry struct {
	Name     string
	Keywords []string
}

var subjectTable = []subjectEntry{
	{"Physics", []string{"force", "energy", "velocity", "circuit", "light", "wave", "momentum", "newton"}},
	{"Chemistry", []string{"reaction", "molecule", "acid", "element", "compound", "electron", "bond"}},
	{"Mathematics", []string{"equation", "triangle", "derivative", "integral", "polynomial", "angle", "solve"}},
	{"Biology", []string{"cell", "organism", "dna", "enzyme", "photosynthesis"}},
}

// subjectFor resolves the subject for a generation request: explicit override,
// else the source question's subject, else a keyword-based guess.
func subjectFor(source question.Question, override string) string {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return trimmed
	}
	if trimmed := strings.TrimSpace(source.Subject); trimmed != "" {
		return trimmed
	}
	lowered := strings.ToLower(source.Text)
	for _, entry := range subjectTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(lowered, kw) {
				return entry.Name
			}
		}
	}
	return "General Knowledge"
}

// promptKeywords pulls the longer distinct tokens from the source text to
// anchor the generated questions in the same vocabulary.
func promptKeywords(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, ".,:;?!()\"'")
		if len(tok) < 4 {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
		if len(out) == maxPromptKeywords {
			break
		}
	}
	return out
}

// buildPrompt constructs the single user-role instruction sent to the
// generation endpoint. The instruction pins the response to a strict JSON
// array so the repair and validation stages have a predictable shape to work
// with.
func buildPrompt(source question.Question, count int, subjectOverride string) string {
	subject := subjectFor(source, subjectOverride)
	topics := []string(source.Topics)
	if len(topics) == 0 {
		topics = recommend.ExtractTopics(source.Text)
	}
	difficulty := source.Difficulty
	if difficulty == "" {
		difficulty = question.DifficultyMedium
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly %d multiple-choice practice questions similar to the exam question below.\n\n", count)
	fmt.Fprintf(&b, "Source question: %s\n", source.Text)
	fmt.Fprintf(&b, "Subject: %s\n", subject)
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(topics, ", "))
	if keywords := promptKeywords(source.Text); len(keywords) > 0 {
		fmt.Fprintf(&b, "Related keywords: %s\n", strings.Join(keywords, ", "))
	}
	fmt.Fprintf(&b, "Difficulty: %s\n\n", difficulty)
	b.WriteString("Respond with ONLY a JSON array, no prose and no markdown fences. ")
	b.WriteString("Each element must be an object with these fields:\n")
	b.WriteString(`  "text": the question prompt (non-empty string)` + "\n")
	b.WriteString(`  "options": exactly 4 objects, each {"text": string, "isCorrect": boolean}` + "\n")
	b.WriteString(`  "correctAnswer": the text of the correct option` + "\n")
	b.WriteString(`  "explanation": a short explanation of the correct answer` + "\n")
	fmt.Fprintf(&b, "  %q: %q\n", "subject", subject)
	fmt.Fprintf(&b, "  %q: %q\n", "difficulty", string(difficulty))
	b.WriteString("\nExactly one option per question must have isCorrect set to true. ")
	b.WriteString("Questions must test the same topics at the same difficulty but must not repeat the source question.")
	return b.String()
}
