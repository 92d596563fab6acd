// File path: internal/recommend/topics.go
package recommend

import "strings"

// topicEntry pairs a topic tag with the keywords that imply it. The table is
// data, not logic: extend or reorder it without touching the extractor. Table
// order determines output order so scoring stays reproducible.
type topicEntry struct {
	Tag      string
	Keywords []string
}

var topicTable = []topicEntry{
	{"mechanics", []string{"force", "mass", "velocity", "acceleration", "momentum", "newton", "friction", "gravity"}},
	{"thermodynamics", []string{"heat", "temperature", "entropy", "thermal", "equilibrium"}},
	{"electricity", []string{"current", "voltage", "resistance", "circuit", "charge", "ohm"}},
	{"optics", []string{"light", "lens", "mirror", "refraction", "reflection"}},
	{"waves", []string{"wave", "frequency", "wavelength", "amplitude", "oscillat", "sound"}},
	{"algebra", []string{"equation", "polynomial", "variable", "solve", "linear"}},
	{"geometry", []string{"triangle", "circle", "angle", "area", "perimeter", "radius"}},
	{"calculus", []string{"derivative", "integral", "limit", "differentiat"}},
	{"chemistry", []string{"reaction", "molecule", "acid", "base", "element", "compound", "electron"}},
	{"biology", []string{"cell", "organism", "dna", "photosynthesis", "enzyme"}},
}

// ExtractTopics maps free-form question text to topic tags by case-insensitive
// keyword matching. Total function: unmatched text yields {"general"}.
func ExtractTopics(text string) []string {
	lowered := strings.ToLower(text)
	var tags []string
	for _, entry := range topicTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(lowered, kw) {
				tags = append(tags, entry.Tag)
				break
			}
		}
	}
	if len(tags) == 0 {
		return []string{"general"}
	}
	return tags
}
