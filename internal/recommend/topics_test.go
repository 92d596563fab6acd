// File path: internal/recommend/topics_test.go
package recommend

import (
	"reflect"
	"testing"
)

func TestExtractTopics(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "mechanics keyword",
			text: "A net force of 10 N acts on a body",
			want: []string{"mechanics"},
		},
		{
			name: "case insensitive",
			text: "OHM's law relates CURRENT and VOLTAGE",
			want: []string{"electricity"},
		},
		{
			name: "multiple topics keep table order",
			text: "The wave refraction changes the light frequency? No, only wavelength",
			want: []string{"optics", "waves"},
		},
		{
			name: "no match falls back to general",
			text: "history of the roman empire",
			want: []string{"general"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{"general"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractTopics(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ExtractTopics(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractTopicsDeterministic(t *testing.T) {
	text := "force on a charge moving through a circuit near a lens"
	first := ExtractTopics(text)
	for i := 0; i < 10; i++ {
		if got := ExtractTopics(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, first run produced %v", i, got, first)
		}
	}
}
