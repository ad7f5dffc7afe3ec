package query

import (
	"strings"
	"testing"
)

func TestNormalize_queriesListWins(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		queries []string
		want    string
	}{
		{"list beats query", "ignored free text", []string{"exact phrase search"}, "exact phrase search"},
		{"list is trimmed", "", []string{"  machine learning  "}, "machine learning"},
		{"multi-word survives untouched", "", []string{"capital of France"}, "capital of France"},
		{"blank first element falls through", "fallback", []string{"   "}, "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.query, tt.queries); got != tt.want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.query, tt.queries, got, tt.want)
			}
		})
	}
}

func TestNormalize_emptyInput(t *testing.T) {
	if got := Normalize("", nil); got != "" {
		t.Errorf("Normalize of empty input = %q, want empty", got)
	}
	if got := Normalize("", []string{}); got != "" {
		t.Errorf("Normalize of empty slices = %q, want empty", got)
	}
}

func TestNormalize_thinkTagsAndFirstToken(t *testing.T) {
	// Closed think span is stripped, then plain free text truncates at the
	// first space.
	got := Normalize("<think>reasoning</think>capital of France", nil)
	if got != "capital" {
		t.Errorf("got %q, want %q", got, "capital")
	}
}

func TestNormalize_jsonEnvelope(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"queries envelope", `{"queries": ["foo bar", "baz"]}`, "foo bar"},
		{"envelope after think tag", `<think>hmm</think>{"queries": ["deep dive"]}`, "deep dive"},
		{"bare array", `["hello world", "x"]`, "hello world"},
		{"bare quoted string", `"hello world"`, "hello world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.query, nil); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestNormalize_firstTokenGate(t *testing.T) {
	// Colons, braces and brackets disable the first-token heuristic.
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"plain text truncates", "red fox jumps", "red"},
		{"colon preserves phrase", "title:red fox jumps", "title:red fox jumps"},
		{"single token unchanged", "hello", "hello"},
		{"brace without queries key kept whole", "{red fox}", "{red fox}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.query, nil); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestNormalize_unterminatedThinkTag(t *testing.T) {
	// Only fully closed tags are stripped; the unterminated tag stays, and
	// the first-token heuristic then applies to what is left.
	got := Normalize("<think>abc def", nil)
	if got != "<think>abc" {
		t.Errorf("got %q, want %q", got, "<think>abc")
	}
}

func TestNormalize_lengthCap(t *testing.T) {
	long := strings.Repeat("a", 3*MaxQueryLen)
	got := Normalize(long, nil)
	if len(got) != MaxQueryLen {
		t.Errorf("normalized length = %d, want %d", len(got), MaxQueryLen)
	}
}

func TestStripThinkTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no tags", "plain", "plain"},
		{"single span", "<think>x</think>after", "after"},
		{"multiple spans", "<think>a</think>mid<think>b</think>end", "midend"},
		{"unterminated untouched", "<think>never closed", "<think>never closed"},
		{"nested open uses first close", "<think>a<think>b</think>c", "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripThinkTags(tt.in); got != tt.want {
				t.Errorf("stripThinkTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
