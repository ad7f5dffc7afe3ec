package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a\nb", "a b"},
		{"a\r\nb", "a  b"},
		{"tab\there", "tab here"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewSearchResponse(t *testing.T) {
	results := []SearchResult{
		{Link: "http://x/A", Title: "A\nTitle", Snippet: "line one\nline two"},
	}
	resp := NewSearchResponse(results, 12, "manticore")
	if resp.Total != 1 {
		t.Errorf("total = %d", resp.Total)
	}
	if resp.TookMS != 12 {
		t.Errorf("took_ms = %d", resp.TookMS)
	}
	if resp.Engine != "manticore" {
		t.Errorf("engine = %q", resp.Engine)
	}
	if resp.Results[0].Title != "A Title" {
		t.Errorf("title not sanitized: %q", resp.Results[0].Title)
	}
	if resp.Results[0].Snippet != "line one line two" {
		t.Errorf("snippet not sanitized: %q", resp.Results[0].Snippet)
	}
}

func TestNewSearchResponse_emptySerializesAsArray(t *testing.T) {
	resp := NewSearchResponse(nil, 3, "manticore")
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, `"results":[]`) {
		t.Errorf("empty results must serialize as [], got %s", got)
	}
	if !strings.Contains(got, `"total":0`) {
		t.Errorf("total missing: %s", got)
	}
}

func TestSearchResponse_fieldOrder(t *testing.T) {
	resp := NewSearchResponse([]SearchResult{{Link: "l", Title: "t", Snippet: "s"}}, 1, "manticore")
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	order := []string{`"results"`, `"took_ms"`, `"total"`, `"engine"`}
	last := -1
	for _, key := range order {
		i := strings.Index(got, key)
		if i < 0 {
			t.Fatalf("key %s missing from %s", key, got)
		}
		if i < last {
			t.Errorf("key %s out of order in %s", key, got)
		}
		last = i
	}
	inner := []string{`"link"`, `"title"`, `"snippet"`}
	last = -1
	for _, key := range inner {
		i := strings.Index(got, key)
		if i < 0 {
			t.Fatalf("key %s missing from %s", key, got)
		}
		if i < last {
			t.Errorf("key %s out of order in %s", key, got)
		}
		last = i
	}
}
