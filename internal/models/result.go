package models

import "strings"

// SearchResult is one reshaped backend hit.
type SearchResult struct {
	Link    string `json:"link"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SearchResponse is the caller-facing search document. Field order follows
// declaration order and is kept stable for output testability.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	TookMS  int64          `json:"took_ms"`
	Total   int            `json:"total"`
	Engine  string         `json:"engine"`
}

// Sanitize flattens embedded newlines, carriage returns and tabs to a single
// space each; serialized output never carries them. Quote and backslash
// escaping is left to the JSON encoder.
func Sanitize(s string) string {
	if !strings.ContainsAny(s, "\n\r\t") {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, s)
}

// Sanitized returns a copy of r with all fields flattened for serialization.
func (r SearchResult) Sanitized() SearchResult {
	return SearchResult{
		Link:    Sanitize(r.Link),
		Title:   Sanitize(r.Title),
		Snippet: Sanitize(r.Snippet),
	}
}

// NewSearchResponse builds the caller-facing document from transformed hits.
// A nil result set serializes as an empty array, not null.
func NewSearchResponse(results []SearchResult, tookMS int64, engineName string) *SearchResponse {
	sanitized := make([]SearchResult, len(results))
	for i, r := range results {
		sanitized[i] = r.Sanitized()
	}
	return &SearchResponse{
		Results: sanitized,
		TookMS:  tookMS,
		Total:   len(sanitized),
		Engine:  engineName,
	}
}
