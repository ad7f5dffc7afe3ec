package engine

import (
	"strings"

	"github.com/hyperjump/kensaku/internal/jsonscan"
	"github.com/hyperjump/kensaku/internal/models"
	"github.com/hyperjump/kensaku/pkg/utils"
)

// MaxResults is the absolute ceiling on transformed hits, regardless of the
// requested limit.
const MaxResults = 50

const (
	titleFallback   = "Unknown Document"
	snippetFallback = "No content available"
)

const hitsKey = `"hits"`

// Transform walks a raw backend response and produces at most
// min(limit, MaxResults) results. Malformed responses degrade to fewer (or
// zero) results; this never fails.
//
// The backend nests an outer "hits" object around the inner "hits" array, so
// the scan anchors on the second occurrence of the key, then visits each
// "_source" object. Links are always built from the title; the backend's own
// URLs are never trusted.
func Transform(response string, limit, snippetLen int, baseURL string) []models.SearchResult {
	results := []models.SearchResult{}
	if limit > MaxResults {
		limit = MaxResults
	}

	outer := strings.Index(response, hitsKey)
	if outer < 0 {
		return results
	}
	inner := strings.Index(response[outer+len(hitsKey):], hitsKey)
	if inner < 0 {
		return results
	}
	pos := outer + len(hitsKey) + inner
	arr := strings.IndexByte(response[pos:], '[')
	if arr < 0 {
		return results
	}
	pos += arr

	for len(results) < limit {
		i := strings.Index(response[pos:], `"_source"`)
		if i < 0 {
			break
		}
		srcStart := pos + i
		pos = srcStart + len(`"_source"`)
		source := response[srcStart:]

		title, ok := jsonscan.StringField(source, "page_title")
		if !ok {
			title = titleFallback
		}

		snippet, ok := jsonscan.StringField(source, "old_text")
		if !ok {
			snippet = snippetFallback
		} else if snippetLen > 0 && len(snippet) > snippetLen {
			snippet = snippet[:utils.TruncateUTF8(snippet, snippetLen)] + "..."
		}

		results = append(results, models.SearchResult{
			Link:    baseURL + utils.EncodeTitle(title),
			Title:   title,
			Snippet: snippet,
		})
	}
	return results
}
