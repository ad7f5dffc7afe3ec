// Package template loads and renders the backend query template.
package template

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Placeholder tokens substituted by Render.
const (
	tokenIndexName   = "{INDEX_NAME}"
	tokenSearchQuery = "{SEARCH_QUERY}"
	tokenResultLimit = "{RESULT_LIMIT}"
)

// MaxRenderedSize bounds the rendered backend request body. Exceeding it is
// an explicit error, never a silent truncation.
const MaxRenderedSize = 2 << 20

// Store caches a template file for the life of the process. The first
// successful load wins and the backing file is never re-read; Watch makes a
// later on-disk change visible in logs without invalidating the cache.
type Store struct {
	path string

	mu      sync.Mutex
	content string
	loaded  bool
}

// NewStore returns a store reading from path on first use.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the cached template content, reading the file on the first
// call. A missing or unreadable file is reported on every call until a load
// succeeds; callers treat that as "search unavailable".
func (s *Store) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.content, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	s.content = string(data)
	s.loaded = true
	return s.content, nil
}

// isLoaded reports whether the cache has been populated.
func (s *Store) isLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Render substitutes the three placeholder tokens in a single left-to-right
// scan; substituted values are not rescanned. The query is inserted as-is and
// the template must carry whatever JSON escaping its surroundings need.
// Returns an error when the result would exceed MaxRenderedSize.
func Render(tmpl, indexName, searchQuery string, limit int) (string, error) {
	r := strings.NewReplacer(
		tokenIndexName, indexName,
		tokenSearchQuery, searchQuery,
		tokenResultLimit, strconv.Itoa(limit),
	)
	out := r.Replace(tmpl)
	if len(out) > MaxRenderedSize {
		return "", fmt.Errorf("rendered query body is %d bytes, exceeds limit of %d", len(out), MaxRenderedSize)
	}
	return out, nil
}
