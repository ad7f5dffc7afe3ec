// Package query turns noisy inbound request bodies into clean search strings.
package query

import (
	"strings"

	"github.com/hyperjump/kensaku/internal/jsonscan"
	"github.com/hyperjump/kensaku/internal/models"
)

const (
	// MaxQueryLen caps the normalized query length in bytes.
	MaxQueryLen = 1024
	// MaxQueries bounds how many entries of a "queries" array are parsed.
	MaxQueries = 10
)

// ParseRequest extracts query, queries and count from a raw JSON body.
// Missing or malformed fields become empty values; count falls back to
// defaultCount when absent or non-positive. Never fails.
func ParseRequest(body string, defaultCount int) *models.SearchRequest {
	req := &models.SearchRequest{}
	if q, ok := jsonscan.StringField(body, "query"); ok {
		req.Query = q
	}
	req.Queries = jsonscan.StringArray(body, "queries", MaxQueries)
	req.Count = parseCount(body)
	if req.Count <= 0 {
		req.Count = defaultCount
	}
	return req
}

// parseCount reads the integer after "count":, tolerating trailing junk the
// way atoi would. Returns 0 when the key or a parseable prefix is missing.
func parseCount(body string) int {
	keyPos := strings.Index(body, `"count"`)
	if keyPos < 0 {
		return 0
	}
	colon := strings.IndexByte(body[keyPos:], ':')
	if colon < 0 {
		return 0
	}
	return atoiPrefix(body[keyPos+colon+1:])
}

// atoiPrefix parses a leading optionally-signed decimal integer: skip ASCII
// whitespace, consume digits, ignore everything after.
func atoiPrefix(s string) int {
	i := 0
	for i < len(s) && isASCIISpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if neg {
		return -n
	}
	return n
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
