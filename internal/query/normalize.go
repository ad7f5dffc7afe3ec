package query

import (
	"strings"

	"github.com/hyperjump/kensaku/internal/jsonscan"
	"github.com/hyperjump/kensaku/pkg/utils"
)

// Normalize reduces a raw query and an optional queries list to a single
// clean search string, which may be empty.
//
// An explicit queries list wins outright: its first element is returned
// trimmed with no further cleanup. Otherwise the raw query is stripped of
// closed <think> spans, unwrapped from any JSON envelope a model may have
// emitted around it, and, for plain free text, truncated at the first space.
// That last step is an intentional heuristic for model-echoed queries;
// callers that want multi-word phrases preserved send them via the queries
// list. The result is capped at MaxQueryLen bytes (byte-level, not
// UTF-8-aware, at this final step).
func Normalize(rawQuery string, queries []string) string {
	if len(queries) > 0 {
		if first := utils.TrimASCII(queries[0]); first != "" {
			return first
		}
	}
	if rawQuery == "" {
		return ""
	}

	cleaned := utils.TrimASCII(stripThinkTags(rawQuery))

	// Model emitted a JSON envelope like {"queries": ["..."]} instead of text.
	if strings.ContainsRune(cleaned, '{') && strings.Contains(cleaned, "queries") {
		if nested, ok := jsonscan.FirstArrayString(cleaned, "queries"); ok && nested != "" {
			return nested
		}
	}

	// Bare JSON array fallback.
	if strings.HasPrefix(cleaned, "[") {
		if start, end, ok := jsonscan.FindQuotedString(cleaned, 0); ok {
			return cleaned[start:end]
		}
	}

	// Bare JSON string fallback.
	if strings.HasPrefix(cleaned, `"`) {
		if end := strings.IndexByte(cleaned[1:], '"'); end >= 0 {
			return cleaned[1 : 1+end]
		}
	}

	// Plain free text: take the first token.
	if !strings.ContainsAny(cleaned, "{[:") {
		if sp := strings.IndexByte(cleaned, ' '); sp >= 0 {
			cleaned = cleaned[:sp]
		}
	}

	if len(cleaned) > MaxQueryLen {
		cleaned = cleaned[:MaxQueryLen]
	}
	return cleaned
}

// stripThinkTags removes fully closed <think>...</think> spans, the
// "reasoning" leakage some model callers prepend. An unterminated <think>
// leaves the remainder untouched.
func stripThinkTags(s string) string {
	const openTag, closeTag = "<think>", "</think>"
	if !strings.Contains(s, openTag) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		i := strings.Index(s, openTag)
		if i < 0 {
			break
		}
		j := strings.Index(s[i:], closeTag)
		if j < 0 {
			break
		}
		b.WriteString(s[:i])
		s = s[i+j+len(closeTag):]
	}
	b.WriteString(s)
	return b.String()
}
