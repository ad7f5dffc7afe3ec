// Package utils provides shared utilities for text and logging.
package utils

import (
	"fmt"
	"strings"
)

// Truncate returns s truncated to maxLen bytes, with "..." appended if truncated.
// If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// TruncateUTF8 returns the largest byte offset <= maxBytes in s that does not
// split a multi-byte UTF-8 sequence, decided by the lead-byte pattern alone.
// A malformed lead byte advances by one (best effort, never an error).
func TruncateUTF8(s string, maxBytes int) int {
	if maxBytes < 0 {
		maxBytes = 0
	}
	pos := 0
	for pos < len(s) && pos < maxBytes {
		c := s[pos]
		var width int
		switch {
		case c < 0x80:
			width = 1
		case c&0xE0 == 0xC0:
			width = 2
		case c&0xF0 == 0xE0:
			width = 3
		case c&0xF8 == 0xF0:
			width = 4
		default:
			// malformed lead byte
			width = 1
		}
		if pos+width > maxBytes {
			break
		}
		pos += width
	}
	if pos > len(s) {
		pos = len(s)
	}
	return pos
}

// EncodeTitle percent-encodes a page title for a MediaWiki-style URL path.
// RFC 3986 unreserved characters pass through, spaces become underscores,
// and every other byte is %XX with uppercase hex.
func EncodeTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('_')
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// TrimASCII strips leading and trailing ASCII whitespace. Unlike
// strings.TrimSpace it leaves non-ASCII whitespace runes in place, matching
// how inbound query bytes are treated everywhere else in the pipeline.
func TrimASCII(s string) string {
	start := 0
	for start < len(s) && isASCIISpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
