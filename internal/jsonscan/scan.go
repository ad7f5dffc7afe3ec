// Package jsonscan extracts string values from raw JSON text with a single
// forward scan, without building a parse tree.
//
// The documents this gateway handles have a known, shallow shape, and every
// caller must tolerate malformed or truncated input: absence is a first-class
// result and a broken array yields whatever was collected so far. A real JSON
// decoder would reject exactly the inputs this package has to survive, so it
// stays a hand scanner on purpose.
//
// Known limitation: \uXXXX escapes are not expanded; they pass through
// verbatim rather than being corrupted.
package jsonscan

import "strings"

// FindQuotedString returns the content bounds of the next double-quoted run
// in s at or after from, treating backslash-escaped characters as part of the
// run. ok is false when no complete quoted run exists before the end of s.
func FindQuotedString(s string, from int) (start, end int, ok bool) {
	if from < 0 || from > len(s) {
		return 0, 0, false
	}
	i := strings.IndexByte(s[from:], '"')
	if i < 0 {
		return 0, 0, false
	}
	start = from + i + 1
	for end = start; end < len(s); end++ {
		switch s[end] {
		case '\\':
			end++ // skip the escaped character
		case '"':
			return start, end, true
		}
	}
	return 0, 0, false
}

// Unescape expands \n, \r, \t, \\ and \" in raw. Any other escaped character
// is copied through literally.
func Unescape(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '\\' && i+1 < len(raw) {
			i++
			switch raw[i] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(raw[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// StringField returns the unescaped value of the first "key": "value" pair in
// json, located by literal substring scan. ok is false when the key or a
// following quoted value is missing.
func StringField(json, key string) (string, bool) {
	keyPos := strings.Index(json, `"`+key+`"`)
	if keyPos < 0 {
		return "", false
	}
	colon := strings.IndexByte(json[keyPos:], ':')
	if colon < 0 {
		return "", false
	}
	start, end, ok := FindQuotedString(json, keyPos+colon)
	if !ok {
		return "", false
	}
	return Unescape(json[start:end]), true
}

// FirstArrayString returns the unescaped first string element of the array
// following "key". It requires a '[' between the key and the value.
func FirstArrayString(json, key string) (string, bool) {
	keyPos := strings.Index(json, `"`+key+`"`)
	if keyPos < 0 {
		return "", false
	}
	bracket := strings.IndexByte(json[keyPos:], '[')
	if bracket < 0 {
		return "", false
	}
	start, end, ok := FindQuotedString(json, keyPos+bracket)
	if !ok {
		return "", false
	}
	return Unescape(json[start:end]), true
}

// StringArray collects up to maxCount quoted strings from the [...] span
// following "key". A malformed or truncated array yields whatever was
// collected before the scan stopped; partial results are valid.
func StringArray(json, key string, maxCount int) []string {
	keyPos := strings.Index(json, `"`+key+`"`)
	if keyPos < 0 {
		return nil
	}
	open := strings.IndexByte(json[keyPos:], '[')
	if open < 0 {
		return nil
	}
	open += keyPos
	closing := strings.IndexByte(json[open:], ']')
	if closing < 0 {
		return nil
	}
	closing += open

	var out []string
	pos := open + 1
	for pos < closing && len(out) < maxCount {
		start, end, ok := FindQuotedString(json, pos)
		if !ok || end > closing {
			break
		}
		out = append(out, Unescape(json[start:end]))
		pos = end + 1
	}
	return out
}
