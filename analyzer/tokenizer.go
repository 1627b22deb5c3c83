package analyzer

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokens returns the normalized word tokens of text as a one-pass sequence.
// The sequence is restartable: ranging over it again re-tokenizes the same
// document from the start.
//
// Normalization rules:
//   - split on whitespace
//   - strip leading/trailing runes that are not letters or digits
//     (internal hyphens and apostrophes survive, so "three-quarters" and
//     "that's" stay single tokens)
//   - lowercase
//   - drop words that are empty after stripping (e.g. "--")
//
// Numeric tokens are kept as-is.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, raw := range strings.Fields(text) {
			tok := normalizeToken(raw)
			if tok == "" {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// normalizeToken strips edge punctuation and lowercases a raw word.
// Returns "" when nothing remains.
func normalizeToken(raw string) string {
	start := 0
	for start < len(raw) {
		r, size := utf8.DecodeRuneInString(raw[start:])
		if isWordRune(r) {
			break
		}
		start += size
	}

	end := len(raw)
	for end > start {
		r, size := utf8.DecodeLastRuneInString(raw[start:end])
		if isWordRune(r) {
			break
		}
		end -= size
	}

	if start >= end {
		return ""
	}
	return strings.ToLower(raw[start:end])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
