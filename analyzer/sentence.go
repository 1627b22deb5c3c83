package analyzer

import "strings"

// CountSentences counts sentence-terminal punctuation (".", "!", "?") in
// text. A document with content but no terminal punctuation counts as one
// sentence; an effectively empty document counts as zero.
//
// This is a deliberate approximation: abbreviations and decimal numbers
// inflate the count. Keep the heuristic simple rather than fixing it
// piecemeal.
func CountSentences(text string) int {
	n := strings.Count(text, ".") +
		strings.Count(text, "!") +
		strings.Count(text, "?")

	if n == 0 && strings.TrimSpace(text) != "" {
		return 1
	}
	return n
}
