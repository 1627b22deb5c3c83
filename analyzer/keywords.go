package analyzer

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball"
	"github.com/kljensen/snowball/english"
)

// DefaultKeywordLimit is the keyword ranking size when the caller does not
// choose one.
const DefaultKeywordLimit = 10

// ExtractKeywords ranks the content words of text: stopwords and very short
// tokens are dropped, the rest are stemmed so inflected forms ("economy",
// "economies") aggregate under one stem. Each keyword reports the first
// surface form seen for its stem. extraStopwords widens the filter (e.g. a
// config stoplist); ties keep document order.
func ExtractKeywords(text string, limit int, extraStopwords []string) ([]Keyword, error) {
	if limit <= 0 {
		limit = DefaultKeywordLimit
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidEncoding
	}

	stop := stopwordSet(extraStopwords)

	type stemStat struct {
		surface string // first form seen
		count   int
	}
	stats := make(map[string]*stemStat)
	var order []string // stems in first-seen order

	total := 0
	for tok := range Tokens(text) {
		total++

		if utf8.RuneCountInString(tok) <= 2 || english.IsStopWord(tok) || stop[tok] {
			continue
		}

		stem, err := snowball.Stem(tok, "english", true)
		if err != nil || stem == "" {
			stem = tok // fall back to the surface form
		}

		s, seen := stats[stem]
		if !seen {
			s = &stemStat{surface: tok}
			stats[stem] = s
			order = append(order, stem)
		}
		s.count++
	}

	if total == 0 {
		return nil, ErrEmptyDocument
	}

	ranked := make([]Keyword, 0, len(order))
	for _, stem := range order {
		s := stats[stem]
		ranked = append(ranked, Keyword{Word: s.surface, Stem: stem, Count: s.count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	log.Printf("Extracted %d keywords from %d words", len(ranked), total)
	return ranked, nil
}

// FormatKeywords renders a keyword ranking as text or JSON.
func FormatKeywords(keywords []Keyword, format string) (string, error) {
	switch format {
	case FormatText, FormatMarkdown:
		var b strings.Builder
		if format == FormatMarkdown {
			b.WriteString("```text\n")
		}
		b.WriteString(fmt.Sprintf("Top %d keywords:\n", len(keywords)))
		b.WriteString(fmt.Sprintf("%-5s%-20s%s\n", "Rank", "Keyword", "Count"))
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, k := range keywords {
			b.WriteString(fmt.Sprintf("%-5d%-20s%d\n", k.Rank, k.Word, k.Count))
		}
		if format == FormatMarkdown {
			b.WriteString("```\n")
		}
		return b.String(), nil

	case FormatJSON:
		out, err := json.MarshalIndent(keywords, "", "  ")
		if err != nil {
			errJSON, _ := json.Marshal(ErrorResult{Error: fmt.Sprintf("failed to marshal keywords to JSON: %v", err)})
			return string(errJSON), nil
		}
		return string(out), nil

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
