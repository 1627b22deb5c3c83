package analyzer_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ZephyrDeng/speech-analyzer-mcp/analyzer"
)

func TestExtractKeywords(t *testing.T) {
	t.Run("FiltersStopwordsAndShortTokens", func(t *testing.T) {
		got, err := analyzer.ExtractKeywords("the economy and it's of no freedom", 10, nil)
		if err != nil {
			t.Fatalf("ExtractKeywords failed: %v", err)
		}

		for _, k := range got {
			switch k.Word {
			case "the", "and", "of", "no", "it's":
				t.Errorf("keyword list contains filtered token %q", k.Word)
			}
		}
		if len(got) != 2 {
			t.Fatalf("got %d keywords (%v), want 2", len(got), got)
		}
	})

	t.Run("StemmingAggregatesInflectedForms", func(t *testing.T) {
		got, err := analyzer.ExtractKeywords("Nation nations. A nation!", 10, nil)
		if err != nil {
			t.Fatalf("ExtractKeywords failed: %v", err)
		}

		if len(got) != 1 {
			t.Fatalf("got %d keywords (%v), want 1", len(got), got)
		}
		k := got[0]
		if k.Count != 3 {
			t.Errorf("count = %d, want 3", k.Count)
		}
		if k.Word != "nation" {
			t.Errorf("surface form = %q, want first-seen %q", k.Word, "nation")
		}
	})

	t.Run("ExtraStopwordsWidenTheFilter", func(t *testing.T) {
		got, err := analyzer.ExtractKeywords("applause applause freedom", 10, []string{"applause"})
		if err != nil {
			t.Fatalf("ExtractKeywords failed: %v", err)
		}
		if len(got) != 1 || got[0].Word != "freedom" {
			t.Errorf("got %v, want just freedom", got)
		}
	})

	t.Run("LimitTruncatesRanking", func(t *testing.T) {
		got, err := analyzer.ExtractKeywords("alpha bravo charlie delta", 2, nil)
		if err != nil {
			t.Fatalf("ExtractKeywords failed: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("got %d keywords, want 2", len(got))
		}
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		_, err := analyzer.ExtractKeywords("   ", 10, nil)
		if !errors.Is(err, analyzer.ErrEmptyDocument) {
			t.Errorf("err = %v, want ErrEmptyDocument", err)
		}
	})
}

func TestFormatKeywords(t *testing.T) {
	keywords := []analyzer.Keyword{
		{Rank: 1, Word: "freedom", Stem: "freedom", Count: 4},
		{Rank: 2, Word: "nation", Stem: "nation", Count: 2},
	}

	t.Run("TextFormat", func(t *testing.T) {
		out, err := analyzer.FormatKeywords(keywords, analyzer.FormatText)
		if err != nil {
			t.Fatalf("FormatKeywords(text) failed: %v", err)
		}
		for _, expected := range []string{"Keyword", "Count", "freedom", "nation"} {
			if !strings.Contains(out, expected) {
				t.Errorf("text output missing %q", expected)
			}
		}
	})

	t.Run("JSONFormat", func(t *testing.T) {
		out, err := analyzer.FormatKeywords(keywords, analyzer.FormatJSON)
		if err != nil {
			t.Fatalf("FormatKeywords(json) failed: %v", err)
		}
		var decoded []analyzer.Keyword
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("JSON output did not parse: %v", err)
		}
		if len(decoded) != 2 || decoded[0].Word != "freedom" {
			t.Errorf("decoded = %v", decoded)
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		if _, err := analyzer.FormatKeywords(keywords, "csv"); err == nil {
			t.Error("expected error for unsupported format")
		}
	})
}
