package analyzer_test

import (
	"testing"

	"github.com/ZephyrDeng/speech-analyzer-mcp/analyzer"
)

func TestTopByFrequency(t *testing.T) {
	t.Run("SortsByCountDescending", func(t *testing.T) {
		table, _, _ := analyzer.Aggregate(analyzer.Tokens("b b b a a c"))
		got := analyzer.TopByFrequency(table, 3)

		wantOrder := []string{"b", "a", "c"}
		wantCount := []int{3, 2, 1}
		for i, w := range got {
			if w.Word != wantOrder[i] || w.Count != wantCount[i] || w.Rank != i+1 {
				t.Errorf("entry %d = %+v, want {Rank:%d Word:%s Count:%d}", i, w, i+1, wantOrder[i], wantCount[i])
			}
		}
	})

	t.Run("TiesKeepFirstSeenOrder", func(t *testing.T) {
		// "zebra" and "apple" both appear twice; zebra appears first in the
		// document, so it must rank first despite sorting after alphabetically.
		table, _, _ := analyzer.Aggregate(analyzer.Tokens("zebra apple zebra apple"))
		got := analyzer.TopByFrequency(table, 2)

		if len(got) != 2 {
			t.Fatalf("got %d entries, want 2", len(got))
		}
		if got[0].Word != "zebra" || got[1].Word != "apple" {
			t.Errorf("tie order = [%s, %s], want [zebra, apple]", got[0].Word, got[1].Word)
		}
	})

	t.Run("NLargerThanVocabulary", func(t *testing.T) {
		table, _, _ := analyzer.Aggregate(analyzer.Tokens("one two"))
		got := analyzer.TopByFrequency(table, 50)
		if len(got) != 2 {
			t.Errorf("got %d entries, want 2", len(got))
		}
	})
}

func TestTopLongestUnique(t *testing.T) {
	t.Run("SortsByLengthThenAlphabetically", func(t *testing.T) {
		// "mountain" and "parallel" are both 8 chars; alphabetical order
		// breaks the tie regardless of document order.
		table, _, _ := analyzer.Aggregate(analyzer.Tokens("mountain parallel sea extraordinary"))
		got := analyzer.TopLongestUnique(table, 4)

		wantOrder := []string{"extraordinary", "mountain", "parallel", "sea"}
		for i, w := range got {
			if w.Word != wantOrder[i] {
				t.Errorf("entry %d = %s, want %s", i, w.Word, wantOrder[i])
			}
		}
		if got[0].Length != 13 {
			t.Errorf("longest length = %d, want 13", got[0].Length)
		}
	})

	t.Run("FrequencyDoesNotWeighIn", func(t *testing.T) {
		// "tiny" repeats but "colossal" is longer; distinct tokens weigh once.
		table, _, _ := analyzer.Aggregate(analyzer.Tokens("tiny tiny tiny colossal"))
		got := analyzer.TopLongestUnique(table, 1)
		if len(got) != 1 || got[0].Word != "colossal" {
			t.Errorf("got %+v, want [colossal]", got)
		}
	})
}
