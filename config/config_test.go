package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZephyrDeng/speech-analyzer-mcp/analyzer"
	"github.com/ZephyrDeng/speech-analyzer-mcp/config"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speechstat.yaml")
	content := []byte("top_words: 5\nstopwords:\n  - applause\n  - laughter\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TopWords != 5 {
		t.Errorf("TopWords = %d, want 5", cfg.TopWords)
	}
	// Unset fields keep their defaults.
	if cfg.TopLongest != analyzer.DefaultTopLongest {
		t.Errorf("TopLongest = %d, want default %d", cfg.TopLongest, analyzer.DefaultTopLongest)
	}
	if cfg.OutputFormat != analyzer.FormatText {
		t.Errorf("OutputFormat = %q, want %q", cfg.OutputFormat, analyzer.FormatText)
	}
	if len(cfg.Stopwords) != 2 || cfg.Stopwords[0] != "applause" {
		t.Errorf("Stopwords = %v", cfg.Stopwords)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SPEECHSTAT_TEST_CONFIG", "")
	cfg, err := config.LoadFromEnv("SPEECHSTAT_TEST_CONFIG")
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	if cfg.TopWords != analyzer.DefaultTopWords {
		t.Errorf("TopWords = %d, want default %d", cfg.TopWords, analyzer.DefaultTopWords)
	}
}
