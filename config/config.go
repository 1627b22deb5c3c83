// Package config loads optional report defaults from a YAML file. Every
// field has a working default, so running without a config file is the
// normal case.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ZephyrDeng/speech-analyzer-mcp/analyzer"
)

// Config holds report defaults and an extra stoplist for keyword
// extraction.
type Config struct {
	TopWords     int      `yaml:"top_words"`
	TopLongest   int      `yaml:"top_longest"`
	Keywords     int      `yaml:"keywords"`
	OutputFormat string   `yaml:"output_format"`
	Stopwords    []string `yaml:"stopwords"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		TopWords:     analyzer.DefaultTopWords,
		TopLongest:   analyzer.DefaultTopLongest,
		Keywords:     0, // keywords off unless asked for
		OutputFormat: analyzer.FormatText,
	}
}

// Load reads a YAML config from path. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.TopWords <= 0 {
		cfg.TopWords = analyzer.DefaultTopWords
	}
	if cfg.TopLongest <= 0 {
		cfg.TopLongest = analyzer.DefaultTopLongest
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = analyzer.FormatText
	}
	return cfg, nil
}

// LoadFromEnv loads the config named by envVar, or the defaults when the
// variable is unset.
func LoadFromEnv(envVar string) (*Config, error) {
	path := os.Getenv(envVar)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
