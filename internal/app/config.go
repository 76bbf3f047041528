package app

import "os"

// Config holds the runtime configuration for the CLI
type Config struct {
	// Directory holding one JSON file per topic
	TopicsDir string
	// Path of the SQLite file recording quiz history
	DatabasePath string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TopicsDir:    "topics",
		DatabasePath: "data/vocab.db",
	}
}

// ConfigFromEnv builds the configuration from environment variables,
// falling back to the defaults
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if dir := os.Getenv("VOCAB_TOPICS_DIR"); dir != "" {
		cfg.TopicsDir = dir
	}
	if path := os.Getenv("VOCAB_DB_PATH"); path != "" {
		cfg.DatabasePath = path
	}
	return cfg
}
