// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// HistoryPath points at the SQLite file backing the evaluation history.
	HistoryPath string `koanf:"history_path"`

	// MaxListLimit caps GET /evaluations?limit.
	MaxListLimit int `koanf:"max_list_limit"`

	// Thresholds overrides per-indicator grading cuts, keyed by indicator
	// key. Each entry carries exactly four cut points, best grade first.
	Thresholds map[string][]float64 `koanf:"thresholds"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":8080",
		HistoryPath:  "equiscore.db",
		MaxListLimit: 100,
	}
}
