package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all geoshort settings. Field tags serve both viper
// (mapstructure) and config show/init (yaml).
type Config struct {
	Translate    TranslateConfig    `yaml:"translate" mapstructure:"translate"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	History      HistoryConfig      `yaml:"history" mapstructure:"history"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
}

// TranslateConfig controls the statement translator
type TranslateConfig struct {
	MaxDepth int `yaml:"max_depth" mapstructure:"max_depth"` // Nesting bound for proofs, conditions and casework
}

// ConcurrencyConfig controls worker counts
type ConcurrencyConfig struct {
	Workers      int `yaml:"workers" mapstructure:"workers"`             // Statement workers per document (1 = sequential)
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"` // Files translated in parallel by batch
}

// RateLimitingConfig throttles batch reads per source directory
type RateLimitingConfig struct {
	FilesPerSecond float64      `yaml:"files_per_second" mapstructure:"files_per_second"`
	BurstSize      int          `yaml:"burst_size" mapstructure:"burst_size"`
	Sources        []SourceRate `yaml:"sources" mapstructure:"sources"` // Per-directory overrides
}

// SourceRate overrides the read rate for one input directory
type SourceRate struct {
	Dir            string  `yaml:"dir" mapstructure:"dir"`
	FilesPerSecond float64 `yaml:"files_per_second" mapstructure:"files_per_second"` // 0 = unlimited
	Burst          int     `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig controls translation memoisation
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	TTL       time.Duration `yaml:"ttl" mapstructure:"ttl"`               // Disk entry lifetime
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"` // In-process entry lifetime
}

// HistoryConfig controls the SQLite translation history
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format        string `yaml:"format" mapstructure:"format"` // text, markdown, json, yaml, html
	Verbose       bool   `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool   `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	base := defaultBaseDir()

	return &Config{
		Translate: TranslateConfig{
			MaxDepth: 16,
		},
		Concurrency: ConcurrencyConfig{
			Workers:      1,
			BatchWorkers: 4,
		},
		RateLimiting: RateLimitingConfig{
			FilesPerSecond: 20,
			BurstSize:      5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       filepath.Join(base, "cache"),
			TTL:       7 * 24 * time.Hour,
			MemoryTTL: 30 * time.Minute,
		},
		History: HistoryConfig{
			Enabled: false,
			Path:    filepath.Join(base, "history.db"),
		},
		Output: OutputConfig{
			Format:        "text",
			IncludeFooter: true,
		},
	}
}

func defaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".geoshort"
	}
	return filepath.Join(home, ".geoshort")
}
