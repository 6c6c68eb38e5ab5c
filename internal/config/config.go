package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Output   OutputConfig   `yaml:"output" json:"output"`
	Analysis AnalysisConfig `yaml:"analysis" json:"analysis"`
	Watch    WatchConfig    `yaml:"watch" json:"watch"`
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|table|json
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
}

// AnalysisConfig configures analysis behavior
type AnalysisConfig struct {
	TopN                 int      `yaml:"top_n" json:"top_n"`                                 // group result limit
	MinCount             int      `yaml:"min_count" json:"min_count"`                         // group membership filter
	Levels               []string `yaml:"levels" json:"levels"`                               // severity scan order
	MaxLines             int      `yaml:"max_lines" json:"max_lines"`                         // input line cap, 0 = unlimited
	MaxLineLength        int      `yaml:"max_line_length" json:"max_line_length"`             // per-line byte cap
	IncludeUntimestamped bool     `yaml:"include_untimestamped" json:"include_untimestamped"` // time-window policy
}

// WatchConfig configures watch mode
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" json:"debounce"` // delay between re-analyses
	TopN     int           `yaml:"top_n" json:"top_n"`       // groups shown per refresh
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
		Analysis: AnalysisConfig{
			TopN:                 10,
			MinCount:             1,
			Levels:               []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"},
			MaxLines:             0,
			MaxLineLength:        1024 * 1024, // 1MB
			IncludeUntimestamped: false,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
			TopN:     5,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return c.validateAnalysisConfig()
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"text":  true,
			"table": true,
			"json":  true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: text, table, json)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateAnalysisConfig validates analysis-related configuration
func (c *Config) validateAnalysisConfig() error {
	if c.Analysis.MinCount < 1 {
		return fmt.Errorf("min_count must be greater than 0")
	}
	if c.Analysis.MaxLines < 0 {
		return fmt.Errorf("max_lines must be non-negative")
	}
	if c.Analysis.MaxLineLength < 1 {
		return fmt.Errorf("max_line_length must be greater than 0")
	}
	for _, level := range c.Analysis.Levels {
		if strings.TrimSpace(level) == "" {
			return fmt.Errorf("levels must not contain empty entries")
		}
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must be non-negative")
	}
	return nil
}

// SampleConfig returns a full sample configuration file with comments
func SampleConfig() string {
	return `# LogLens configuration file
version: "1.0"

output:
  # Default output format: text, table, or json
  default_format: text
  # Color mode: auto, always, or never
  color_mode: auto
  # Enable verbose output by default
  verbose: false

analysis:
  # Number of top groups reported by the group command
  top_n: 10
  # Minimum occurrences for a group to appear in results
  min_count: 1
  # Severity levels scanned by the summary command, in scan order
  levels:
    - DEBUG
    - INFO
    - WARNING
    - ERROR
    - CRITICAL
  # Maximum input lines to read (0 = unlimited)
  max_lines: 0
  # Maximum length of a single line in bytes
  max_line_length: 1048576
  # Keep lines without a timestamp when --since/--until is active
  include_untimestamped: false

watch:
  # Delay between re-analyses after a file change
  debounce: 500ms
  # Groups shown per refresh in watch mode
  top_n: 5
`
}

// MinimalSampleConfig returns a compact sample configuration
func MinimalSampleConfig() string {
	return `# LogLens configuration file
version: "1.0"

output:
  default_format: text

analysis:
  top_n: 10
  min_count: 1
`
}
