package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.loglens.yaml",               // Project-specific config (highest priority)
	"~/.config/loglens/config.yaml", // User config
	"/etc/loglens/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.loglens.yaml
// 4. ~/.config/loglens/config.yaml
// 5. /etc/loglens/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	// A custom path replaces the search entirely
	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load from standard paths in reverse priority order (lowest to highest)
		paths := make([]string, len(l.configPaths))
		copy(paths, l.configPaths)
		for i := len(paths)/2 - 1; i >= 0; i-- {
			opp := len(paths) - 1 - i
			paths[i], paths[opp] = paths[opp], paths[i]
		}

		for _, path := range paths {
			expandedPath := expandPath(path)
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					// Keep going: a broken low-priority file should not
					// block the rest of the chain
					fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() before reaching here
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Output Config
		"LOGLENS_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"LOGLENS_OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"LOGLENS_OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },

		// Analysis Config
		"LOGLENS_ANALYSIS_TOP_N":           func(v string) error { return parseInt(v, &config.Analysis.TopN) },
		"LOGLENS_ANALYSIS_MIN_COUNT":       func(v string) error { return parseInt(v, &config.Analysis.MinCount) },
		"LOGLENS_ANALYSIS_MAX_LINES":       func(v string) error { return parseInt(v, &config.Analysis.MaxLines) },
		"LOGLENS_ANALYSIS_MAX_LINE_LENGTH": func(v string) error { return parseInt(v, &config.Analysis.MaxLineLength) },
		"LOGLENS_ANALYSIS_INCLUDE_UNTIMESTAMPED": func(v string) error {
			return parseBool(v, &config.Analysis.IncludeUntimestamped)
		},

		// Watch Config
		"LOGLENS_WATCH_DEBOUNCE": func(v string) error { return parseDuration(v, &config.Watch.Debounce) },
		"LOGLENS_WATCH_TOP_N":    func(v string) error { return parseInt(v, &config.Watch.TopN) },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	// Level lists arrive as a comma-separated string
	if levels := os.Getenv("LOGLENS_ANALYSIS_LEVELS"); levels != "" {
		parts := strings.Split(levels, ",")
		parsed := make([]string, 0, len(parts))
		for _, part := range parts {
			if level := strings.TrimSpace(part); level != "" {
				parsed = append(parsed, level)
			}
		}
		config.Analysis.Levels = parsed
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	if src.Output.DefaultFormat != "" {
		dst.Output.DefaultFormat = src.Output.DefaultFormat
	}
	if src.Output.ColorMode != "" {
		dst.Output.ColorMode = src.Output.ColorMode
	}
	if src.Output.Verbose {
		dst.Output.Verbose = src.Output.Verbose
	}

	if src.Analysis.TopN != 0 {
		dst.Analysis.TopN = src.Analysis.TopN
	}
	if src.Analysis.MinCount != 0 {
		dst.Analysis.MinCount = src.Analysis.MinCount
	}
	if len(src.Analysis.Levels) > 0 {
		dst.Analysis.Levels = src.Analysis.Levels
	}
	if src.Analysis.MaxLines != 0 {
		dst.Analysis.MaxLines = src.Analysis.MaxLines
	}
	if src.Analysis.MaxLineLength != 0 {
		dst.Analysis.MaxLineLength = src.Analysis.MaxLineLength
	}
	if src.Analysis.IncludeUntimestamped {
		dst.Analysis.IncludeUntimestamped = src.Analysis.IncludeUntimestamped
	}

	if src.Watch.Debounce != 0 {
		dst.Watch.Debounce = src.Watch.Debounce
	}
	if src.Watch.TopN != 0 {
		dst.Watch.TopN = src.Watch.TopN
	}
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
