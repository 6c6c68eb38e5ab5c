package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yildizm/LogLens/internal/analyzer"
	"github.com/yildizm/LogLens/internal/formatter"
	"github.com/yildizm/LogLens/internal/source"
)

var (
	sinceFlag         string
	untilFlag         string
	withUntimestamped bool
)

// addInputFlags registers the time-window flags shared by the
// analysis commands.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sinceFlag, "since", "", "keep lines at or after this time (RFC 3339 or \"2006-01-02 15:04:05\")")
	cmd.Flags().StringVar(&untilFlag, "until", "", "keep lines at or before this time")
	cmd.Flags().BoolVar(&withUntimestamped, "with-untimestamped", false, "keep lines without a timestamp when --since/--until is active")
}

// buildWindow assembles the timestamp window from the flags. A bad
// time bound is a usage error.
func buildWindow(cmd *cobra.Command) (source.Window, error) {
	window := source.Window{
		IncludeUntimestamped: GetGlobalConfig().Analysis.IncludeUntimestamped,
	}
	if cmd.Flags().Changed("with-untimestamped") {
		window.IncludeUntimestamped = withUntimestamped
	}

	if sinceFlag != "" {
		t, err := source.ParseTime(sinceFlag)
		if err != nil {
			return window, usageErrorf("invalid --since: %w", err)
		}
		window.Since = &t
	}
	if untilFlag != "" {
		t, err := source.ParseTime(untilFlag)
		if err != nil {
			return window, usageErrorf("invalid --until: %w", err)
		}
		window.Until = &t
	}

	return window, nil
}

// setupInputReader opens the input file, or stdin when the argument
// is absent or "-".
func setupInputReader(name string) (reader io.Reader, cleanup func(), err error) {
	if name == "" || name == "-" {
		log.Debug("reading from stdin")
		return os.Stdin, nil, nil
	}

	if err := validateFilePath(name); err != nil {
		return nil, nil, fmt.Errorf("invalid file path: %w", err)
	}

	cleanPath := filepath.Clean(name)

	// #nosec G304 - path is validated above
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %s: %w", name, err)
	}

	cleanup = func() {
		if err := file.Close(); err != nil {
			log.Warn("failed to close file: %v", err)
		}
	}

	log.Debug("analyzing file: %s", cleanPath)

	return file, cleanup, nil
}

// readInput reads the full line stream for an analysis command and
// applies the timestamp window. fileArg is "" for stdin.
func readInput(cmd *cobra.Command, fileArg string) ([]source.Line, error) {
	window, err := buildWindow(cmd)
	if err != nil {
		return nil, err
	}

	reader, cleanup, err := setupInputReader(fileArg)
	if err != nil {
		return nil, err
	}
	if cleanup != nil {
		defer cleanup()
	}

	cfg := GetGlobalConfig()
	lines, err := source.ReadAll(reader, source.ReadOptions{
		MaxLines:    cfg.Analysis.MaxLines,
		MaxLineSize: cfg.Analysis.MaxLineLength,
	})
	if err != nil {
		return nil, err
	}
	log.Debug("read %d lines", len(lines))

	filtered := window.Filter(lines)
	if window.Active() {
		log.Debug("time window kept %d of %d lines", len(filtered), len(lines))
	}

	return filtered, nil
}

// writeReport renders the report with the selected output format and
// prints it to stdout.
func writeReport(report *analyzer.Report) error {
	f, err := formatter.New(getOutputFormat())
	if err != nil {
		return usageErrorf("%w", err)
	}

	output, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(string(output))
	return nil
}

func validateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return nil
}
