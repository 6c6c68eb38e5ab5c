package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/LogLens/internal/analyzer"
	"github.com/yildizm/LogLens/internal/source"
)

var (
	watchTopN     int
	watchDebounce time.Duration
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Watch a log file and re-analyze on changes",
		Long: `Monitor a log file and re-run the grouping analysis whenever it changes.

Uses file system notifications to detect writes. Each refresh re-reads
the whole file, recomputes statistics and the top message groups, and
renders a summary. Writes arriving in a burst are debounced into a
single refresh. Press Ctrl+C to stop watching.

Examples:
  loglens watch app.log
  loglens watch --top 10 --debounce 2s app.log`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: runWatch,
	}

	cmd.Flags().IntVarP(&watchTopN, "top", "n", 0, "number of top groups per refresh")
	cmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "delay between a change and the re-analysis")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	cfg := GetGlobalConfig()
	topN := cfg.Watch.TopN
	if cmd.Flags().Changed("top") {
		topN = watchTopN
	}
	debounce := cfg.Watch.Debounce
	if cmd.Flags().Changed("debounce") {
		debounce = watchDebounce
	}

	if err := validateWatchFilePath(filename); err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}

	watcher, err := createWatcher(filename)
	if err != nil {
		return err
	}
	defer cleanupWatcher(watcher)

	log.Info("watching file: %s", filename)

	// Initial snapshot before the first change arrives
	if err := refreshWatch(filename, topN); err != nil {
		return err
	}

	return runWatchLoop(watcher, filename, topN, debounce)
}

// runWatchLoop waits for write events and re-analyzes after the
// debounce interval, until interrupted.
func runWatchLoop(watcher *fsnotify.Watcher, filename string, topN int, debounce time.Duration) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	// The timer starts stopped; a write event arms it
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-signals:
			log.Info("received interrupt signal, stopping")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				timer.Reset(debounce)
			}

		case <-timer.C:
			if err := refreshWatch(filename, topN); err != nil {
				log.Warn("refresh failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Warn("watcher error: %v", err)
		}
	}
}

// refreshWatch runs a full grouping pass over the file and renders
// the summary. Output follows a completed pass, never a partial one.
func refreshWatch(filename string, topN int) error {
	file, err := os.Open(filename) // #nosec G304 - path validated at startup
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer cleanupFile(file)

	cfg := GetGlobalConfig()
	lines, err := source.ReadAll(file, source.ReadOptions{
		MaxLines:    cfg.Analysis.MaxLines,
		MaxLineSize: cfg.Analysis.MaxLineLength,
	})
	if err != nil {
		return err
	}

	stats := analyzer.ComputeStats(lines)
	groups := analyzer.GroupLines(lines, analyzer.GroupOptions{TopN: topN, MinCount: 1})

	fmt.Print(renderWatchSummary(filename, stats, groups))
	return nil
}

// renderWatchSummary renders one refresh as a tree view
func renderWatchSummary(filename string, stats *analyzer.StatsReport, groups []analyzer.Group) string {
	opts := termfmt.DefaultOptions()
	opts.Color = !noColor
	opts.Emoji = !noEmoji

	var b strings.Builder

	symbol := termfmt.GetEmoji("statistics", opts)
	fmt.Fprintf(&b, "%s %s at %s\n", symbol, filename, time.Now().Format("15:04:05"))

	items := []termfmt.TreeItem{
		{Label: "Total Lines", Value: fmt.Sprintf("%d", stats.TotalLines)},
		{Label: "Non-Empty", Value: fmt.Sprintf("%d", stats.NonEmptyLines)},
		{Label: "Unique", Value: fmt.Sprintf("%d", stats.UniqueLines)},
		{Label: "Top Groups", Value: fmt.Sprintf("%d", len(groups)), Last: true},
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, opts))
	b.WriteString("\n")

	for i, group := range groups {
		connector := "├─"
		if i == len(groups)-1 {
			connector = "└─"
		}
		fmt.Fprintf(&b, "%s %dx | lines %d-%d | %s\n", connector, group.Count, group.FirstLine, group.LastLine, group.Sample)
	}
	b.WriteString("\n")

	return b.String()
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil {
		log.Warn("failed to close watcher: %v", err)
	}
}

// cleanupFile safely closes file with error logging
func cleanupFile(file *os.File) {
	if err := file.Close(); err != nil {
		log.Warn("failed to close file: %v", err)
	}
}

// createWatcher creates and configures a new file system watcher
func createWatcher(filename string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filename); err != nil {
		cleanupWatcher(watcher)
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	return watcher, nil
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
