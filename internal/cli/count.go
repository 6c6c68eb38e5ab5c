package cli

import (
	"github.com/spf13/cobra"

	"github.com/yildizm/LogLens/internal/analyzer"
)

var (
	countRegex      bool
	countIgnoreCase bool
	countWholeWord  bool
)

func newCountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <keyword> [file]",
		Short: "Count lines matching a keyword or regex",
		Long: `Count input lines containing a keyword or matching a regular expression.

A line with several matches counts once. If no file is specified, or the
file is '-', input is read from stdin.

The exit code is 0 when no line matched and 1 when at least one did, so
the command composes with shell conditionals and CI checks.

Examples:
  loglens count ERROR app.log
  loglens count --regex 'timeout|refused' app.log
  cat app.log | loglens count -i error
  loglens count ERROR --since "2026-02-17 00:00:00" app.log`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: runCount,
	}

	cmd.Flags().BoolVar(&countRegex, "regex", false, "treat the keyword as a regular expression")
	cmd.Flags().BoolVarP(&countIgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	cmd.Flags().BoolVar(&countWholeWord, "whole-word", false, "match whole words only")
	addInputFlags(cmd)

	return cmd
}

func runCount(cmd *cobra.Command, args []string) error {
	keyword := args[0]
	fileArg := ""
	if len(args) > 1 {
		fileArg = args[1]
	}

	// Pattern errors surface before any input is read
	re, err := analyzer.CompileKeyword(keyword, analyzer.KeywordOptions{
		Regex:      countRegex,
		IgnoreCase: countIgnoreCase,
		WholeWord:  countWholeWord,
	})
	if err != nil {
		return usageErrorf("%w", err)
	}

	lines, err := readInput(cmd, fileArg)
	if err != nil {
		return err
	}

	count := analyzer.CountMatches(lines, re)

	report := &analyzer.Report{
		Keyword: &analyzer.KeywordReport{Keyword: keyword, Count: count},
	}
	if err := writeReport(report); err != nil {
		return err
	}

	if count > 0 {
		return exitCode(ExitMatch)
	}
	return nil
}
