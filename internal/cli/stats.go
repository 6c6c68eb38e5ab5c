package cli

import (
	"github.com/spf13/cobra"

	"github.com/yildizm/LogLens/internal/analyzer"
)

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show basic corpus statistics",
		Long: `Report line-level statistics for the input: total lines, empty lines
(whitespace only), non-empty lines, and unique lines.

Examples:
  loglens stats app.log
  cat app.log | loglens stats -o json`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: runStats,
	}

	addInputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	fileArg := ""
	if len(args) > 0 {
		fileArg = args[0]
	}

	lines, err := readInput(cmd, fileArg)
	if err != nil {
		return err
	}

	return writeReport(&analyzer.Report{
		Stats: analyzer.ComputeStats(lines),
	})
}
