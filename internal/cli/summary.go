package cli

import (
	"github.com/spf13/cobra"

	"github.com/yildizm/LogLens/internal/analyzer"
)

var (
	summaryLevels    string
	summaryExitCodes string
)

func newSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Tally lines per severity level",
		Long: `Count input lines per severity level.

Each line counts toward the first level it matches as a whole word, in
scan order. All configured levels appear in the output, including those
with zero matches.

The exit code is the highest mapped code among levels seen at least
once (default mapping: ERROR=1,CRITICAL=1), or 0 when none apply.

Examples:
  loglens summary app.log
  loglens summary --levels "WARN,ERROR,FATAL" app.log
  loglens summary --exit-codes "ERROR=2,CRITICAL=3" app.log`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: runSummary,
	}

	cmd.Flags().StringVar(&summaryLevels, "levels", "", "comma-separated severity levels, in scan order")
	cmd.Flags().StringVar(&summaryExitCodes, "exit-codes", "", "comma-separated LEVEL=CODE exit code mapping")
	addInputFlags(cmd)

	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	fileArg := ""
	if len(args) > 0 {
		fileArg = args[0]
	}

	levels := GetGlobalConfig().Analysis.Levels
	if summaryLevels != "" {
		parsed, err := analyzer.ParseLevels(summaryLevels)
		if err != nil {
			return usageErrorf("invalid levels: %w", err)
		}
		levels = parsed
	}

	codes := analyzer.DefaultExitCodes
	if summaryExitCodes != "" {
		parsed, err := analyzer.ParseExitCodes(summaryExitCodes)
		if err != nil {
			return usageErrorf("invalid exit codes: %w", err)
		}
		codes = parsed
	}

	lines, err := readInput(cmd, fileArg)
	if err != nil {
		return err
	}

	severity := analyzer.Summarize(lines, levels)

	if err := writeReport(&analyzer.Report{Severity: severity}); err != nil {
		return err
	}

	return exitCode(severity.ExitCode(codes))
}
