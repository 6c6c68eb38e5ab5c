package cli

import (
	"github.com/spf13/cobra"

	"github.com/yildizm/LogLens/internal/analyzer"
	"github.com/yildizm/LogLens/internal/ui"
)

var (
	groupTopN        int
	groupMinCount    int
	groupInteractive bool
)

func newGroupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group [file]",
		Short: "Group similar messages and show the top clusters",
		Long: `Collapse structurally similar lines into groups and rank them by count.

Timestamps are stripped and volatile fields (hex literals, UUIDs, file
paths, numbers) become placeholders before lines are compared, so lines
differing only in those fields land in the same group. Each group
reports its count, a sample line, and the first and last line numbers
where it occurred. Groups with equal counts keep first-seen order.

Examples:
  loglens group app.log
  loglens group --top 5 --min-count 2 app.log
  cat app.log | loglens group -o json
  loglens group --interactive app.log`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: runGroup,
	}

	cmd.Flags().IntVarP(&groupTopN, "top", "n", 0, "number of top groups to show")
	cmd.Flags().IntVar(&groupMinCount, "min-count", 0, "minimum group count to include")
	cmd.Flags().BoolVar(&groupInteractive, "interactive", false, "browse groups in an interactive terminal UI")
	addInputFlags(cmd)

	return cmd
}

func runGroup(cmd *cobra.Command, args []string) error {
	fileArg := ""
	if len(args) > 0 {
		fileArg = args[0]
	}

	cfg := GetGlobalConfig()
	opts := analyzer.GroupOptions{
		TopN:     cfg.Analysis.TopN,
		MinCount: cfg.Analysis.MinCount,
	}
	if cmd.Flags().Changed("top") {
		opts.TopN = groupTopN
	}
	if cmd.Flags().Changed("min-count") {
		opts.MinCount = groupMinCount
	}

	lines, err := readInput(cmd, fileArg)
	if err != nil {
		return err
	}

	groups := analyzer.GroupLines(lines, opts)

	// The TUI only makes sense for plain terminal output, and stdin
	// input would fight the TUI for the terminal
	if groupInteractive && getOutputFormat() == "text" && fileArg != "" && fileArg != "-" {
		return ui.Run(groups)
	}

	return writeReport(&analyzer.Report{
		Groups: &analyzer.GroupReport{Groups: groups},
	})
}
