package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yildizm/LogLens/internal/formatter"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <count|summary|group|stats>",
		Short: "Print the JSON Schema for a mode's JSON output",
		Long: `Print the JSON Schema (draft-07) describing the JSON output of the
given analysis mode. Useful for validating output in automation.

Examples:
  loglens schema group
  loglens group app.log -o json | check-against "$(loglens schema group)"`,
		Args:      usageArgs(cobra.ExactArgs(1)),
		ValidArgs: []string{"count", "summary", "group", "stats"},
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := formatter.SchemaFor(args[0])
			if err != nil {
				return usageErrorf("%w", err)
			}
			fmt.Print(string(schema))
			return nil
		},
	}
}
