package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yildizm/LogLens/internal/config"
	"github.com/yildizm/LogLens/internal/emoji"
	"github.com/yildizm/LogLens/internal/logger"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string

	globalConfig *config.Config

	log = logger.New("cli", isVerbose)
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loglens",
		Short: "Log Analysis Tool",
		Long: `LogLens analyzes a stream of log lines from a file or stdin.

It counts keyword or regex occurrences, tallies severity levels, groups
structurally similar messages into ranked clusters, and reports basic
corpus statistics. Results render as text, a table, or JSON, and the
process exit code reflects the outcome.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)

			loader := config.NewLoader()
			cfg, err := loader.LoadConfig(cfgFile)
			if err != nil {
				return usageErrorf("failed to load configuration: %w", err)
			}
			globalConfig = cfg

			// Config defaults apply only where flags were not given
			if !cmd.Flags().Changed("verbose") {
				verbose = cfg.Output.Verbose
			}
			if !cmd.Flags().Changed("output") {
				outputFmt = cfg.Output.DefaultFormat
			}
			if cfg.Output.ColorMode == "never" && !cmd.Flags().Changed("no-color") {
				noColor = true
			}

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format (text, table, json)")

	// Flag misuse is a usage error, exit 2
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})

	// Add subcommands
	rootCmd.AddCommand(newCountCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newGroupCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newSchemaCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			fmt.Printf("LogLens %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers
func isVerbose() bool {
	return verbose
}

func getOutputFormat() string {
	return outputFmt
}

// GetGlobalConfig returns the loaded configuration, falling back to
// defaults when a command runs before the root PersistentPreRunE.
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}
