// Package cmd contains the CLI commands for the dircompat application.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eykd/dircompat-go/internal/config"
	"github.com/eykd/dircompat-go/internal/logging"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = NewRootCmd(NewWalkChecker())
}

// globalOptions holds persistent flags shared by every subcommand.
type globalOptions struct {
	verbose   bool
	logLevel  string
	logFormat string
	noColor   bool
}

// NewRootCmd creates a new root command instance that checks directories
// with the given checker. This is useful for testing to get a fresh
// command tree.
func NewRootCmd(checker Checker) *cobra.Command {
	g := &globalOptions{}
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "dircompat",
		Short: "Check a directory tree for filename compatibility with other filesystems",
		Long: "dircompat walks a directory and reports names and paths that would be illegal on\n" +
			"NTFS, exFAT, ext4 or encrypted ext4. Symbolic links are ignored. Nothing is modified.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckAndReport(cmd, checker, opts, g)
		},
	}

	// Add persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", logging.DefaultLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", logging.FormatText, "Log format (text, json)")
	cmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable coloured output")

	cmd.Flags().StringVarP(&opts.directory, "directory", "d", "", "Directory to check for compatibility")
	cmd.Flags().StringSliceVarP(&opts.filesystems, "filesystems", "f", nil,
		"Filesystems to check compatibility with (ntfs, exfat, ext4, encrypted-ext4); default all")
	cmd.Flags().StringArrayVar(&opts.exclude, "exclude", nil, "Glob pattern of entries to skip (repeatable)")
	cmd.Flags().BoolVar(&opts.absolute, "absolute", false, "Measure path lengths against the absolute path")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "Also write a JSON report to this file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with status 2 when issues are found")
	cmd.Flags().StringVar(&opts.configPath, "config", config.FileName, "Config file")
	_ = cmd.MarkFlagRequired("directory")

	cmd.AddCommand(NewRulesCmd())

	return cmd
}

// Execute runs the root command and returns any error.
// Deprecated: Use ExecuteContext instead for proper signal handling.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
