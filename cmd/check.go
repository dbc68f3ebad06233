package cmd

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eykd/dircompat-go/internal/config"
	"github.com/eykd/dircompat-go/internal/domain"
	"github.com/eykd/dircompat-go/internal/logging"
	"github.com/eykd/dircompat-go/internal/report"
	"github.com/eykd/dircompat-go/internal/walker"
)

// CheckRequest describes one compatibility check.
type CheckRequest struct {
	Directory   string
	Filesystems []domain.Filesystem
	Exclude     []string
	Logger      logrus.FieldLogger
}

// CheckResult holds the outcome of a check run.
type CheckResult struct {
	Directory   string
	Filesystems []domain.Filesystem
	Walk        *walker.Result
}

// Checker defines the interface for running compatibility checks.
type Checker interface {
	Check(ctx context.Context, req CheckRequest) (*CheckResult, error)
}

// checkOptions holds the root command's flag values.
type checkOptions struct {
	directory   string
	filesystems []string
	exclude     []string
	absolute    bool
	jsonOutput  bool
	reportPath  string
	strict      bool
	configPath  string
}

// resolveRequest merges flags with the config file into a CheckRequest.
// Flags win over config values; exclude patterns from both are combined.
func resolveRequest(cmd *cobra.Command, opts *checkOptions, g *globalOptions) (CheckRequest, error) {
	cfg, err := config.LoadOptional(opts.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return CheckRequest{}, &ContextError{Op: "loading config", Err: err}
	}

	level, format := g.logLevel, g.logFormat
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	if !cmd.Flags().Changed("log-format") && cfg.LogFormat != "" {
		format = cfg.LogFormat
	}
	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: level, Format: format, Verbose: g.verbose})
	if err != nil {
		return CheckRequest{}, err
	}

	names := opts.filesystems
	if !cmd.Flags().Changed("filesystems") && len(cfg.Filesystems) > 0 {
		names = cfg.Filesystems
	}
	fss, err := parseFilesystemFlag(names)
	if err != nil {
		return CheckRequest{}, err
	}

	dir := opts.directory
	absolute := opts.absolute
	if !cmd.Flags().Changed("absolute") {
		absolute = cfg.Absolute
	}
	if absolute {
		if dir, err = filepath.Abs(dir); err != nil {
			return CheckRequest{}, &ContextError{Op: "resolving directory", Path: opts.directory, Err: err}
		}
	}

	return CheckRequest{
		Directory:   dir,
		Filesystems: fss,
		Exclude:     append(append([]string{}, cfg.Exclude...), opts.exclude...),
		Logger:      logger,
	}, nil
}

// parseFilesystemFlag parses requested filesystems, defaulting to all of them.
func parseFilesystemFlag(names []string) ([]domain.Filesystem, error) {
	if len(names) == 0 {
		return domain.AllFilesystems(), nil
	}
	return domain.ParseFilesystems(names)
}

// runCheckAndReport runs the checker and formats the result as JSON or
// human-readable text, optionally saving a report file.
func runCheckAndReport(cmd *cobra.Command, checker Checker, opts *checkOptions, g *globalOptions) error {
	req, err := resolveRequest(cmd, opts, g)
	if err != nil {
		return err
	}

	res, err := checker.Check(cmd.Context(), req)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		formatCheckJSON(cmd.OutOrStdout(), res)
	} else {
		newPrinter(cmd.OutOrStdout(), g.noColor).formatCheckHuman(res)
	}

	if opts.reportPath != "" {
		doc := report.New(res.Directory, res.Filesystems, res.Walk)
		if err := report.Write(cmd.Context(), opts.reportPath, doc); err != nil {
			return err
		}
	}

	if opts.strict && len(res.Walk.Violations) > 0 {
		return &ViolationsFoundError{Count: len(res.Walk.Violations)}
	}
	return nil
}
