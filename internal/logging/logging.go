// Package logging configures the logrus logger used for diagnostics.
// Diagnostics go to stderr; results are printed by the cmd package.
package logging

import (
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultLevel keeps routine skips quiet unless asked for.
const DefaultLevel = "warn"

var formats = map[string]func() logrus.Formatter{
	FormatText: func() logrus.Formatter { return &logrus.TextFormatter{DisableTimestamp: true} },
	FormatJSON: func() logrus.Formatter { return new(logrus.JSONFormatter) },
}

func formatNames() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options selects the logger's level and format.
type Options struct {
	Level   string
	Format  string
	Verbose bool
}

// New builds a logger writing to out. Verbose forces debug level.
func New(out io.Writer, opts Options) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	levelString := opts.Level
	if levelString == "" {
		levelString = DefaultLevel
	}
	level, err := logrus.ParseLevel(levelString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	if opts.Verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	newFormatter, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("unknown log format %q, expected one of: %v", format, formatNames())
	}
	logger.SetFormatter(newFormatter())

	return logger, nil
}
