package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/framegraph/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("framegraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
framegraph - compiles render-graph declarations and replays them on a null backend.

Usage:
  framegraph [options] [GRAPH_PATH...]

Arguments:
  GRAPH_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	graphFlag := flagSet.String("graph", "", "Path to the graph file or directory.")
	gFlag := flagSet.String("g", "", "Path to the graph file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	noLifetimeFlag := flagSet.Bool("no-lifetime-analysis", false, "Skip lifetime analysis; every resource lives for the whole frame.")
	memoryFlag := flagSet.Bool("memory-schedule", false, "Place resources into aliased heaps.")
	noDebugPrintFlag := flagSet.Bool("no-debug-print", false, "Leave the diagnostic print phases out.")
	inspectFlag := flagSet.String("inspect-url", "", "socket.io URL of a schedule viewer. Empty disables publishing.")
	framesFlag := flagSet.Int("frames", 1, "Number of frames to update and record.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	for _, p := range []string{*graphFlag, *gFlag} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Graph paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No graph path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if *framesFlag < 1 {
		return nil, false, usageError("invalid frames: must be at least 1, got %d", *framesFlag)
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		GraphPaths:         paths,
		LogFormat:          logFormat,
		LogLevel:           logLevel,
		NoLifetimeAnalysis: *noLifetimeFlag,
		MemorySchedule:     *memoryFlag,
		NoDebugPrint:       *noDebugPrintFlag,
		InspectURL:         *inspectFlag,
		Frames:             *framesFlag,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
