package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/almanacgo/internal/app"
	"github.com/vk/almanacgo/internal/report"
	"github.com/vk/almanacgo/internal/source"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("almanac", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Almanac - Threads seeds through ordered range-mapping stages and reports the
lowest final location.

Usage:
  almanac [options] [INPUT ...]

Arguments:
  INPUT
    "-" for standard input (default), a .txt or .hcl almanac file, a
    directory of almanac files, or an s3://bucket/key URI.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Almanac input (file, directory, s3:// URI or '-').")
	iFlag := flagSet.String("i", "", "Almanac input (shorthand).")
	formatFlag := flagSet.String("format", report.FormatText, fmt.Sprintf("Report format. Options: %s.", strings.Join(report.Formats(), ", ")))
	stagesFlag := flagSet.String("stages", "", "Comma-separated stage order overriding the almanac's own.")
	workersFlag := flagSet.Int("workers", 1, "Number of concurrent workers computing seed locations.")
	traceFlag := flagSet.Bool("trace", false, "Report every seed's value after each stage.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check and metrics server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var inputs []string
	switch {
	case *inputFlag != "":
		inputs = append(inputs, *inputFlag)
	case *iFlag != "":
		inputs = append(inputs, *iFlag)
	}
	inputs = append(inputs, flagSet.Args()...)
	if len(inputs) == 0 {
		inputs = []string{source.Stdin}
	}
	slog.Debug("Inputs determined.", "inputs", inputs)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Inputs:          inputs,
		Format:          strings.ToLower(*formatFlag),
		Stages:          splitStages(*stagesFlag),
		Trace:           *traceFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		WorkerCount:     *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitStages turns "a, b,c" into [a b c]. An empty flag yields nil.
func splitStages(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
