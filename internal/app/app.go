package app

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/vk/almanacgo/internal/almanac"
	"github.com/vk/almanacgo/internal/config"
	"github.com/vk/almanacgo/internal/hcl"
	"github.com/vk/almanacgo/internal/metrics"
	"github.com/vk/almanacgo/internal/source"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	stdin   io.Reader
	opener  *source.Opener
	loaders map[source.Format]config.Loader
	metrics *metrics.Recorder

	httpServer *http.Server
}

// Option customises an App at construction time.
type Option func(*App)

// WithStdin sets the reader used for the "-" input. Defaults to os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(a *App) {
		a.stdin = r
	}
}

// WithOpener replaces the source opener, e.g. to inject an S3 client.
func WithOpener(o *source.Opener) Option {
	return func(a *App) {
		a.opener = o
	}
}

// WithLoader registers loader for format, replacing the built-in one.
func WithLoader(format source.Format, loader config.Loader) Option {
	return func(a *App) {
		a.loaders[format] = loader
	}
}

// NewApp is the constructor for the main application. Reports go to outW,
// logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		stdin:  os.Stdin,
		loaders: map[source.Format]config.Loader{
			source.FormatText: almanac.NewLoader(),
			source.FormatHCL:  hcl.NewLoader(),
		},
		metrics: metrics.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.opener == nil {
		a.opener = source.NewOpener(a.stdin)
	}
	logger.Debug("App constructed.", "inputs", cfg.Inputs, "format", cfg.Format, "workers", cfg.WorkerCount)
	return a
}

// Metrics returns the application's metrics recorder. This is primarily for testing.
func (a *App) Metrics() *metrics.Recorder {
	return a.metrics
}
