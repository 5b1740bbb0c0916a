package app

import (
	"errors"
	"fmt"

	"github.com/vk/almanacgo/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Inputs []string // "-", files, directories or s3:// URIs
	Format string   // report format
	Stages []string // stage order override; empty uses the almanac's own
	Trace  bool

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("at least one input is required")
	}
	for _, in := range cfg.Inputs {
		if in == "" {
			return nil, errors.New("input references cannot be empty")
		}
	}

	if cfg.Format == "" {
		cfg.Format = report.FormatText
	}
	if !report.Has(cfg.Format) {
		return nil, fmt.Errorf("unknown output format %q (available: %v)", cfg.Format, report.Formats())
	}

	seen := make(map[string]struct{}, len(cfg.Stages))
	for _, stage := range cfg.Stages {
		if stage == "" {
			return nil, errors.New("stage names cannot be empty")
		}
		if _, dup := seen[stage]; dup {
			return nil, fmt.Errorf("stage %q listed more than once", stage)
		}
		seen[stage] = struct{}{}
	}

	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("worker count must not be negative, got %d", cfg.WorkerCount)
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 1
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("healthcheck port %d is out of range", cfg.HealthcheckPort)
	}

	return &cfg, nil
}
