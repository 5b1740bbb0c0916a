package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/almanacgo/internal/ctxlog"
	"github.com/vk/almanacgo/internal/pipeline"
	"github.com/vk/almanacgo/internal/report"
	"github.com/vk/almanacgo/internal/source"
)

// Run executes the main application logic: every configured input is
// expanded, loaded, run through its pipeline and reported in turn. The
// first failing source stops the run.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
		defer func() {
			err = errors.Join(err, a.closeHealthcheckServer(ctx))
		}()
	}

	var refs []string
	for _, in := range a.config.Inputs {
		expanded, err := source.Expand(in)
		if err != nil {
			return err
		}
		refs = append(refs, expanded...)
	}
	a.logger.Debug("Inputs expanded.", "sources", refs)

	a.logger.Info("🚀 Processing almanacs...", "sources", len(refs), "workers", a.config.WorkerCount)
	for _, ref := range refs {
		err := a.runSource(ctx, ref, len(refs) > 1)
		a.metrics.ObserveSource(err)
		if err != nil {
			return err
		}
	}
	a.logger.Info("🏁 Processing finished.", "sources", len(refs))

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runSource handles one almanac reference end to end.
func (a *App) runSource(ctx context.Context, ref string, showSource bool) error {
	logger := ctxlog.FromContext(ctx).With("source", ref)
	ctx = ctxlog.WithLogger(ctx, logger)

	format := source.DetectFormat(ref)
	loader, ok := a.loaders[format]
	if !ok {
		return fmt.Errorf("no loader registered for %s format (%s)", format, ref)
	}

	rc, err := a.opener.Open(ctx, ref)
	if err != nil {
		return err
	}
	defer rc.Close()

	model, err := loader.Load(ctx, ref, rc)
	if err != nil {
		return err
	}
	logger.Debug("Almanac loaded.", "format", format, "seeds", len(model.Seeds), "stages", model.Order)

	if len(model.Seeds) == 0 {
		logger.Warn("Almanac declares no seeds.")
		return fmt.Errorf("almanac %s: %w", ref, pipeline.ErrEmptyInput)
	}

	p, err := model.Pipeline(a.config.Stages, pipeline.WithObserver(a.metrics))
	if err != nil {
		return fmt.Errorf("almanac %s: %w", ref, err)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("almanac %s: %w", ref, err)
	}
	logger.Debug("Pipeline assembled.", "stages", p.Stages())

	start := time.Now()
	locations, err := p.RunAllConcurrent(ctx, model.Seeds, a.config.WorkerCount)
	a.metrics.ObserveRun(time.Since(start))
	if err != nil {
		return fmt.Errorf("almanac %s: %w", ref, err)
	}

	minimum, err := pipeline.Minimum(locations)
	if err != nil {
		return fmt.Errorf("almanac %s: %w", ref, err)
	}
	logger.Debug("Minimum computed.", "minimum", minimum, "duration", time.Since(start))

	result := report.Result{
		Source:     ref,
		ShowSource: showSource,
		Seeds:      model.Seeds,
		Locations:  locations,
		Minimum:    minimum,
	}
	if a.config.Trace {
		result.Traces, err = a.traceSeeds(ctx, p, model.Seeds)
		if err != nil {
			return fmt.Errorf("almanac %s: %w", ref, err)
		}
	}

	return report.Write(a.config.Format, a.outW, result)
}

// traceSeeds records every seed's path and logs each step at debug level.
func (a *App) traceSeeds(ctx context.Context, p *pipeline.Pipeline, seeds []uint64) ([]pipeline.Trace, error) {
	logger := ctxlog.FromContext(ctx)
	traces := make([]pipeline.Trace, 0, len(seeds))
	for _, seed := range seeds {
		tr, err := p.Trace(seed)
		if err != nil {
			return nil, err
		}
		for _, step := range tr.Steps {
			logger.Debug("Stage step.", "seed", seed, "stage", step.Stage, "in", step.In, "out", step.Out, "matched", step.Matched)
		}
		traces = append(traces, tr)
	}
	return traces, nil
}
