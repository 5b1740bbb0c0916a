package pipeline

import (
	"errors"

	"github.com/vk/almanacgo/internal/rangemap"
)

// DefaultStages is the almanac's fixed seed-to-location stage order.
var DefaultStages = []string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

// Observer receives a callback for every stage lookup and every finished
// seed. Implementations must be safe for concurrent use.
type Observer interface {
	ObserveLookup(stage string, matched bool)
	ObserveSeed()
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithObserver attaches an Observer to the pipeline.
func WithObserver(o Observer) Option {
	return func(p *Pipeline) {
		p.observer = o
	}
}

// Pipeline is an ordered composition of named range tables.
type Pipeline struct {
	stages   []string
	tables   map[string]*rangemap.Table
	observer Observer
}

// New builds a pipeline that traverses stages in the given order. The
// stage list and table map are copied; later changes by the caller have no
// effect. Missing tables are not rejected here; see Validate and Run.
func New(stages []string, tables map[string]*rangemap.Table, opts ...Option) *Pipeline {
	p := &Pipeline{
		stages: append([]string(nil), stages...),
		tables: make(map[string]*rangemap.Table, len(tables)),
	}
	for name, t := range tables {
		p.tables[name] = t
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stages returns a copy of the traversal order.
func (p *Pipeline) Stages() []string {
	return append([]string(nil), p.stages...)
}

// Validate reports every stage in the order that has no table, joined into
// a single error. It returns nil for a complete pipeline.
func (p *Pipeline) Validate() error {
	var errs []error
	for _, stage := range p.stages {
		if _, ok := p.tables[stage]; !ok {
			errs = append(errs, &MissingStageError{Stage: stage})
		}
	}
	return errors.Join(errs...)
}

// Run threads seed through every stage in order and returns the final
// value. It fails with *MissingStageError on the first stage without a
// table, whatever the seed.
func (p *Pipeline) Run(seed uint64) (uint64, error) {
	current := seed
	for _, stage := range p.stages {
		table, ok := p.tables[stage]
		if !ok {
			return 0, &MissingStageError{Stage: stage}
		}
		next, matched := table.Match(current)
		if p.observer != nil {
			p.observer.ObserveLookup(stage, matched)
		}
		current = next
	}
	if p.observer != nil {
		p.observer.ObserveSeed()
	}
	return current, nil
}

// RunAll runs every seed and returns the final values in input order. It
// stops at the first failure and returns no partial results.
func (p *Pipeline) RunAll(seeds []uint64) ([]uint64, error) {
	out := make([]uint64, len(seeds))
	for i, seed := range seeds {
		v, err := p.Run(seed)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// MinimumFinalValue returns the smallest final value over seeds. An empty
// seed list fails with ErrEmptyInput; a missing stage propagates as
// *MissingStageError.
func (p *Pipeline) MinimumFinalValue(seeds []uint64) (uint64, error) {
	if len(seeds) == 0 {
		return 0, ErrEmptyInput
	}
	values, err := p.RunAll(seeds)
	if err != nil {
		return 0, err
	}
	return Minimum(values)
}

// Minimum returns the smallest of values, or ErrEmptyInput.
func Minimum(values []uint64) (uint64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	low := values[0]
	for _, v := range values[1:] {
		low = min(low, v)
	}
	return low, nil
}
