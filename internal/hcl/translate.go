package hcl

import (
	"context"
	"fmt"

	"github.com/vk/almanacgo/internal/config"
	"github.com/vk/almanacgo/internal/rangemap"
	"github.com/vk/almanacgo/internal/schema"
)

// translateFile converts the HCL-specific file schema into the agnostic model.
func (l *Loader) translateFile(ctx context.Context, f *schema.File) (*config.Model, error) {
	model := config.NewModel()

	seeds, err := l.converter.ToUint64List(ctx, f.Seeds)
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}
	model.Seeds = seeds

	if len(f.StageOrder) > 0 {
		seen := make(map[string]struct{}, len(f.StageOrder))
		for _, name := range f.StageOrder {
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("stage_order lists %q more than once", name)
			}
			seen[name] = struct{}{}
		}
		model.StageOrder = append([]string(nil), f.StageOrder...)
	}

	for _, s := range f.Stages {
		if _, dup := model.Stages[s.Name]; dup {
			return nil, fmt.Errorf("duplicate stage %q", s.Name)
		}
		rules, err := l.translateStage(ctx, s)
		if err != nil {
			return nil, err
		}
		model.AddStage(s.Name, rules)
	}
	return model, nil
}

// translateStage converts one stage block's rules, keeping their order.
func (l *Loader) translateStage(ctx context.Context, s *schema.Stage) ([]rangemap.Rule, error) {
	rules := make([]rangemap.Rule, 0, len(s.Rules))
	for i, r := range s.Rules {
		dst, err := l.converter.ToUint64(ctx, r.Destination)
		if err != nil {
			return nil, fmt.Errorf("stage %q rule %d destination: %w", s.Name, i, err)
		}
		src, err := l.converter.ToUint64(ctx, r.Source)
		if err != nil {
			return nil, fmt.Errorf("stage %q rule %d source: %w", s.Name, i, err)
		}
		length, err := l.converter.ToUint64(ctx, r.Length)
		if err != nil {
			return nil, fmt.Errorf("stage %q rule %d length: %w", s.Name, i, err)
		}
		rules = append(rules, rangemap.Rule{Destination: dst, Source: src, Length: length})
	}
	return rules, nil
}
