package config

import (
	"fmt"

	"github.com/vk/almanacgo/internal/pipeline"
	"github.com/vk/almanacgo/internal/rangemap"
)

// Model is the unified, format-agnostic representation of one almanac.
type Model struct {
	// Seeds are the input scalars in declaration order.
	Seeds []uint64
	// Stages maps a stage name to its rules in declaration order.
	Stages map[string][]rangemap.Rule
	// Order lists stage names in the order they appeared in the input.
	Order []string
	// StageOrder is an explicit traversal order carried by the input
	// itself. Empty means the caller decides.
	StageOrder []string
}

// NewModel returns an empty model ready to be populated by a loader.
func NewModel() *Model {
	return &Model{Stages: make(map[string][]rangemap.Rule)}
}

// AddStage records rules under name. A repeated name replaces the earlier
// rules but keeps its first position in Order.
func (m *Model) AddStage(name string, rules []rangemap.Rule) {
	if _, seen := m.Stages[name]; !seen {
		m.Order = append(m.Order, name)
	}
	m.Stages[name] = rules
}

// Tables builds a validated range table for every stage in the model.
func (m *Model) Tables() (map[string]*rangemap.Table, error) {
	tables := make(map[string]*rangemap.Table, len(m.Stages))
	for _, name := range m.Order {
		t, err := rangemap.NewTable(m.Stages[name]...)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", name, err)
		}
		tables[name] = t
	}
	return tables, nil
}

// ResolveStageOrder picks the traversal order: an explicit override wins,
// then the model's own StageOrder, then pipeline.DefaultStages.
func (m *Model) ResolveStageOrder(override []string) []string {
	switch {
	case len(override) > 0:
		return override
	case len(m.StageOrder) > 0:
		return m.StageOrder
	default:
		return pipeline.DefaultStages
	}
}

// Pipeline builds the tables and assembles them in the resolved stage
// order. It does not check for missing stages; call Validate on the result.
func (m *Model) Pipeline(override []string, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	tables, err := m.Tables()
	if err != nil {
		return nil, err
	}
	return pipeline.New(m.ResolveStageOrder(override), tables, opts...), nil
}
