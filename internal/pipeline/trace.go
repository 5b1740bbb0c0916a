package pipeline

// StageStep records what one stage did to a value.
type StageStep struct {
	Stage   string `json:"stage"`
	In      uint64 `json:"in"`
	Out     uint64 `json:"out"`
	Matched bool   `json:"matched"`
}

// Trace is the full path of one seed through the pipeline.
type Trace struct {
	Seed  uint64      `json:"seed"`
	Steps []StageStep `json:"steps"`
}

// Final returns the value after the last stage, or the seed itself for a
// pipeline with no stages.
func (t Trace) Final() uint64 {
	if len(t.Steps) == 0 {
		return t.Seed
	}
	return t.Steps[len(t.Steps)-1].Out
}

// Trace is Run that keeps every intermediate value. Its final value always
// equals Run(seed).
func (p *Pipeline) Trace(seed uint64) (Trace, error) {
	tr := Trace{Seed: seed, Steps: make([]StageStep, 0, len(p.stages))}
	current := seed
	for _, stage := range p.stages {
		table, ok := p.tables[stage]
		if !ok {
			return Trace{}, &MissingStageError{Stage: stage}
		}
		next, matched := table.Match(current)
		tr.Steps = append(tr.Steps, StageStep{Stage: stage, In: current, Out: next, Matched: matched})
		current = next
	}
	return tr, nil
}
