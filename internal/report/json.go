package report

import (
	"encoding/json"
	"io"

	"github.com/vk/almanacgo/internal/pipeline"
)

// FormatJSON writes one JSON object per source.
const FormatJSON = "json"

func init() { Register(FormatJSON, writeJSON) }

type jsonResult struct {
	Source    string           `json:"source"`
	Seeds     []uint64         `json:"seeds"`
	Locations []uint64         `json:"locations"`
	Minimum   uint64           `json:"minimum"`
	Traces    []pipeline.Trace `json:"traces,omitempty"`
}

func writeJSON(w io.Writer, r Result) error {
	return json.NewEncoder(w).Encode(jsonResult{
		Source:    r.Source,
		Seeds:     nonNil(r.Seeds),
		Locations: nonNil(r.Locations),
		Minimum:   r.Minimum,
		Traces:    r.Traces,
	})
}

func nonNil(v []uint64) []uint64 {
	if v == nil {
		return []uint64{}
	}
	return v
}
