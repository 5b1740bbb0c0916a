package pipeline_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/almanacgo/internal/pipeline"
	"github.com/vk/almanacgo/internal/rangemap"
	"github.com/vk/almanacgo/internal/testutil"
)

func TestTrace_Seed79(t *testing.T) {
	tr, err := examplePipeline().Trace(79)
	require.NoError(t, err)

	want := pipeline.Trace{
		Seed: 79,
		Steps: []pipeline.StageStep{
			{Stage: "seed-to-soil", In: 79, Out: 81, Matched: true},
			{Stage: "soil-to-fertilizer", In: 81, Out: 81, Matched: false},
			{Stage: "fertilizer-to-water", In: 81, Out: 81, Matched: false},
			{Stage: "water-to-light", In: 81, Out: 74, Matched: true},
			{Stage: "light-to-temperature", In: 74, Out: 78, Matched: true},
			{Stage: "temperature-to-humidity", In: 78, Out: 78, Matched: false},
			{Stage: "humidity-to-location", In: 78, Out: 82, Matched: true},
		},
	}
	if diff := cmp.Diff(want, tr); diff != "" {
		t.Errorf("Trace(79) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, uint64(82), tr.Final())
}

func TestTrace_AgreesWithRun(t *testing.T) {
	p := examplePipeline()
	for _, seed := range []uint64{0, 13, 14, 55, 98, 99, 100} {
		tr, err := p.Trace(seed)
		require.NoError(t, err)
		got, err := p.Run(seed)
		require.NoError(t, err)
		assert.Equal(t, got, tr.Final(), "seed %d", seed)
	}
}

func TestTrace_NoStages(t *testing.T) {
	tr, err := pipeline.New(nil, nil).Trace(7)
	require.NoError(t, err)
	assert.Empty(t, tr.Steps)
	assert.Equal(t, uint64(7), tr.Final())
}

func TestTrace_MissingStage(t *testing.T) {
	p := pipeline.New([]string{"a", "b"}, map[string]*rangemap.Table{"a": rangemap.MustTable()})
	_, err := p.Trace(1)
	testutil.RequireMissingStage(t, err, "b")
}
