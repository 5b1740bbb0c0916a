package pipeline_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/almanacgo/internal/pipeline"
	"github.com/vk/almanacgo/internal/rangemap"
	"github.com/vk/almanacgo/internal/testutil"
)

func examplePipeline(opts ...pipeline.Option) *pipeline.Pipeline {
	return pipeline.New(pipeline.DefaultStages, testutil.ExampleTables(), opts...)
}

func TestRunAll_WorkedExample(t *testing.T) {
	p := examplePipeline()

	got, err := p.RunAll(testutil.ExampleSeeds)
	require.NoError(t, err)
	assert.Equal(t, testutil.ExampleLocations, got)

	low, err := p.MinimumFinalValue(testutil.ExampleSeeds)
	require.NoError(t, err)
	assert.Equal(t, testutil.ExampleMinimum, low)
}

func TestRun_IsDeterministic(t *testing.T) {
	p := examplePipeline()

	for _, seed := range []uint64{0, 13, 79, 1 << 40} {
		first, err := p.Run(seed)
		require.NoError(t, err)
		second, err := p.Run(seed)
		require.NoError(t, err)
		assert.Equal(t, first, second, "seed %d", seed)
	}
}

func TestRun_SingleEmptyStageIsIdentity(t *testing.T) {
	p := pipeline.New([]string{"only"}, map[string]*rangemap.Table{"only": rangemap.MustTable()})

	seeds := []uint64{0, 1, 79, 1 << 63}
	got, err := p.RunAll(seeds)
	require.NoError(t, err)
	assert.Equal(t, seeds, got)
}

func TestRun_Boundaries(t *testing.T) {
	p := pipeline.New([]string{"a"}, map[string]*rangemap.Table{
		"a": rangemap.MustTable(rangemap.Rule{Destination: 1000, Source: 20, Length: 5}),
	})

	got, err := p.Run(20)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), got, "lower edge maps to destination start")

	got, err = p.Run(25)
	require.NoError(t, err)
	assert.Equal(t, uint64(25), got, "upper edge is exclusive")
}

func TestRun_StageOrderIsRespected(t *testing.T) {
	tables := map[string]*rangemap.Table{
		"double": rangemap.MustTable(rangemap.Rule{Destination: 10, Source: 5, Length: 1}),
		"shift":  rangemap.MustTable(rangemap.Rule{Destination: 6, Source: 5, Length: 1}),
	}

	forward, err := pipeline.New([]string{"double", "shift"}, tables).Run(5)
	require.NoError(t, err)
	backward, err := pipeline.New([]string{"shift", "double"}, tables).Run(5)
	require.NoError(t, err)

	assert.Equal(t, uint64(10), forward)
	assert.Equal(t, uint64(6), backward)
}

func TestRun_MissingStage(t *testing.T) {
	tables := testutil.ExampleTables()
	delete(tables, "water-to-light")
	p := pipeline.New(pipeline.DefaultStages, tables)

	for _, seed := range []uint64{0, 79, 1 << 50} {
		_, err := p.Run(seed)
		testutil.RequireMissingStage(t, err, "water-to-light")
	}
	_, err := p.Run(0)
	assert.EqualError(t, err, "missing water-to-light map")
}

func TestRunAll_FailsFastWithoutPartialResults(t *testing.T) {
	p := pipeline.New([]string{"present", "absent"}, map[string]*rangemap.Table{
		"present": rangemap.MustTable(),
	})

	got, err := p.RunAll([]uint64{1, 2, 3})
	testutil.RequireMissingStage(t, err, "absent")
	assert.Nil(t, got)
}

func TestRunAll_EmptySeedsIsNotAnError(t *testing.T) {
	got, err := examplePipeline().RunAll(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMinimumFinalValue_EmptyInput(t *testing.T) {
	low, err := examplePipeline().MinimumFinalValue(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pipeline.ErrEmptyInput))
	assert.Zero(t, low)

	_, err = examplePipeline().MinimumFinalValue([]uint64{})
	assert.ErrorIs(t, err, pipeline.ErrEmptyInput)
}

func TestMinimumFinalValue_EmptyInputBeatsMissingStage(t *testing.T) {
	p := pipeline.New([]string{"absent"}, nil)

	_, err := p.MinimumFinalValue(nil)
	assert.ErrorIs(t, err, pipeline.ErrEmptyInput)

	_, err = p.MinimumFinalValue([]uint64{4})
	testutil.RequireMissingStage(t, err, "absent")
}

func TestMinimum(t *testing.T) {
	low, err := pipeline.Minimum([]uint64{9, 3, 7, 3})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), low)

	_, err = pipeline.Minimum(nil)
	assert.ErrorIs(t, err, pipeline.ErrEmptyInput)
}

func TestValidate(t *testing.T) {
	require.NoError(t, examplePipeline().Validate())

	p := pipeline.New([]string{"a", "b", "c"}, map[string]*rangemap.Table{"b": rangemap.MustTable()})
	err := p.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "missing a map")
	assert.ErrorContains(t, err, "missing c map")
	testutil.RequireMissingStage(t, err, "a")
}

func TestNew_CopiesInputs(t *testing.T) {
	stages := []string{"a"}
	tables := map[string]*rangemap.Table{"a": rangemap.MustTable()}
	p := pipeline.New(stages, tables)

	stages[0] = "changed"
	delete(tables, "a")

	assert.Equal(t, []string{"a"}, p.Stages())
	_, err := p.Run(1)
	assert.NoError(t, err)
}

type countingObserver struct {
	mu       sync.Mutex
	mapped   map[string]int
	identity map[string]int
	seeds    int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{mapped: map[string]int{}, identity: map[string]int{}}
}

func (o *countingObserver) ObserveLookup(stage string, matched bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if matched {
		o.mapped[stage]++
	} else {
		o.identity[stage]++
	}
}

func (o *countingObserver) ObserveSeed() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seeds++
}

func TestObserver(t *testing.T) {
	obs := newCountingObserver()
	p := examplePipeline(pipeline.WithObserver(obs))

	_, err := p.RunAll(testutil.ExampleSeeds)
	require.NoError(t, err)

	assert.Equal(t, len(testutil.ExampleSeeds), obs.seeds)
	for _, stage := range pipeline.DefaultStages {
		assert.Equal(t, len(testutil.ExampleSeeds), obs.mapped[stage]+obs.identity[stage], "stage %s", stage)
	}
	// Seeds 79, 14, 55 and 13: only 79 and 55 fall inside a seed-to-soil rule.
	assert.Equal(t, 2, obs.mapped["seed-to-soil"])
	assert.Equal(t, 2, obs.identity["seed-to-soil"])
}
