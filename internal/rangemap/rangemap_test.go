package rangemap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_IdentityFallback(t *testing.T) {
	table := MustTable(
		Rule{Destination: 50, Source: 98, Length: 2},
		Rule{Destination: 52, Source: 50, Length: 48},
	)

	for _, v := range []uint64{0, 1, 13, 49, 100, 1000, math.MaxUint64} {
		assert.Equal(t, v, table.Lookup(v), "value %d should pass through unchanged", v)
	}
}

func TestLookup_MappedSpan(t *testing.T) {
	rules := []Rule{
		{Destination: 50, Source: 98, Length: 2},
		{Destination: 52, Source: 50, Length: 48},
	}
	table := MustTable(rules...)

	for _, r := range rules {
		for v := r.Source; v < r.Source+r.Length; v++ {
			assert.Equal(t, r.Destination+(v-r.Source), table.Lookup(v), "rule %s, value %d", r, v)
		}
	}
}

func TestLookup_Boundaries(t *testing.T) {
	table := MustTable(Rule{Destination: 500, Source: 10, Length: 5})

	testCases := []struct {
		name    string
		value   uint64
		want    uint64
		matched bool
	}{
		{name: "below lower edge", value: 9, want: 9, matched: false},
		{name: "lower edge is inclusive", value: 10, want: 500, matched: true},
		{name: "last covered value", value: 14, want: 504, matched: true},
		{name: "upper edge is exclusive", value: 15, want: 15, matched: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, matched := table.Match(tc.value)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.matched, matched)
		})
	}
}

func TestLookup_FirstMatchWins(t *testing.T) {
	table := MustTable(
		Rule{Destination: 100, Source: 0, Length: 10},
		Rule{Destination: 200, Source: 5, Length: 10},
	)

	assert.Equal(t, uint64(105), table.Lookup(5), "overlap resolves to the first rule")
	assert.Equal(t, uint64(210), table.Lookup(10), "second rule still covers its own tail")
}

func TestLookup_ZeroLengthRuleIsInert(t *testing.T) {
	table, err := NewTable(Rule{Destination: 1, Source: 7, Length: 0})
	require.NoError(t, err)

	got, matched := table.Match(7)
	assert.False(t, matched)
	assert.Equal(t, uint64(7), got)
}

func TestLookup_EmptyAndNilTable(t *testing.T) {
	empty := MustTable()
	assert.Equal(t, uint64(42), empty.Lookup(42))
	assert.Zero(t, empty.Len())

	var nilTable *Table
	assert.Equal(t, uint64(42), nilTable.Lookup(42))
	assert.Nil(t, nilTable.Rules())
}

func TestLookup_SourceSpanPastMaxUint64(t *testing.T) {
	table := MustTable(Rule{Destination: 0, Source: math.MaxUint64 - 1, Length: 10})

	assert.Equal(t, uint64(0), table.Lookup(math.MaxUint64-1))
	assert.Equal(t, uint64(1), table.Lookup(math.MaxUint64))
	assert.Equal(t, uint64(5), table.Lookup(5))
}

func TestNewTable_RejectsDestinationOverflow(t *testing.T) {
	_, err := NewTable(
		Rule{Destination: 0, Source: 0, Length: 1},
		Rule{Destination: math.MaxUint64, Source: 0, Length: 2},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRuleOverflow)
	assert.ErrorContains(t, err, "rule 1")

	_, err = NewTable(Rule{Destination: math.MaxUint64, Source: 0, Length: 1})
	assert.NoError(t, err, "a span ending exactly at MaxUint64 fits")
}

func TestMustTable_PanicsOnInvalidRule(t *testing.T) {
	assert.Panics(t, func() {
		MustTable(Rule{Destination: math.MaxUint64, Source: 0, Length: 3})
	})
}

func TestRules_ReturnsCopy(t *testing.T) {
	rules := []Rule{{Destination: 1, Source: 2, Length: 3}}
	table := MustTable(rules...)

	rules[0].Destination = 99
	got := table.Rules()
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].Destination, "table must not alias caller slice")

	got[0].Destination = 77
	assert.Equal(t, uint64(1), table.Rules()[0].Destination, "returned slice must not alias table")
}
