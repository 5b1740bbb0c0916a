package rangemap

import (
	"errors"
	"fmt"
	"math"
)

// ErrRuleOverflow is returned when a rule's destination span does not fit
// in 64 unsigned bits.
var ErrRuleOverflow = errors.New("rule destination span overflows uint64")

// Rule maps the source span [Source, Source+Length) onto the destination
// span starting at Destination.
type Rule struct {
	Destination uint64
	Source      uint64
	Length      uint64
}

// String renders the rule in the same "dst src len" order the almanac
// text format uses.
func (r Rule) String() string {
	return fmt.Sprintf("%d %d %d", r.Destination, r.Source, r.Length)
}

// Contains reports whether v falls inside the rule's source span.
// A zero-length rule contains nothing.
func (r Rule) Contains(v uint64) bool {
	return v >= r.Source && v-r.Source < r.Length
}

// Validate rejects rules whose last destination value would wrap around.
// Source spans may run past math.MaxUint64; Contains never overflows.
func (r Rule) Validate() error {
	if r.Length == 0 {
		return nil
	}
	if r.Destination > math.MaxUint64-(r.Length-1) {
		return fmt.Errorf("rule %q: %w", r.String(), ErrRuleOverflow)
	}
	return nil
}

// Table is an ordered collection of rules. When source spans overlap the
// first rule in table order wins.
type Table struct {
	rules []Rule
}

// NewTable validates and copies rules into a new Table. An empty rule set
// is valid and yields a pure identity table.
func NewTable(rules ...Rule) (*Table, error) {
	copied := make([]Rule, len(rules))
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		copied[i] = r
	}
	return &Table{rules: copied}, nil
}

// MustTable is like NewTable but panics on an invalid rule. It is intended
// for fixtures and statically known tables.
func MustTable(rules ...Rule) *Table {
	t, err := NewTable(rules...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup maps value through the first matching rule, or returns it
// unchanged when no rule covers it.
func (t *Table) Lookup(value uint64) uint64 {
	out, _ := t.Match(value)
	return out
}

// Match is Lookup that also reports whether a rule matched.
func (t *Table) Match(value uint64) (uint64, bool) {
	if t == nil {
		return value, false
	}
	for _, r := range t.rules {
		if r.Contains(value) {
			return r.Destination + (value - r.Source), true
		}
	}
	return value, false
}

// Rules returns a copy of the table's rules in table order.
func (t *Table) Rules() []Rule {
	if t == nil {
		return nil
	}
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}
