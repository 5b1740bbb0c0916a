// Package pipeline threads scalar values through an ordered sequence of
// named rangemap tables.
//
// The stage order is configuration, not data: it is handed to New and the
// pipeline never reorders or skips a stage. A stage listed in the order but
// missing from the table set is a structural error that aborts the whole
// run; it is never skipped.
//
// A Pipeline is immutable after construction. Run, RunAll and
// MinimumFinalValue are pure functions of the pipeline and their input and
// may be called from many goroutines at once.
package pipeline
