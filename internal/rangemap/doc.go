// Package rangemap implements the piecewise-range table used by every
// pipeline stage. A Table is an ordered list of Rules, each mapping a
// contiguous span of source values onto a contiguous span of destination
// values. Values outside every span map to themselves.
//
// Tables are immutable after construction and safe for concurrent use.
package rangemap
