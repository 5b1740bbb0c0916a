// Package report renders computed almanac results.
//
// Writers are looked up by format name in a registry; text.go and json.go
// register the built-in formats from init blocks.
package report

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/vk/almanacgo/internal/pipeline"
)

// Result is everything computed for one almanac source.
type Result struct {
	// Source is the reference the almanac was read from.
	Source string
	// ShowSource asks text output to label the result with its source.
	ShowSource bool
	Seeds      []uint64
	Locations  []uint64
	Minimum    uint64
	// Traces holds per-seed stage paths when tracing is on.
	Traces []pipeline.Trace
}

// WriterFunc renders one result to w.
type WriterFunc func(w io.Writer, r Result) error

var (
	mu      sync.RWMutex
	writers = map[string]WriterFunc{}
)

// Register installs fn under format. A later registration of the same
// format wins.
func Register(format string, fn WriterFunc) {
	mu.Lock()
	defer mu.Unlock()
	writers[format] = fn
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(writers))
	for name := range writers {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Has reports whether a writer is registered for format.
func Has(format string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := writers[format]
	return ok
}

// Write dispatches r to the writer registered for format.
func Write(format string, w io.Writer, r Result) error {
	mu.RLock()
	fn, ok := writers[format]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r)
}
