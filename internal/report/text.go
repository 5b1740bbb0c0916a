package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FormatText is the puzzle-style plain text report.
const FormatText = "text"

func init() { Register(FormatText, writeText) }

func writeText(w io.Writer, r Result) error {
	bw := bufio.NewWriter(w)
	if r.ShowSource {
		fmt.Fprintf(bw, "# %s\n", r.Source)
	}
	for _, tr := range r.Traces {
		var b strings.Builder
		fmt.Fprintf(&b, "seed %d", tr.Seed)
		for _, step := range tr.Steps {
			mark := ""
			if !step.Matched {
				mark = "="
			}
			fmt.Fprintf(&b, " -> %s%d", mark, step.Out)
		}
		fmt.Fprintln(bw, b.String())
	}
	fmt.Fprintf(bw, "Part 1: %d\n", r.Minimum)
	return bw.Flush()
}
