// Package schema holds the gohcl decoding targets for the HCL almanac
// format. The structs mirror the file layout one to one; translation into
// the format-agnostic config.Model lives in the hcl package.
package schema

import (
	"github.com/zclconf/go-cty/cty"
)

// Rule represents a `rule` block inside a stage. Values are kept as raw
// cty.Values so the loader can report range and sign problems itself.
type Rule struct {
	Destination cty.Value `hcl:"destination"`
	Source      cty.Value `hcl:"source"`
	Length      cty.Value `hcl:"length"`
}

// Stage represents a `stage "<name>" { ... }` block: one range table.
type Stage struct {
	Name  string  `hcl:"name,label"`
	Rules []*Rule `hcl:"rule,block"`
}

// File represents the top-level structure of an HCL almanac file.
type File struct {
	Seeds      cty.Value `hcl:"seeds"`
	StageOrder []string  `hcl:"stage_order,optional"`
	Stages     []*Stage  `hcl:"stage,block"`
}
