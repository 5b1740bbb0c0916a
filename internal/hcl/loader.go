package hcl

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/almanacgo/internal/config"
	"github.com/vk/almanacgo/internal/ctxlog"
	"github.com/vk/almanacgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	converter *Converter
}

// NewLoader creates a new HCL almanac loader.
func NewLoader() *Loader {
	return &Loader{converter: NewConverter()}
}

// Load parses one HCL almanac, decodes it into the schema structs and
// translates it into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, name string, r io.Reader) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "source", name)

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read HCL almanac %s: %w", name, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", name, diags)
	}

	var root schema.File
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	model, err := l.translateFile(ctx, &root)
	if err != nil {
		return nil, fmt.Errorf("invalid HCL almanac %s: %w", name, err)
	}

	logger.Debug("HCL loading complete.", "source", name, "seeds", len(model.Seeds), "stages", len(model.Order), "stage_order", model.StageOrder)
	return model, nil
}
