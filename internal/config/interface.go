package config

import (
	"context"
	"io"
)

// Loader is the interface for a format-specific almanac loader.
type Loader interface {
	// Load reads one almanac from r and translates it into the
	// format-agnostic model. name is used only in error messages.
	Load(ctx context.Context, name string, r io.Reader) (*Model, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, name string, r io.Reader) (*Model, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, name string, r io.Reader) (*Model, error) {
	return f(ctx, name, r)
}
