// Package config defines the format-agnostic almanac model, along with the
// Loader interface that concrete input formats implement.
//
// The `config.Model` is the single source of truth for the `pipeline`
// package: every loader (the puzzle text format in `almanac`, the HCL
// format in `hcl`) produces the same Model, and only the Model is turned
// into range tables.
package config
