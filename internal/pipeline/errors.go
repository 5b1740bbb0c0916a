package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by MinimumFinalValue when there are no seeds
// to take the minimum of.
var ErrEmptyInput = errors.New("empty seed list: minimum is undefined")

// MissingStageError reports a stage named in the pipeline order that has
// no table.
type MissingStageError struct {
	Stage string
}

// Error implements the error interface for MissingStageError.
func (e *MissingStageError) Error() string {
	return fmt.Sprintf("missing %s map", e.Stage)
}
