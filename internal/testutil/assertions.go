package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/almanacgo/internal/pipeline"
)

// RequireMissingStage asserts that err is, or wraps, a *pipeline.MissingStageError
// naming stage.
func RequireMissingStage(t *testing.T, err error, stage string) {
	t.Helper()

	require.Error(t, err)
	var missing *pipeline.MissingStageError
	require.True(t, errors.As(err, &missing), "expected *pipeline.MissingStageError, got %T: %v", err, err)
	require.Equal(t, stage, missing.Stage)
}
