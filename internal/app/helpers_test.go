package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/almanacgo/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. Logs are
// captured at debug level and dumped when the test fails.
func SetupAppTest(t *testing.T, cfg Config, opts ...Option) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logBuffer := &testutil.SafeBuffer{}
	testutil.LogOnFailure(t, logBuffer)

	return NewApp(out, logBuffer, validated, opts...), out, logBuffer
}
