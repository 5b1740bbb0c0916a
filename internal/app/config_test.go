package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Inputs: []string{"-"}})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 1, cfg.WorkerCount)
}

func TestNewConfig_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		cfg      Config
		contains string
	}{
		{name: "no inputs", cfg: Config{}, contains: "at least one input"},
		{name: "empty input", cfg: Config{Inputs: []string{""}}, contains: "cannot be empty"},
		{name: "unknown format", cfg: Config{Inputs: []string{"-"}, Format: "yaml"}, contains: `unknown output format "yaml"`},
		{name: "duplicate stage", cfg: Config{Inputs: []string{"-"}, Stages: []string{"a", "a"}}, contains: `stage "a" listed more than once`},
		{name: "empty stage", cfg: Config{Inputs: []string{"-"}, Stages: []string{""}}, contains: "stage names cannot be empty"},
		{name: "negative workers", cfg: Config{Inputs: []string{"-"}, WorkerCount: -1}, contains: "must not be negative"},
		{name: "bad port", cfg: Config{Inputs: []string{"-"}, HealthcheckPort: 70000}, contains: "out of range"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewConfig(tc.cfg)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.contains)
		})
	}
}
