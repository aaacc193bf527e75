package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewFromViper(NewEmptyViper())

	analysis, err := cfg.GetAnalysis()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), analysis.SimulatedDelay)
	assert.Equal(t, 0, analysis.MaxInputSize)
	assert.Equal(t, 4, analysis.Concurrency)

	assert.Equal(t, "text", cfg.GetOutput().Format)
	assert.False(t, cfg.GetOutput().NoColor)
	assert.False(t, cfg.GetInput().ParseMIME)
	assert.Equal(t, "warn", cfg.GetLogging().Level)

	cache, err := cfg.GetCache()
	require.NoError(t, err)
	assert.True(t, cache.Enabled)
	assert.Equal(t, 10*time.Minute, cache.TTL)
	assert.Equal(t, time.Minute, cache.CleanupInterval)
}

func TestGetCache_Invalid(t *testing.T) {
	t.Parallel()

	for _, ttl := range []string{"0s", "later"} {
		v := NewEmptyViper()
		v.Set("cache.ttl", ttl)
		_, err := NewFromViper(v).GetCache()
		assert.Error(t, err, ttl)
	}
}

func TestNew_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
analysis:
  simulated_delay: 2s
  concurrency: 8
output:
  format: json
input:
  mime: true
`)

	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.GetViper().ConfigFileUsed())

	analysis, err := cfg.GetAnalysis()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, analysis.SimulatedDelay)
	assert.Equal(t, 8, analysis.Concurrency)
	assert.Equal(t, "json", cfg.GetOutput().Format)
	assert.True(t, cfg.GetInput().ParseMIME)
}

func TestNew_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv("PHISH_DETECTOR_OUTPUT_FORMAT", "markdown")

	cfg, err := New(writeConfig(t, "output:\n  format: json\n"))
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.GetOutput().Format)
}

func TestBindFlags(t *testing.T) {
	t.Parallel()

	cfg, err := New(writeConfig(t, "output:\n  format: json\nanalysis:\n  concurrency: 3\n"))
	require.NoError(t, err)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "text", "")
	flags.Int("concurrency", 4, "")
	flags.Duration("delay", 0, "")
	require.NoError(t, flags.Parse([]string{"--format", "yaml", "--delay", "150ms"}))
	require.NoError(t, cfg.BindFlags(flags))

	analysis, err := cfg.GetAnalysis()
	require.NoError(t, err)

	// Explicit flags win, untouched flags leave the file value alone.
	assert.Equal(t, "yaml", cfg.GetOutput().Format)
	assert.Equal(t, 150*time.Millisecond, analysis.SimulatedDelay)
	assert.Equal(t, 3, analysis.Concurrency)
}

func TestGetAnalysis_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		key  string
		val  any
	}{
		{"bad delay", "analysis.simulated_delay", "soon"},
		{"negative delay", "analysis.simulated_delay", "-1s"},
		{"negative size", "analysis.max_input_size", -5},
		{"zero concurrency", "analysis.concurrency", 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := NewEmptyViper()
			v.Set(tc.key, tc.val)
			_, err := NewFromViper(v).GetAnalysis()
			assert.Error(t, err)
		})
	}
}
