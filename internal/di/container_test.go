package di

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/phish-detector/internal/config"
	"github.com/mikey/phish-detector/internal/core"
	"github.com/mikey/phish-detector/internal/ports"
)

func TestBuildContainer_WiresEmailFilter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n"), 0o600))

	var out bytes.Buffer
	container, err := BuildContainer(CLIOptions{ConfigFile: path, Out: &out})
	require.NoError(t, err)

	err = container.Invoke(func(filter ports.EmailFilter) error {
		_, err := filter.ProcessText(context.Background(), "test", "Please verify account now")
		return err
	})
	require.NoError(t, err)

	var report core.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, core.ThreatMedium, report.Result.ThreatLevel)
	assert.Equal(t, 50, report.Result.Confidence)
}

func TestBuildContainer_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n"), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "text", "")
	require.NoError(t, flags.Parse([]string{"--format", "yaml"}))

	container, err := BuildContainer(CLIOptions{ConfigFile: path, Flags: flags})
	require.NoError(t, err)

	err = container.Invoke(func(cfg *config.Config) {
		assert.Equal(t, "yaml", cfg.GetOutput().Format)
	})
	require.NoError(t, err)
}

func TestBuildContainer_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: pdf\n"), 0o600))

	container, err := BuildContainer(CLIOptions{ConfigFile: path})
	require.NoError(t, err)

	err = container.Invoke(func(ports.EmailFilter) {})
	assert.Error(t, err)
}
