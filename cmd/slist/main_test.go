package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"deedles.dev/slist/internal/scenario"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunDemoScenario(t *testing.T) {
	logger = zap.NewNop()
	only = "single"
	defer func() { only = "" }()

	var buf bytes.Buffer
	require.NoError(t, run(&buf, scenario.Default()))
	require.Equal(t, "== single\n"+
		"initial: [1]\n"+
		"toSequence() = [1]; list: [1]\n"+
		"secondToLast() = none; list: [1]\n", buf.String())
}

func TestRunUnknownScenario(t *testing.T) {
	logger = zap.NewNop()
	only = "missing"
	defer func() { only = "" }()

	var buf bytes.Buffer
	require.Error(t, run(&buf, scenario.Default()))
	require.Zero(t, buf.Len())
}

func TestRunCmd(t *testing.T) {
	logger = zap.NewNop()

	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	data := []byte(`
scenarios:
  - name: back
    initial: [1, 2, 3]
    steps:
      - op: removeBack
      - op: insertAtBack
        value: 9
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, runCmd.RunE(cmd, []string{path}))
	require.Equal(t, "== back\n"+
		"initial: [1 2 3]\n"+
		"removeBack() = 3; list: [1 2]\n"+
		"insertAtBack(9); list: [1 2 9]\n", buf.String())

	err := runCmd.RunE(cmd, []string{filepath.Join(t.TempDir(), "missing.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)
}
