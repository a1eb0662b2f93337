package cli

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const sampleListing = "      --ttl int                 Default time-to-live for DNS entries\n" +
	"      --cache-dir string        Directory to store zone caches\n" +
	"  -c, --controllers string      comma separated list of controllers to start\n"

func TestGenerateFromFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "help.txt")
	output := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(input, []byte(sampleListing), 0o644))

	err := rootCmd().Run(context.Background(),
		[]string{name, "generate", "--input", input, "--output", output})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "- --ttl={{ .Values.configuration.ttl }}")
	assert.Contains(t, out, "  controllers: all\n")
	assert.Contains(t, out, "  ttl: 120\n")
	// canonical policy drops cache locations
	assert.NotContains(t, out, "cache-dir")
}

func TestGenerateWithRulesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "help.txt")
	rules := filepath.Join(dir, "rules.yaml")
	table := filepath.Join(dir, "defaults.yaml")
	output := filepath.Join(dir, "out.txt")

	require.NoError(t, os.WriteFile(input, []byte(sampleListing), 0o644))
	require.NoError(t, os.WriteFile(rules, []byte("exact:\n  - controllers\n"), 0o644))
	require.NoError(t, os.WriteFile(table, []byte("ttl: 300\n"), 0o644))

	err := rootCmd().Run(context.Background(),
		[]string{name, "generate", "-i", input, "-o", output, "--rules", rules, "--defaults", table})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	out := string(data)

	assert.NotContains(t, out, "controllers")
	assert.Contains(t, out, "  ttl: 300\n")
	// the rules file replaced the canonical policy, so cache-dir survives
	assert.Contains(t, out, "- --cache-dir={{ .Values.configuration.cacheDir }}")
}

func TestGenerateExecExitCodePropagated(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available in PATH")
	}

	output := filepath.Join(t.TempDir(), "out.txt")
	err := rootCmd().Run(context.Background(),
		[]string{name, "generate", "--exec", "sh", "--arg", "-c", "--arg", "exit 4", "-o", output})
	require.Error(t, err)

	var coder cli.ExitCoder
	require.True(t, errors.As(err, &coder))
	assert.Equal(t, 4, coder.ExitCode())
}

func TestGenerateMissingInputFile(t *testing.T) {
	err := rootCmd().Run(context.Background(),
		[]string{name, "generate", "--input", filepath.Join(t.TempDir(), "missing.txt"),
			"--output", filepath.Join(t.TempDir(), "out.txt")})
	assert.Error(t, err)
}
