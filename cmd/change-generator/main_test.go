package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coinsYAML = `
package: coins
problems:
  - name: USCents239
    target: 239
    denominations: [1, 5, 10, 25]
  - name: Wasteful
    target: 4
    denominations: [2, 2, 50]
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "coins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunGenerates(t *testing.T) {
	path := writeManifest(t, coinsYAML)
	out := t.TempDir()

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-manifest", path, "-out", out, "-log", "prod"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(out, "coins_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package coins")
	assert.Regexp(t, `USCents239\s+= 14`, string(data))
}

func TestRunCheck(t *testing.T) {
	path := writeManifest(t, coinsYAML)

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-manifest", path, "-check"}, &stdout, &stderr)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "warning: [Wasteful] denominations[2]: [unused_denomination]")
	assert.Contains(t, stdout.String(), "[duplicate_denomination]")
	assert.Contains(t, stdout.String(), "ok: 2 problems")
}

func TestRunCheckFails(t *testing.T) {
	path := writeManifest(t, "problems:\n  - name: bad\n    target: -1\n")

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-manifest", path, "-check"}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stdout.String(), "[invalid_name]")
	assert.Contains(t, stdout.String(), "[negative_target]")
}

func TestRunUnreachable(t *testing.T) {
	path := writeManifest(t, "problems:\n  - name: Three\n    target: 3\n    denominations: [2, 5]\n")
	out := t.TempDir()

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-manifest", path, "-out", out, "-log", "prod"}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.NoFileExists(t, filepath.Join(out, "coins_gen.go"))
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run(context.Background(), nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "-manifest is required")

	stderr.Reset()
	assert.Equal(t, exitUsage, run(context.Background(), []string{"-nope"}, &stdout, &stderr))
}

func TestRunMissingManifest(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(),
		[]string{"-manifest", filepath.Join(t.TempDir(), "none.yaml"), "-log", "prod"}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
}

func TestParseFlagsDefaultFilename(t *testing.T) {
	var stderr bytes.Buffer

	opts, err := parseFlags([]string{"-manifest", "testdata/us_coins.yaml"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "us_coins_gen.go", opts.filename)
	assert.Equal(t, ".", opts.outputDir)
	assert.False(t, opts.check)
}

func TestRunNormalize(t *testing.T) {
	path := writeManifest(t, coinsYAML)

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-manifest", path, "-normalize", "-log", "prod"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "normalized "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `version: "1"`)
	assert.Contains(t, string(data), "type: int")
	assert.Contains(t, string(data), "denominations: [1, 5, 10, 25]")

	// The rewritten manifest still generates the same constants.
	out := t.TempDir()
	code = run(context.Background(), []string{"-manifest", path, "-out", out, "-log", "prod"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	gen, err := os.ReadFile(filepath.Join(out, "coins_gen.go"))
	require.NoError(t, err)
	assert.Regexp(t, `USCents239\s+= 14`, string(gen))
}

func TestRunNormalizeKeepsInvalidManifest(t *testing.T) {
	const bad = "problems:\n  - name: bad\n    target: -1\n"
	path := writeManifest(t, bad)

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-manifest", path, "-normalize", "-log", "prod"}, &stdout, &stderr)
	assert.Equal(t, exitError, code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, bad, string(data))
}
