package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/lootgridgo/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesReport(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	configDir := filepath.Join(dir, "Config")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "loot.xml"),
		[]byte(`<lootcontainers><lootcontainer name="vehicleCustom" size="10,8"/></lootcontainers>`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "entityclasses.xml"),
		[]byte(`<configs><append><entity_class name="vehicleFoo"><property name="LootListAlive" value="vehicleCustom"/></entity_class></append></configs>`), 0600))
	outPath := filepath.Join(dir, "report.txt")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-out", outPath, configDir})

	// --- Assert ---
	require.NoError(t, err)
	report, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(report), "Foo")
	require.Contains(t, string(report), "80 slots")
	require.Contains(t, out.String(), "Found 5 loot container definitions")
	require.Contains(t, out.String(), "Found 1 vehicle definitions")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_BadSettingsIsAnExitError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	settings := filepath.Join(t.TempDir(), "storage.hcl")
	require.NoError(t, os.WriteFile(settings, []byte("fallback {\n"), 0600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-settings", settings})

	// --- Assert ---
	require.Error(t, err)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "failed to parse settings file")
}
