package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/lootgridgo/internal/app"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Report    string // empty when no report was written
	Err       error
	App       *app.App
	Dir       string // temporary root the fixtures were written to
}

// RunExtraction provides a standardized harness for running the full
// extraction. files maps paths relative to a temporary root (for example
// "Config/loot.xml") to their content. cfg may set Strict or SettingsPath;
// relative SettingsPath values are resolved against the temporary root.
func RunExtraction(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir := t.TempDir()

	// 2. Write all fixture files, creating subdirectories as needed.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 3. Point the app at the temporary Config directory and report path.
	cfg.ConfigDir = filepath.Join(tmpDir, app.DefaultConfigDir)
	cfg.OutputPath = filepath.Join(tmpDir, app.DefaultOutputPath)
	if cfg.SettingsPath != "" && !filepath.IsAbs(cfg.SettingsPath) {
		cfg.SettingsPath = filepath.Join(tmpDir, cfg.SettingsPath)
	}

	testApp, logs := app.SetupAppTest(t, cfg)

	// 4. Run the whole pipeline, including the report write.
	runErr := testApp.Run(context.Background())

	result := &HarnessResult{
		LogOutput: logs.String(),
		Err:       runErr,
		App:       testApp,
		Dir:       tmpDir,
	}
	if b, err := os.ReadFile(cfg.OutputPath); err == nil {
		result.Report = string(b)
	}
	return result
}
