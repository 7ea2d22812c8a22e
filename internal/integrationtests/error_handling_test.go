package integrationtests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/lootgridgo/internal/app"
	"github.com/specialistvlad/lootgridgo/internal/entity"
	"github.com/specialistvlad/lootgridgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const malformedEntities = "<configs>\n<append>\n<entity_class name=\"vehicleA\">\n</configs>"

// Test for: a missing entity source is reported but still produces a report
func TestErrorHandling_MissingEntitySource(t *testing.T) {
	result := testutil.RunExtraction(t, map[string]string{"Config/loot.xml": customLoot}, app.Config{})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "level=ERROR")
	assert.Contains(t, result.LogOutput, "Entity source not found")
	assert.Contains(t, result.Report, "Total Vehicles: 0\n")
	assert.Empty(t, testutil.ReportRows(t, result.Report))
}

// Test for: malformed markup continues with zero entities by default
func TestErrorHandling_MalformedEntitySource_Lenient(t *testing.T) {
	files := map[string]string{"Config/entityclasses.xml": malformedEntities}

	result := testutil.RunExtraction(t, files, app.Config{})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "Entity source unusable, continuing with zero entities.")
	assert.Contains(t, result.LogOutput, "line 4")
	assert.Contains(t, result.LogOutput, "reason=malformed")
	assert.Contains(t, result.Report, "Total Vehicles: 0\n")
}

// Test for: a document with two root elements is malformed, not partially read
func TestErrorHandling_SecondRootElement(t *testing.T) {
	files := map[string]string{
		"Config/entityclasses.xml": `<configs><append><entity_class name="vehicleA"/></append></configs><configs/>`,
	}

	result := testutil.RunExtraction(t, files, app.Config{})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "junk after document element")
	assert.Contains(t, result.LogOutput, "Found 0 vehicle definitions")
	assert.Empty(t, testutil.ReportRows(t, result.Report))
}

// Test for: an entity source that cannot be read is logged as unreadable
func TestErrorHandling_UnreadableEntitySource(t *testing.T) {
	files := map[string]string{"Config/entityclasses.xml/placeholder": "a directory where a file is expected"}

	result := testutil.RunExtraction(t, files, app.Config{})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "reason=unreadable")
	assert.Contains(t, result.Report, "Total Vehicles: 0\n")
}

// Test for: malformed markup aborts the run in strict mode
func TestErrorHandling_MalformedEntitySource_Strict(t *testing.T) {
	files := map[string]string{"Config/entityclasses.xml": malformedEntities}

	result := testutil.RunExtraction(t, files, app.Config{Strict: true})

	require.Error(t, result.Err)
	assert.True(t, entity.IsParseError(result.Err))
	assert.Contains(t, result.Err.Error(), "failed to build entity catalog")
	assert.Empty(t, result.Report, "no report is written when the run aborts")
}

// Test for: an unreadable loot source degrades to defaults with a warning
func TestErrorHandling_UnreadableLootSource(t *testing.T) {
	files := map[string]string{
		"Config/loot.xml/placeholder": "a directory where a file is expected",
		"Config/entityclasses.xml":    inheritingEntities,
	}

	result := testutil.RunExtraction(t, files, app.Config{})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "level=WARN")
	assert.Contains(t, result.LogOutput, "Could not read loot source")
	assert.Contains(t, result.LogOutput, "Found 4 loot container definitions")
	// vehicleCustom is unknown without the loot source, so the fallback shape applies.
	testutil.AssertReportRow(t, result, "Foo", 9, 8)
}

// Test for: a report that cannot be written fails the run
func TestErrorHandling_UnwritableReport(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "missing-dir", "report.txt")
	testApp, _ := app.SetupAppTest(t, app.Config{
		ConfigDir:  filepath.Join(dir, "Config"),
		OutputPath: outPath,
	})

	err := testApp.Run(t.Context())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report")
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}
