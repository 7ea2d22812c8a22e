package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReportRows returns the entity rows of a rendered report, in report order.
func ReportRows(t *testing.T, report string) []string {
	t.Helper()

	lines := strings.Split(report, "\n")
	start, end := -1, -1
	for i, line := range lines {
		if strings.HasPrefix(line, "Vehicle Name") {
			start = i + 2 // skip the rule under the header
		}
		if start >= 0 && i >= start && line == "" {
			end = i
			break
		}
	}
	require.True(t, start >= 0 && end >= start, "report does not contain an entity listing:\n%s", report)
	return lines[start:end]
}

// AssertReportRow checks that the report lists displayName with the given
// grid and slot count, independent of column padding.
func AssertReportRow(t *testing.T, result *HarnessResult, displayName string, rows, cols int) {
	t.Helper()

	want := []string{displayName, fmt.Sprintf("%dx%d", rows, cols), fmt.Sprintf("%d", rows*cols), "slots"}
	for _, row := range ReportRows(t, result.Report) {
		if strings.Join(strings.Fields(row), " ") == strings.Join(want, " ") {
			return
		}
	}
	require.Failf(t, "report row not found", "expected a row for %q with %dx%d, report:\n%s", displayName, rows, cols, result.Report)
}
