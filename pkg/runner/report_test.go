// pkg/runner/report_test.go
package runner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrx4d/cartwheel/pkg/harness"
)

func passedOutcome(name string) harness.Outcome {
	o := harness.NewOutcome(name)
	return o.Finish()
}

func failedOutcome(name, finding string) harness.Outcome {
	o := harness.NewOutcome(name)
	o.Failf("%s", finding)
	return o.Finish()
}

func TestRunReportTallies(t *testing.T) {
	report := NewRunReport()
	report.Record(passedOutcome("login/positive/standard_user"))
	report.Record(failedOutcome("cart/remove_item", "badge mismatch"))
	report.Record(passedOutcome("checkout/finish_order"))
	report.Seal()

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, report.AllPassed())
	assert.False(t, report.FinishedAt.Before(report.StartedAt))

	require.Len(t, report.Results, 3)
	assert.Equal(t, "cart/remove_item", report.Results[1].Name)
	assert.Equal(t, []string{"badge mismatch"}, report.Results[1].Findings)
}

func TestRunReportAllPassed(t *testing.T) {
	report := NewRunReport()
	report.Record(passedOutcome("a"))
	report.Seal()
	assert.True(t, report.AllPassed())

	empty := NewRunReport()
	empty.Seal()
	assert.True(t, empty.AllPassed(), "an empty run has no failures")
}

func TestWriteFile(t *testing.T) {
	report := NewRunReport()
	o := harness.NewOutcome("inventory/display")
	o.Flagf("only informational")
	report.Record(o.Finish())
	report.Seal()

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, report.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded RunReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.Total, decoded.Total)
	require.Len(t, decoded.Results, 1)
	assert.True(t, decoded.Results[0].Passed)
	assert.Equal(t, []string{"known issue: only informational"}, decoded.Results[0].Findings)
}

func TestWriteFileBadPath(t *testing.T) {
	report := NewRunReport()
	report.Seal()

	err := report.WriteFile(filepath.Join(t.TempDir(), "missing", "report.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write run report")
}

func TestDurationSerializedAsMilliseconds(t *testing.T) {
	o := harness.NewOutcome("x")
	o.StartedAt = time.Now().Add(-1500 * time.Millisecond)

	report := NewRunReport()
	report.Record(o.Finish())

	assert.GreaterOrEqual(t, report.Results[0].DurationMS, int64(1500))
}
