// pkg/runner/report.go
package runner

import (
	"fmt"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/jrx4d/cartwheel/pkg/harness"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ScenarioResult is the serialized outcome of one scenario.
type ScenarioResult struct {
	Name       string   `json:"name"`
	Passed     bool     `json:"passed"`
	Findings   []string `json:"findings,omitempty"`
	DurationMS int64    `json:"duration_ms"`
}

// RunReport aggregates a full suite execution.
type RunReport struct {
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Total      int              `json:"total"`
	Passed     int              `json:"passed"`
	Failed     int              `json:"failed"`
	Results    []ScenarioResult `json:"results"`
}

// NewRunReport starts an empty report stamped with the current time.
func NewRunReport() *RunReport {
	return &RunReport{
		StartedAt: time.Now(),
		Results:   []ScenarioResult{},
	}
}

// Record folds one outcome into the report.
func (r *RunReport) Record(o harness.Outcome) {
	r.Total++
	if o.Passed {
		r.Passed++
	} else {
		r.Failed++
	}
	r.Results = append(r.Results, ScenarioResult{
		Name:       o.Name,
		Passed:     o.Passed,
		Findings:   o.Findings,
		DurationMS: o.Duration.Milliseconds(),
	})
}

// Seal stamps the finish time.
func (r *RunReport) Seal() {
	r.FinishedAt = time.Now()
}

// AllPassed reports whether no scenario failed.
func (r *RunReport) AllPassed() bool {
	return r.Failed == 0
}

// WriteFile serializes the report as indented JSON to path.
func (r *RunReport) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write run report to %s: %w", path, err)
	}
	return nil
}
