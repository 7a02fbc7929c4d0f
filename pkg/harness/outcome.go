// pkg/harness/outcome.go
package harness

import (
	"fmt"
	"time"
)

// Outcome is the structured result of one scenario: pass/fail plus the
// findings collected along the way. Scenarios record findings; only the
// test-runner boundary decides what a failed Outcome means for the run.
type Outcome struct {
	Name      string
	Passed    bool
	Findings  []string
	StartedAt time.Time
	Duration  time.Duration
}

// NewOutcome starts a passing outcome for the named scenario.
func NewOutcome(name string) *Outcome {
	return &Outcome{
		Name:      name,
		Passed:    true,
		StartedAt: time.Now(),
	}
}

// Failf marks the outcome failed and records the finding.
func (o *Outcome) Failf(format string, args ...interface{}) {
	o.Passed = false
	o.Findings = append(o.Findings, fmt.Sprintf(format, args...))
}

// FailErr marks the outcome failed with an unexpected error.
func (o *Outcome) FailErr(err error) {
	o.Failf("unexpected error: %v", err)
}

// Flagf records a known-issue finding without failing the outcome. Used
// where observed behavior is ambiguous by design, such as the checkout
// overview cancel destination.
func (o *Outcome) Flagf(format string, args ...interface{}) {
	o.Findings = append(o.Findings, "known issue: "+fmt.Sprintf(format, args...))
}

// Check records a failure when cond is false and returns cond, so
// scenarios can bail out of dependent steps.
func (o *Outcome) Check(cond bool, format string, args ...interface{}) bool {
	if !cond {
		o.Failf(format, args...)
	}
	return cond
}

// Finish stamps the duration and returns the outcome by value.
func (o *Outcome) Finish() Outcome {
	o.Duration = time.Since(o.StartedAt)
	return *o
}
