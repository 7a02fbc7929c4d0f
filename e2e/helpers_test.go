package e2e

import (
	"testing"

	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/harness"
	"github.com/jrx4d/cartwheel/pkg/runner"
)

// runScenario executes one suite scenario under go test, mapping a failed
// outcome onto test failures so findings show up in the test log.
func runScenario(t *testing.T, sc runner.Scenario) {
	t.Helper()
	requireE2E(t)

	o := harness.NewOutcome(sc.Name)

	var (
		sess *browser.Session
		err  error
	)
	if sc.LoggedIn {
		sess, err = tc.SetupLoggedIn()
	} else {
		sess, err = tc.Setup()
	}
	if err != nil {
		t.Fatalf("session setup for %s: %v", sc.Name, err)
	}
	defer tc.Teardown(sess, o)

	sc.Run(tc, sess, o)

	done := o.Finish()
	if !done.Passed {
		for _, finding := range done.Findings {
			t.Error(finding)
		}
	}
}

// runAll executes a group of scenarios as subtests.
func runAll(t *testing.T, group []runner.Scenario) {
	for _, sc := range group {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			runScenario(t, sc)
		})
	}
}
