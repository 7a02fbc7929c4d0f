// pkg/runner/runner.go
package runner

import (
	"time"

	"go.uber.org/zap"

	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/harness"
)

// Scenario is one executable test case. LoggedIn scenarios start from a
// session that already passed the login flow with valid fixture
// credentials; the rest start from a bare session on about:blank.
type Scenario struct {
	Name     string
	LoggedIn bool
	Run      func(tc *harness.TestContext, sess *browser.Session, o *harness.Outcome)
}

// Runner executes scenarios sequentially, one fresh session each, and
// collects their outcomes into a run report.
type Runner struct {
	tc     *harness.TestContext
	logger *zap.Logger
}

// New builds a runner over a prepared test context.
func New(tc *harness.TestContext, logger *zap.Logger) *Runner {
	return &Runner{tc: tc, logger: logger.Named("runner")}
}

// Execute runs every scenario in order and returns the aggregated
// report. A scenario whose session cannot be acquired is recorded as
// failed; it never aborts the remaining scenarios.
func (r *Runner) Execute(scenarios []Scenario) *RunReport {
	report := NewRunReport()

	for _, sc := range scenarios {
		outcome := r.runOne(sc)
		report.Record(outcome)

		if outcome.Passed {
			r.logger.Info("Scenario passed.",
				zap.String("scenario", sc.Name),
				zap.Duration("duration", outcome.Duration))
		} else {
			r.logger.Error("Scenario failed.",
				zap.String("scenario", sc.Name),
				zap.Duration("duration", outcome.Duration),
				zap.Strings("findings", outcome.Findings))
		}
	}

	report.Seal()
	return report
}

func (r *Runner) runOne(sc Scenario) harness.Outcome {
	o := harness.NewOutcome(sc.Name)

	var (
		sess *browser.Session
		err  error
	)
	if sc.LoggedIn {
		sess, err = r.tc.SetupLoggedIn()
	} else {
		sess, err = r.tc.Setup()
	}
	if err != nil {
		o.Failf("session setup: %v", err)
		return o.Finish()
	}
	defer r.tc.Teardown(sess, o)

	r.logger.Debug("Session ready.",
		zap.String("scenario", sc.Name),
		zap.String("session_id", sess.ID()),
		zap.Duration("setup", time.Since(sess.StartedAt())))

	sc.Run(r.tc, sess, o)
	return o.Finish()
}
