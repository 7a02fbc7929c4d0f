// pkg/scenarios/login.go
package scenarios

import (
	"strings"

	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/fixtures"
	"github.com/jrx4d/cartwheel/pkg/harness"
	"github.com/jrx4d/cartwheel/pkg/pages"
	"github.com/jrx4d/cartwheel/pkg/runner"
)

// LoginScenarios expands the fixture's positive and negative credential
// records into one scenario each.
func LoginScenarios(fx *fixtures.Set) []runner.Scenario {
	var out []runner.Scenario

	for _, tc := range fx.PositiveCases {
		tc := tc
		out = append(out, runner.Scenario{
			Name: "login/positive/" + tc.Username,
			Run: func(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
				runPositiveLogin(ctx, sess, o, tc)
			},
		})
	}

	for _, tc := range fx.NegativeCases {
		tc := tc
		name := tc.Username
		if name == "" {
			name = "blank_credentials"
		}
		out = append(out, runner.Scenario{
			Name: "login/negative/" + name,
			Run: func(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
				runNegativeLogin(ctx, sess, o, tc)
			},
		})
	}

	return out
}

func runPositiveLogin(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome, tc fixtures.LoginCase) {
	login := pages.NewLoginPage(sess, ctx.NewQuery(sess), ctx.BaseURL())

	if err := login.Open(); err != nil {
		o.FailErr(err)
		return
	}
	if err := login.Login(tc.Username, tc.Password); err != nil {
		o.FailErr(err)
		return
	}
	checkURLContains(sess, o, tc.ExpectedURLPart)
}

func runNegativeLogin(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome, tc fixtures.LoginCase) {
	login := pages.NewLoginPage(sess, ctx.NewQuery(sess), ctx.BaseURL())

	if err := login.Open(); err != nil {
		o.FailErr(err)
		return
	}
	if err := login.Login(tc.Username, tc.Password); err != nil {
		o.FailErr(err)
		return
	}

	banner, err := login.ErrorMessage()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(strings.Contains(banner, tc.ExpectedError),
		"expected error banner containing %q, got %q", tc.ExpectedError, banner)
}
