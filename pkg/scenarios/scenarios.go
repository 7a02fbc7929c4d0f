// Package scenarios holds the executable acceptance cases for the
// SauceDemo storefront. Each scenario is a sequence of page-object calls
// plus assertions recorded on a harness.Outcome; the runner owns session
// setup and teardown around every case.
package scenarios

import (
	"strings"

	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/fixtures"
	"github.com/jrx4d/cartwheel/pkg/harness"
	"github.com/jrx4d/cartwheel/pkg/runner"
)

// All assembles the complete suite in execution order. Data-driven login
// cases expand to one scenario per fixture record so each record gets its
// own fresh session.
func All(fx *fixtures.Set) []runner.Scenario {
	var suite []runner.Scenario
	suite = append(suite, LoginScenarios(fx)...)
	suite = append(suite, InventoryScenarios()...)
	suite = append(suite, CartScenarios()...)
	suite = append(suite, CheckoutScenarios()...)
	suite = append(suite, ProductDetailScenarios()...)
	return suite
}

// checkURLContains asserts that the session's current URL contains
// fragment, recording a failure otherwise.
func checkURLContains(sess *browser.Session, o *harness.Outcome, fragment string) bool {
	url, err := sess.CurrentURL()
	if err != nil {
		o.FailErr(err)
		return false
	}
	return o.Check(strings.Contains(url, fragment), "expected URL containing %q, got %q", fragment, url)
}

func strPtr(s string) *string { return &s }
