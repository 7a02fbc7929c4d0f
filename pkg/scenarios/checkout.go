// pkg/scenarios/checkout.go
package scenarios

import (
	"math"
	"strings"

	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/harness"
	"github.com/jrx4d/cartwheel/pkg/pages"
	"github.com/jrx4d/cartwheel/pkg/runner"
)

// CheckoutScenarios covers the three-step checkout funnel: information
// form validation, overview arithmetic and the finish/cancel paths.
func CheckoutScenarios() []runner.Scenario {
	return []runner.Scenario{
		{Name: "checkout/access_information", LoggedIn: true, Run: runCheckoutAccess},
		{Name: "checkout/information_fields_visible", LoggedIn: true, Run: runCheckoutFieldsVisible},
		{Name: "checkout/fill_information", LoggedIn: true, Run: runCheckoutFillInformation},
		{Name: "checkout/missing_first_name", LoggedIn: true, Run: runCheckoutMissingFirstName},
		{Name: "checkout/missing_last_name", LoggedIn: true, Run: runCheckoutMissingLastName},
		{Name: "checkout/missing_postal_code", LoggedIn: true, Run: runCheckoutMissingPostalCode},
		{Name: "checkout/all_fields_empty", LoggedIn: true, Run: runCheckoutAllEmpty},
		{Name: "checkout/cancel_from_information", LoggedIn: true, Run: runCheckoutCancelStepOne},
		{Name: "checkout/continue_to_overview", LoggedIn: true, Run: runCheckoutContinueToOverview},
		{Name: "checkout/overview_calculations", LoggedIn: true, Run: runCheckoutOverviewCalculations},
		{Name: "checkout/cancel_from_overview", LoggedIn: true, Run: runCheckoutCancelOverview},
		{Name: "checkout/finish_order", LoggedIn: true, Run: runCheckoutFinishOrder},
	}
}

// startCheckout adds the first two listed items and navigates to the
// information step. It returns false after recording the failure when any
// setup step breaks.
func startCheckout(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) (*pages.CheckoutPage, bool) {
	q := ctx.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)
	cart := pages.NewCartPage(sess, q)

	if err := addItemsByIndex(inv, 2); err != nil {
		o.FailErr(err)
		return nil, false
	}
	if err := inv.OpenCart(); err != nil {
		o.FailErr(err)
		return nil, false
	}
	if err := cart.Checkout(); err != nil {
		o.FailErr(err)
		return nil, false
	}
	return pages.NewCheckoutPage(sess, q), true
}

// reachOverview drives the funnel through a filled information form to
// the overview step.
func reachOverview(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) (*pages.CheckoutPage, bool) {
	co, ok := startCheckout(ctx, sess, o)
	if !ok {
		return nil, false
	}

	buyer := ctx.Fixtures().Checkout()
	info := pages.CheckoutInfo{
		FirstName:  strPtr(buyer.FirstName),
		LastName:   strPtr(buyer.LastName),
		PostalCode: strPtr(buyer.PostalCode),
	}
	if err := co.FillInformation(info); err != nil {
		o.FailErr(err)
		return nil, false
	}
	if err := co.Continue(); err != nil {
		o.FailErr(err)
		return nil, false
	}
	if !checkURLContains(sess, o, "checkout-step-two.html") {
		return nil, false
	}
	return co, true
}

func runCheckoutAccess(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	co, ok := startCheckout(ctx, sess, o)
	if !ok {
		return
	}
	if !checkURLContains(sess, o, "checkout-step-one.html") {
		return
	}
	title, err := co.Title()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(title == "Checkout: Your Information",
		"expected page title %q, got %q", "Checkout: Your Information", title)
}

func runCheckoutFieldsVisible(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	co, ok := startCheckout(ctx, sess, o)
	if !ok {
		return
	}
	visible, err := co.FieldsVisible()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(visible, "buyer detail fields should all be visible")
}

func runCheckoutFillInformation(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	co, ok := startCheckout(ctx, sess, o)
	if !ok {
		return
	}
	buyer := ctx.Fixtures().Checkout()
	err := co.FillInformation(pages.CheckoutInfo{
		FirstName:  strPtr(buyer.FirstName),
		LastName:   strPtr(buyer.LastName),
		PostalCode: strPtr(buyer.PostalCode),
	})
	if err != nil {
		o.FailErr(err)
	}
}

// runRejectedSubmit fills a partial form, submits and asserts the
// validation banner text.
func runRejectedSubmit(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome, info pages.CheckoutInfo, wantError string) {
	co, ok := startCheckout(ctx, sess, o)
	if !ok {
		return
	}
	if err := co.FillInformation(info); err != nil {
		o.FailErr(err)
		return
	}
	if err := co.Continue(); err != nil {
		o.FailErr(err)
		return
	}
	banner, err := co.ErrorMessage()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(banner == wantError, "expected validation error %q, got %q", wantError, banner)
}

func runCheckoutMissingFirstName(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	runRejectedSubmit(ctx, sess, o,
		pages.CheckoutInfo{LastName: strPtr("John"), PostalCode: strPtr("123456")},
		"Error: First Name is required")
}

func runCheckoutMissingLastName(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	runRejectedSubmit(ctx, sess, o,
		pages.CheckoutInfo{FirstName: strPtr("Tester"), PostalCode: strPtr("123456")},
		"Error: Last Name is required")
}

func runCheckoutMissingPostalCode(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	runRejectedSubmit(ctx, sess, o,
		pages.CheckoutInfo{FirstName: strPtr("Tester"), LastName: strPtr("John")},
		"Error: Postal Code is required")
}

// First-name validation takes precedence when every field is empty.
func runCheckoutAllEmpty(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	runRejectedSubmit(ctx, sess, o, pages.CheckoutInfo{}, "Error: First Name is required")
}

func runCheckoutCancelStepOne(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	co, ok := startCheckout(ctx, sess, o)
	if !ok {
		return
	}
	if err := co.Cancel(); err != nil {
		o.FailErr(err)
		return
	}
	checkURLContains(sess, o, "cart.html")
}

func runCheckoutContinueToOverview(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	co, ok := reachOverview(ctx, sess, o)
	if !ok {
		return
	}
	title, err := co.Title()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(title == "Checkout: Overview",
		"expected page title %q, got %q", "Checkout: Overview", title)
}

func runCheckoutOverviewCalculations(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	co, ok := reachOverview(ctx, sess, o)
	if !ok {
		return
	}

	prices, err := co.LineItemPrices()
	if err != nil {
		o.FailErr(err)
		return
	}
	summary, err := co.Summary()
	if err != nil {
		o.FailErr(err)
		return
	}

	// All three figures derive from the same displayed cents, so the
	// comparisons are exact. Failures accumulate instead of stopping at
	// the first mismatch.
	var sum pages.Cents
	for _, p := range prices {
		sum += p
	}
	o.Check(sum == summary.Subtotal,
		"subtotal mismatch: line items sum to %s, label shows %s", sum, summary.Subtotal)

	expectedTax := pages.Cents(math.Round(ctx.Fixtures().Checkout().TaxValue * 100))
	o.Check(summary.Tax == expectedTax,
		"tax mismatch: fixture expects %s, label shows %s", expectedTax, summary.Tax)

	o.Check(summary.Subtotal+summary.Tax == summary.Total,
		"total mismatch: %s + %s != %s", summary.Subtotal, summary.Tax, summary.Total)
}

// The overview cancel destination has shifted between cart and inventory
// across site revisions. The case asserts today's observed destination
// and flags the inventory landing as a known issue instead of failing.
func runCheckoutCancelOverview(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	co, ok := reachOverview(ctx, sess, o)
	if !ok {
		return
	}
	if err := co.Cancel(); err != nil {
		o.FailErr(err)
		return
	}

	url, err := sess.CurrentURL()
	if err != nil {
		o.FailErr(err)
		return
	}
	switch {
	case strings.Contains(url, "cart.html"):
		// Expected destination.
	case strings.Contains(url, "inventory.html"):
		o.Flagf("overview cancel landed on the inventory page instead of the cart")
	default:
		o.Failf("overview cancel landed on unexpected page %s", url)
	}
}

func runCheckoutFinishOrder(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	co, ok := reachOverview(ctx, sess, o)
	if !ok {
		return
	}
	if err := co.Finish(); err != nil {
		o.FailErr(err)
		return
	}
	if !checkURLContains(sess, o, "checkout-complete.html") {
		return
	}

	title, err := co.Title()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(title == "Checkout: Complete!",
		"expected page title %q, got %q", "Checkout: Complete!", title)

	message, err := co.ConfirmationMessage()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(message == "Thank you for your order!",
		"expected confirmation %q, got %q", "Thank you for your order!", message)

	if err := co.BackToProducts(); err != nil {
		o.FailErr(err)
		return
	}
	if !checkURLContains(sess, o, "inventory.html") {
		return
	}

	badge, err := co.CartBadgeCount()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(badge == 0, "cart badge should reset to 0 after order completion, got %d", badge)
}
