// pkg/scenarios/product_detail.go
package scenarios

import (
	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/harness"
	"github.com/jrx4d/cartwheel/pkg/pages"
	"github.com/jrx4d/cartwheel/pkg/runner"
)

// ProductDetailScenarios covers the single-product page reached from the
// inventory listing: navigation, component visibility, the back button
// and the add/remove toggle.
func ProductDetailScenarios() []runner.Scenario {
	return []runner.Scenario{
		{Name: "product_detail/navigate", LoggedIn: true, Run: runDetailNavigate},
		{Name: "product_detail/components_visible", LoggedIn: true, Run: runDetailComponents},
		{Name: "product_detail/back_button", LoggedIn: true, Run: runDetailBackButton},
		{Name: "product_detail/add_remove_toggle", LoggedIn: true, Run: runDetailAddRemove},
		{Name: "product_detail/toggle_round_trips", LoggedIn: true, Run: runDetailToggleRoundTrips},
	}
}

// openFirstDetail clicks through to the detail page of the first listed
// item and returns the name the inventory showed for it.
func openFirstDetail(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) (*pages.ProductDetailPage, string, bool) {
	q := ctx.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)

	name, err := inv.ItemNameAt(0)
	if err != nil {
		o.FailErr(err)
		return nil, "", false
	}
	if err := inv.OpenItemByIndex(0); err != nil {
		o.FailErr(err)
		return nil, "", false
	}
	return pages.NewProductDetailPage(sess, q), name, true
}

func runDetailNavigate(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	detail, expectedName, ok := openFirstDetail(ctx, sess, o)
	if !ok {
		return
	}
	if !checkURLContains(sess, o, "inventory-item.html") {
		return
	}

	actualName, err := detail.Name()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(actualName == expectedName,
		"detail page shows %q, inventory listed %q", actualName, expectedName)
}

func runDetailComponents(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	detail, _, ok := openFirstDetail(ctx, sess, o)
	if !ok {
		return
	}

	checks := []struct {
		label string
		probe func() (bool, error)
	}{
		{"price", detail.PriceDisplayed},
		{"description", detail.DescriptionDisplayed},
		{"back button", detail.BackDisplayed},
		{"product image", detail.ImageLoaded},
	}
	for _, c := range checks {
		shown, err := c.probe()
		if err != nil {
			o.Failf("%s visibility: %v", c.label, err)
			return
		}
		o.Check(shown, "%s is not displayed on the detail page", c.label)
	}
}

func runDetailBackButton(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	detail, _, ok := openFirstDetail(ctx, sess, o)
	if !ok {
		return
	}
	if err := detail.Back(); err != nil {
		o.FailErr(err)
		return
	}
	checkURLContains(sess, o, "inventory.html")
}

func runDetailAddRemove(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	detail, _, ok := openFirstDetail(ctx, sess, o)
	if !ok {
		return
	}

	initial, err := detail.CartBadgeCount()
	if err != nil {
		o.FailErr(err)
		return
	}

	if err := detail.ToggleCart(); err != nil {
		o.FailErr(err)
		return
	}
	after, err := detail.CartBadgeCount()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(after == initial+1, "badge should rise from %d to %d, got %d", initial, initial+1, after)

	label, err := detail.ButtonLabel()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(label == "Remove", "button should read %q after adding, got %q", "Remove", label)

	if err := detail.ToggleCart(); err != nil {
		o.FailErr(err)
		return
	}
	final, err := detail.CartBadgeCount()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(final == initial, "badge should fall back to %d, got %d", initial, final)

	label, err = detail.ButtonLabel()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(label == "Add to cart", "button should read %q after removing, got %q", "Add to cart", label)
}

// Toggling is expected to be symmetric however often it repeats: every
// add-then-remove cycle must leave the badge where it started.
func runDetailToggleRoundTrips(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	detail, _, ok := openFirstDetail(ctx, sess, o)
	if !ok {
		return
	}

	initial, err := detail.CartBadgeCount()
	if err != nil {
		o.FailErr(err)
		return
	}

	for cycle := 1; cycle <= 3; cycle++ {
		if err := detail.ToggleCart(); err != nil {
			o.FailErr(err)
			return
		}
		raised, err := detail.CartBadgeCount()
		if err != nil {
			o.FailErr(err)
			return
		}
		o.Check(raised == initial+1,
			"cycle %d: badge should read %d after adding, got %d", cycle, initial+1, raised)

		if err := detail.ToggleCart(); err != nil {
			o.FailErr(err)
			return
		}
		settled, err := detail.CartBadgeCount()
		if err != nil {
			o.FailErr(err)
			return
		}
		o.Check(settled == initial,
			"cycle %d: badge should return to %d, got %d", cycle, initial, settled)
	}
}
