// pkg/scenarios/cart.go
package scenarios

import (
	"strings"

	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/harness"
	"github.com/jrx4d/cartwheel/pkg/pages"
	"github.com/jrx4d/cartwheel/pkg/runner"
)

// CartScenarios covers the shopping cart: page access, empty-cart
// display, item details, removal, navigation and the empty-cart checkout
// gate.
func CartScenarios() []runner.Scenario {
	return []runner.Scenario{
		{Name: "cart/access_page", LoggedIn: true, Run: runCartAccess},
		{Name: "cart/empty_display", LoggedIn: true, Run: runCartEmptyDisplay},
		{Name: "cart/added_item_count", LoggedIn: true, Run: runCartAddedItemCount},
		{Name: "cart/item_details_match_inventory", LoggedIn: true, Run: runCartItemDetails},
		{Name: "cart/remove_item", LoggedIn: true, Run: runCartRemoveItem},
		{Name: "cart/continue_shopping", LoggedIn: true, Run: runCartContinueShopping},
		{Name: "cart/checkout_navigation", LoggedIn: true, Run: runCartCheckoutNavigation},
		{Name: "cart/remove_all_items", LoggedIn: true, Run: runCartRemoveAll},
		{Name: "cart/empty_cart_checkout_gate", LoggedIn: true, Run: runEmptyCartCheckoutGate},
	}
}

func runCartAccess(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	q := ctx.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)
	cart := pages.NewCartPage(sess, q)

	if err := inv.OpenCart(); err != nil {
		o.FailErr(err)
		return
	}
	title, err := cart.Title()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(title == "Your Cart", "expected page title %q, got %q", "Your Cart", title)
}

func runCartEmptyDisplay(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	q := ctx.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)
	cart := pages.NewCartPage(sess, q)

	if err := inv.OpenCart(); err != nil {
		o.FailErr(err)
		return
	}

	items, err := cart.Items()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(len(items) == 0, "expected an empty cart, found %d item(s)", len(items))

	visible, err := cart.ActionButtonsVisible()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(visible, "continue-shopping and checkout buttons should be visible on an empty cart")
}

func runCartAddedItemCount(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	q := ctx.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)
	cart := pages.NewCartPage(sess, q)

	if err := addItemsByIndex(inv, 2); err != nil {
		o.FailErr(err)
		return
	}
	if err := inv.OpenCart(); err != nil {
		o.FailErr(err)
		return
	}

	count, err := cart.ItemCount()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(count == 2, "expected 2 cart items, got %d", count)
}

func runCartItemDetails(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	q := ctx.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)
	cart := pages.NewCartPage(sess, q)

	// Pick the first listed item dynamically so the case survives
	// catalog reshuffles.
	expectedName, err := inv.ItemNameAt(0)
	if err != nil {
		o.FailErr(err)
		return
	}
	if err := inv.AddItemByName(expectedName); err != nil {
		o.Failf("add %q: %v", expectedName, err)
		return
	}
	if err := inv.OpenCart(); err != nil {
		o.FailErr(err)
		return
	}

	line, err := cart.ItemAt(0)
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(line.Quantity == 1, "expected quantity 1, got %d", line.Quantity)
	o.Check(line.Name == expectedName, "cart shows %q, inventory showed %q", line.Name, expectedName)
	o.Check(strings.Contains(line.PriceText, "$"), "price %q is missing a dollar sign", line.PriceText)
	o.Check(len(line.Description) > 0, "item description is empty")
}

func runCartRemoveItem(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	q := ctx.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)
	cart := pages.NewCartPage(sess, q)

	if err := inv.AddItemByIndex(0); err != nil {
		o.FailErr(err)
		return
	}
	initialBadge, err := inv.CartBadgeCount()
	if err != nil {
		o.FailErr(err)
		return
	}
	if err := inv.OpenCart(); err != nil {
		o.FailErr(err)
		return
	}

	if err := cart.RemoveItemAt(0); err != nil {
		o.FailErr(err)
		return
	}

	items, err := cart.Items()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(len(items) == 0, "expected cart to be empty after removal, found %d item(s)", len(items))

	finalBadge, err := cart.CartBadgeCount()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(finalBadge == initialBadge-1,
		"expected badge %d after removal, got %d", initialBadge-1, finalBadge)
}

func runCartContinueShopping(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	q := ctx.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)
	cart := pages.NewCartPage(sess, q)

	if err := inv.OpenCart(); err != nil {
		o.FailErr(err)
		return
	}
	if err := cart.ContinueShopping(); err != nil {
		o.FailErr(err)
		return
	}

	if !checkURLContains(sess, o, "inventory.html") {
		return
	}
	title, err := inv.Title()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(title == "Products", "expected page title %q, got %q", "Products", title)
}

func runCartCheckoutNavigation(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	q := ctx.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)
	cart := pages.NewCartPage(sess, q)

	if err := addItemsByIndex(inv, 2); err != nil {
		o.FailErr(err)
		return
	}
	if err := inv.OpenCart(); err != nil {
		o.FailErr(err)
		return
	}
	if err := cart.Checkout(); err != nil {
		o.FailErr(err)
		return
	}
	checkURLContains(sess, o, "checkout-step-one.html")
}

func runCartRemoveAll(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	q := ctx.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)
	cart := pages.NewCartPage(sess, q)

	const added = 3
	if err := addItemsByIndex(inv, added); err != nil {
		o.FailErr(err)
		return
	}
	if err := inv.OpenCart(); err != nil {
		o.FailErr(err)
		return
	}

	// Remove the head of the list until nothing is left. The loop is
	// bounded by the number of items added, so a removal that silently
	// fails cannot spin forever.
	for i := 0; i < added; i++ {
		items, err := cart.Items()
		if err != nil {
			o.FailErr(err)
			return
		}
		if len(items) == 0 {
			break
		}
		if err := cart.RemoveItemAt(0); err != nil {
			o.FailErr(err)
			return
		}
	}

	left, err := cart.ItemCount()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(left == 0, "expected cart to be fully empty, found %d item(s)", left)
}

func runEmptyCartCheckoutGate(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	q := ctx.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)
	cart := pages.NewCartPage(sess, q)

	if err := inv.OpenCart(); err != nil {
		o.FailErr(err)
		return
	}

	enabled, err := cart.IsCheckoutEnabled()
	if err != nil {
		o.FailErr(err)
		return
	}
	if !enabled {
		return
	}

	// The button was clickable on an empty cart; one of two outcomes
	// must still hold: the click is a no-op, or it is a bug.
	if err := cart.Checkout(); err != nil {
		o.FailErr(err)
		return
	}
	url, err := sess.CurrentURL()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(!strings.Contains(url, "checkout-step-one.html"),
		"checkout proceeded with an empty cart (landed on %s)", url)
}
