// pkg/scenarios/inventory.go
package scenarios

import (
	"fmt"
	"strings"

	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/harness"
	"github.com/jrx4d/cartwheel/pkg/pages"
	"github.com/jrx4d/cartwheel/pkg/runner"
)

// InventoryScenarios covers the product listing: display, adding items by
// name and by index, sorting, cart navigation and the sidebar menu. All
// cases start from an authenticated session.
func InventoryScenarios() []runner.Scenario {
	return []runner.Scenario{
		{Name: "inventory/display", LoggedIn: true, Run: runInventoryDisplay},
		{Name: "inventory/catalog_integrity", LoggedIn: true, Run: runCatalogIntegrity},
		{Name: "inventory/add_item_by_name", LoggedIn: true, Run: runAddItemByName},
		{Name: "inventory/add_item_by_index", LoggedIn: true, Run: runAddItemByIndex},
		{Name: "inventory/sort_products", LoggedIn: true, Run: runSortProducts},
		{Name: "inventory/open_cart", LoggedIn: true, Run: runOpenCart},
		{Name: "inventory/sidebar_menu", LoggedIn: true, Run: runSidebarMenu},
	}
}

func runInventoryDisplay(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	inv := pages.NewInventoryPage(sess, ctx.NewQuery(sess))

	title, err := inv.Title()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(title == "Products", "expected page title %q, got %q", "Products", title)

	count, err := inv.InventoryCount()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(count > 0, "expected a non-empty product list, got %d items", count)
}

// runCatalogIntegrity reads every listed item in one synchronized pass
// and checks each has a name, a description, a dollar price and a fully
// loaded image.
func runCatalogIntegrity(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	inv := pages.NewInventoryPage(sess, ctx.NewQuery(sess))

	items, err := inv.AllItemsSummary()
	if err != nil {
		o.FailErr(err)
		return
	}
	if !o.Check(len(items) > 0, "expected a non-empty product list") {
		return
	}

	for i, item := range items {
		o.Check(item.Name != "", "item %d has an empty name", i)
		o.Check(item.Description != "", "item %d (%s) has an empty description", i, item.Name)
		o.Check(strings.Contains(item.PriceText, "$"),
			"item %d (%s) price %q is missing a dollar sign", i, item.Name, item.PriceText)

		src, hasSrc := item.Image.Attribute("src")
		o.Check(hasSrc && src != "", "item %d (%s) image has no src", i, item.Name)

		loaded, err := item.Image.ImageLoaded(sess.Context())
		if err != nil {
			o.Failf("item %d (%s) image probe: %v", i, item.Name, err)
			continue
		}
		o.Check(loaded, "item %d (%s) image did not load", i, item.Name)
	}
}

func runAddItemByName(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	inv := pages.NewInventoryPage(sess, ctx.NewQuery(sess))

	itemsToAdd := []string{
		"Sauce Labs Fleece Jacket",
		"Sauce Labs Bike Light",
		"Sauce Labs Bolt T-Shirt",
	}

	initial, err := inv.CartBadgeCount()
	if err != nil {
		o.FailErr(err)
		return
	}

	for _, name := range itemsToAdd {
		if err := inv.AddItemByName(name); err != nil {
			o.Failf("add %q: %v", name, err)
			return
		}
	}

	final, err := inv.CartBadgeCount()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(final == initial+len(itemsToAdd),
		"expected badge %d after adding %d items, got %d", initial+len(itemsToAdd), len(itemsToAdd), final)
}

func runAddItemByIndex(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	inv := pages.NewInventoryPage(sess, ctx.NewQuery(sess))

	const toAdd = 3

	initial, err := inv.CartBadgeCount()
	if err != nil {
		o.FailErr(err)
		return
	}

	for i := 0; i < toAdd; i++ {
		if err := inv.AddItemByIndex(i); err != nil {
			o.Failf("add item at index %d: %v", i, err)
			return
		}
	}

	final, err := inv.CartBadgeCount()
	if err != nil {
		o.FailErr(err)
		return
	}
	o.Check(final == initial+toAdd, "expected badge %d, got %d", initial+toAdd, final)
}

func runSortProducts(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	inv := pages.NewInventoryPage(sess, ctx.NewQuery(sess))

	options := []struct {
		value string
		label string
	}{
		{"za", "Name (Z to A)"},
		{"lohi", "Price (low to high)"},
		{"hilo", "Price (high to low)"},
		{"az", "Name (A to Z)"},
	}

	for _, opt := range options {
		if err := inv.SortBy(opt.value); err != nil {
			o.Failf("sort by %q: %v", opt.value, err)
			return
		}
		active, err := inv.ActiveSortLabel()
		if err != nil {
			o.FailErr(err)
			return
		}
		if !o.Check(active == opt.label, "sort %q not active, dropdown shows %q", opt.value, active) {
			return
		}
	}
}

func runOpenCart(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	inv := pages.NewInventoryPage(sess, ctx.NewQuery(sess))

	if err := inv.OpenCart(); err != nil {
		o.FailErr(err)
		return
	}
	checkURLContains(sess, o, "cart.html")
}

func runSidebarMenu(ctx *harness.TestContext, sess *browser.Session, o *harness.Outcome) {
	inv := pages.NewInventoryPage(sess, ctx.NewQuery(sess))

	if err := inv.OpenSidebar(); err != nil {
		o.FailErr(err)
		return
	}
	if err := inv.CloseSidebar(); err != nil {
		o.Failf("close sidebar after opening: %v", err)
	}
}

// addItemsByIndex is shared setup for cart and checkout cases.
func addItemsByIndex(inv *pages.InventoryPage, n int) error {
	for i := 0; i < n; i++ {
		if err := inv.AddItemByIndex(i); err != nil {
			return fmt.Errorf("add item at index %d: %w", i, err)
		}
	}
	return nil
}
