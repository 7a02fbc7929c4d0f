package e2e

import (
	"testing"

	"github.com/jrx4d/cartwheel/pkg/scenarios"
)

// TestInventory covers the product listing: display, adding items by name
// and by index, sorting, cart navigation and the sidebar menu.
func TestInventory(t *testing.T) {
	requireE2E(t)
	runAll(t, scenarios.InventoryScenarios())
}
