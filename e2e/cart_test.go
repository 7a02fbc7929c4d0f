package e2e

import (
	"testing"

	"github.com/jrx4d/cartwheel/pkg/scenarios"
)

// TestCart covers the shopping cart: access, empty display, line details,
// removal, navigation and the empty-cart checkout gate.
func TestCart(t *testing.T) {
	requireE2E(t)
	runAll(t, scenarios.CartScenarios())
}
