package e2e

import (
	"testing"

	"github.com/jrx4d/cartwheel/pkg/scenarios"
)

// TestProductDetail covers the single-product page: navigation, component
// visibility, the back button and the add/remove toggle.
func TestProductDetail(t *testing.T) {
	requireE2E(t)
	runAll(t, scenarios.ProductDetailScenarios())
}
