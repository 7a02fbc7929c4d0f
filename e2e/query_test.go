package e2e

import (
	"errors"
	"testing"
	"time"

	"github.com/jrx4d/cartwheel/pkg/locator"
	"github.com/jrx4d/cartwheel/pkg/pages"
	"github.com/jrx4d/cartwheel/pkg/query"
)

// Collections are read once their container settles: an empty set comes
// back right away as an empty slice, and a container that never renders
// is a real timeout rather than a silent empty result.
func TestCollectionResolution(t *testing.T) {
	requireE2E(t)

	sess, err := tc.SetupLoggedIn()
	if err != nil {
		t.Fatalf("session setup: %v", err)
	}
	defer sess.Close()

	q := tc.NewQuery(sess)
	inv := pages.NewInventoryPage(sess, q)
	if err := inv.OpenCart(); err != nil {
		t.Fatalf("open cart: %v", err)
	}

	start := time.Now()
	items, err := q.ResolveAll(sess.Context(),
		locator.ClassName("cart_list"), locator.ClassName("cart_item"), q.Standard())
	if err != nil {
		t.Fatalf("resolve cart items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected an empty cart, got %d item(s)", len(items))
	}
	if elapsed := time.Since(start); elapsed >= q.Standard().Timeout {
		t.Errorf("empty collection read took %v, should return once the container settles", elapsed)
	}

	_, err = q.ResolveAll(sess.Context(),
		locator.ID("no-such-container"), locator.ClassName("cart_item"), q.Short())
	var notFound *query.ElementNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("missing anchor should surface ElementNotFoundError, got %v", err)
	}
}
