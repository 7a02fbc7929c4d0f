// pkg/pages/pages.go

// Package pages implements the page objects for the storefront under
// test. Each page object exposes only its own screen's operations, owns a
// fixed set of locators, and holds no state beyond the session reference;
// every call re-resolves its elements, so nothing survives a navigation.
package pages

import (
	"context"
	"strconv"
	"strings"

	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/locator"
	"github.com/jrx4d/cartwheel/pkg/query"
)

// shoppingCartBadge is shared by every screen that renders the header
// cart icon. The badge does not exist at all when the cart is empty.
var shoppingCartBadge = locator.ClassName("shopping_cart_badge")

// page carries the session binding common to all page objects.
type page struct {
	sess *browser.Session
	q    *query.Query
}

func (p page) ctx() context.Context {
	return p.sess.Context()
}

// badgeCount resolves the cart badge under the short policy. An absent
// badge means an empty cart and reads as 0, indistinguishable from a
// badge explicitly showing "0". A present but non-numeric badge is a
// MalformedDataError.
func (p page) badgeCount() (int, error) {
	h, ok, err := p.q.ResolveOptional(p.ctx(), shoppingCartBadge)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	text, err := h.Text(p.ctx())
	if err != nil {
		return 0, err
	}

	n, convErr := strconv.Atoi(strings.TrimSpace(text))
	if convErr != nil {
		return 0, &query.MalformedDataError{Raw: text, Expected: "integer badge count"}
	}
	return n, nil
}

// clickOne resolves a clickable element under the standard policy and
// clicks it.
func (p page) clickOne(loc locator.Locator) error {
	h, err := p.q.ResolveClickable(p.ctx(), loc, p.q.Standard())
	if err != nil {
		return err
	}
	return h.Click(p.ctx())
}

// textOf resolves a visible element under the standard policy and returns
// its rendered text.
func (p page) textOf(loc locator.Locator) (string, error) {
	h, err := p.q.ResolveOne(p.ctx(), loc, p.q.Standard())
	if err != nil {
		return "", err
	}
	return h.Text(p.ctx())
}

// fillField clears an input and types the given value.
func (p page) fillField(loc locator.Locator, value string) error {
	h, err := p.q.ResolveOne(p.ctx(), loc, p.q.Standard())
	if err != nil {
		return err
	}
	if err := h.Clear(p.ctx()); err != nil {
		return err
	}
	return h.SendKeys(p.ctx(), value)
}
