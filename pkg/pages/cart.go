// pkg/pages/cart.go
package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/locator"
	"github.com/jrx4d/cartwheel/pkg/query"
)

// CartSnapshot is one line of the cart as rendered.
type CartSnapshot struct {
	Quantity    int
	Name        string
	Description string
	PriceText   string
}

// CartPage wraps the shopping cart screen.
type CartPage struct {
	page

	pageTitle   locator.Locator
	cartList    locator.Locator
	cartItems   locator.Locator
	checkoutBtn locator.Locator
	continueBtn locator.Locator
	quantities  locator.Locator
	itemNames   locator.Locator
	itemDescs   locator.Locator
	itemPrices  locator.Locator
}

// NewCartPage binds a cart page object to a session.
func NewCartPage(sess *browser.Session, q *query.Query) *CartPage {
	return &CartPage{
		page: page{sess: sess, q: q},

		pageTitle:   locator.ClassName("title"),
		cartList:    locator.ClassName("cart_list"),
		cartItems:   locator.ClassName("cart_item"),
		checkoutBtn: locator.ID("checkout"),
		continueBtn: locator.ID("continue-shopping"),
		quantities:  locator.ClassName("cart_quantity"),
		itemNames:   locator.ClassName("inventory_item_name"),
		itemDescs:   locator.ClassName("inventory_item_desc"),
		itemPrices:  locator.ClassName("inventory_item_price"),
	}
}

// Title returns the page heading text.
func (p *CartPage) Title() (string, error) {
	return p.textOf(p.pageTitle)
}

// CartBadgeCount reads the header badge; 0 when it is absent.
func (p *CartPage) CartBadgeCount() (int, error) {
	return p.badgeCount()
}

// ItemCount returns how many lines the cart currently holds. An empty
// cart is a count of zero, not an error.
func (p *CartPage) ItemCount() (int, error) {
	handles, err := p.q.ResolveAll(p.ctx(), p.cartList, p.cartItems, p.q.Standard())
	if err != nil {
		return 0, err
	}
	return len(handles), nil
}

// Items reads every cart line in display order. An empty cart yields an
// empty slice. Mismatched field collections are an
// InconsistentPageStateError.
func (p *CartPage) Items() ([]CartSnapshot, error) {
	lines, err := p.q.ResolveAll(p.ctx(), p.cartList, p.cartItems, p.q.Standard())
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []CartSnapshot{}, nil
	}

	quantities, err := p.q.ResolveAll(p.ctx(), p.cartList, p.quantities, p.q.Standard())
	if err != nil {
		return nil, err
	}
	names, err := p.q.ResolveAll(p.ctx(), p.cartList, p.itemNames, p.q.Standard())
	if err != nil {
		return nil, err
	}
	descs, err := p.q.ResolveAll(p.ctx(), p.cartList, p.itemDescs, p.q.Standard())
	if err != nil {
		return nil, err
	}
	prices, err := p.q.ResolveAll(p.ctx(), p.cartList, p.itemPrices, p.q.Standard())
	if err != nil {
		return nil, err
	}

	n := len(lines)
	if len(quantities) != n || len(names) != n || len(descs) != n || len(prices) != n {
		return nil, &query.InconsistentPageStateError{
			Detail: "cart field collections differ in length",
			Counts: map[string]int{
				"lines":        n,
				"quantities":   len(quantities),
				"names":        len(names),
				"descriptions": len(descs),
				"prices":       len(prices),
			},
		}
	}

	snapshots := make([]CartSnapshot, n)
	for i := 0; i < n; i++ {
		rawQty, err := quantities[i].Text(p.ctx())
		if err != nil {
			return nil, err
		}
		qty, err := strconv.Atoi(strings.TrimSpace(rawQty))
		if err != nil {
			return nil, &query.MalformedDataError{Raw: rawQty, Expected: "integer quantity"}
		}
		name, err := names[i].Text(p.ctx())
		if err != nil {
			return nil, err
		}
		desc, err := descs[i].Text(p.ctx())
		if err != nil {
			return nil, err
		}
		price, err := prices[i].Text(p.ctx())
		if err != nil {
			return nil, err
		}
		snapshots[i] = CartSnapshot{Quantity: qty, Name: name, Description: desc, PriceText: price}
	}
	return snapshots, nil
}

// ItemAt returns the cart line at index in display order.
func (p *CartPage) ItemAt(index int) (CartSnapshot, error) {
	items, err := p.Items()
	if err != nil {
		return CartSnapshot{}, err
	}
	if index < 0 || index >= len(items) {
		return CartSnapshot{}, &query.IndexOutOfRangeError{Index: index, Length: len(items)}
	}
	return items[index], nil
}

// RemoveItemAt clicks the remove button of the line at index. The
// button is addressed through its enclosing line so removals stay
// aligned with display order even as lines disappear.
func (p *CartPage) RemoveItemAt(index int) error {
	lines, err := p.q.ResolveAll(p.ctx(), p.cartList, p.cartItems, p.q.Standard())
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return &query.IndexOutOfRangeError{Index: index, Length: len(lines)}
	}
	// XPath positions are 1-based.
	loc := locator.XPath(fmt.Sprintf("(//div[@class='cart_item'])[%d]//button[contains(@class,'cart_button')]", index+1))
	return p.clickOne(loc)
}

// ActionButtonsVisible reports whether both the continue-shopping and
// checkout buttons are shown. They render even on an empty cart.
func (p *CartPage) ActionButtonsVisible() (bool, error) {
	for _, loc := range []locator.Locator{p.continueBtn, p.checkoutBtn} {
		h, err := p.q.ResolveOne(p.ctx(), loc, p.q.Standard())
		if err != nil {
			return false, err
		}
		shown, err := h.Displayed(p.ctx())
		if err != nil {
			return false, err
		}
		if !shown {
			return false, nil
		}
	}
	return true, nil
}

// IsCheckoutEnabled reports whether the checkout button accepts clicks.
func (p *CartPage) IsCheckoutEnabled() (bool, error) {
	h, err := p.q.ResolveOne(p.ctx(), p.checkoutBtn, p.q.Standard())
	if err != nil {
		return false, err
	}
	return h.Enabled(p.ctx())
}

// Checkout proceeds to the first checkout step.
func (p *CartPage) Checkout() error {
	return p.clickOne(p.checkoutBtn)
}

// ContinueShopping returns to the inventory page.
func (p *CartPage) ContinueShopping() error {
	return p.clickOne(p.continueBtn)
}
