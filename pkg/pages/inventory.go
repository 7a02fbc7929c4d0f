// pkg/pages/inventory.go
package pages

import (
	"errors"

	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/locator"
	"github.com/jrx4d/cartwheel/pkg/query"
)

// ItemSummary is one listed product as rendered on the inventory page.
// The image handle stays valid only until the next navigation.
type ItemSummary struct {
	Name        string
	Description string
	PriceText   string
	Image       query.Handle
}

// InventoryPage wraps the product listing screen.
type InventoryPage struct {
	page

	pageTitle    locator.Locator
	openSidebar  locator.Locator
	closeSidebar locator.Locator
	sortControl  locator.Locator
	cartLink     locator.Locator
	itemList     locator.Locator
	items        locator.Locator
	addButtons   locator.Locator
	itemImages   locator.Locator
	itemNames    locator.Locator
	itemDescs    locator.Locator
	itemPrices   locator.Locator
}

// NewInventoryPage binds an inventory page object to a session.
func NewInventoryPage(sess *browser.Session, q *query.Query) *InventoryPage {
	return &InventoryPage{
		page: page{sess: sess, q: q},

		pageTitle:    locator.ClassName("title"),
		openSidebar:  locator.ID("react-burger-menu-btn"),
		closeSidebar: locator.ID("react-burger-cross-btn"),
		sortControl:  locator.ClassName("product_sort_container"),
		cartLink:     locator.ClassName("shopping_cart_link"),
		itemList:     locator.ClassName("inventory_list"),
		items:        locator.ClassName("inventory_item"),
		addButtons:   locator.CSS("button.btn_inventory"),
		itemImages:   locator.CSS("img.inventory_item_img"),
		itemNames:    locator.ClassName("inventory_item_name"),
		itemDescs:    locator.ClassName("inventory_item_desc"),
		itemPrices:   locator.ClassName("inventory_item_price"),
	}
}

// Title returns the page heading text.
func (p *InventoryPage) Title() (string, error) {
	return p.textOf(p.pageTitle)
}

// OpenSidebar opens the burger menu.
func (p *InventoryPage) OpenSidebar() error {
	return p.clickOne(p.openSidebar)
}

// CloseSidebar closes the burger menu.
func (p *InventoryPage) CloseSidebar() error {
	return p.clickOne(p.closeSidebar)
}

// OpenCart clicks through to the cart page.
func (p *InventoryPage) OpenCart() error {
	return p.clickOne(p.cartLink)
}

// CartBadgeCount reads the header badge; 0 when it is absent.
func (p *InventoryPage) CartBadgeCount() (int, error) {
	return p.badgeCount()
}

// InventoryCount returns how many products are listed.
func (p *InventoryPage) InventoryCount() (int, error) {
	handles, err := p.q.ResolveAll(p.ctx(), p.itemList, p.items, p.q.Standard())
	if err != nil {
		return 0, err
	}
	return len(handles), nil
}

// AddItemByName clicks the add/remove button of the item whose visible
// title matches name exactly. The locator is built from the runtime name
// as an escaped value; a missing title is an ItemNotFoundError.
func (p *InventoryPage) AddItemByName(name string) error {
	loc := locator.ForItemNamed(name)
	h, err := p.q.ResolveClickable(p.ctx(), loc, p.q.Standard())
	if err != nil {
		var notFound *query.ElementNotFoundError
		if errors.As(err, &notFound) {
			return &query.ItemNotFoundError{Criterion: name}
		}
		return err
	}
	return h.Click(p.ctx())
}

// AddItemByIndex clicks the nth add-to-cart button in display order.
func (p *InventoryPage) AddItemByIndex(index int) error {
	buttons, err := p.q.ResolveAll(p.ctx(), p.itemList, p.addButtons, p.q.Standard())
	if err != nil {
		return err
	}
	if index < 0 || index >= len(buttons) {
		return &query.IndexOutOfRangeError{Index: index, Length: len(buttons)}
	}
	return buttons[index].Click(p.ctx())
}

// ItemNameAt returns the title of the nth listed item without clicking.
func (p *InventoryPage) ItemNameAt(index int) (string, error) {
	names, err := p.q.ResolveAll(p.ctx(), p.itemList, p.itemNames, p.q.Standard())
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(names) {
		return "", &query.IndexOutOfRangeError{Index: index, Length: len(names)}
	}
	return names[index].Text(p.ctx())
}

// OpenItemByIndex clicks the nth item title, navigating to its detail page.
func (p *InventoryPage) OpenItemByIndex(index int) error {
	names, err := p.q.ResolveAll(p.ctx(), p.itemList, p.itemNames, p.q.Standard())
	if err != nil {
		return err
	}
	if index < 0 || index >= len(names) {
		return &query.IndexOutOfRangeError{Index: index, Length: len(names)}
	}
	return names[index].Click(p.ctx())
}

// SortBy selects a sort option by its value attribute.
func (p *InventoryPage) SortBy(optionValue string) error {
	h, err := p.q.ResolveOne(p.ctx(), p.sortControl, p.q.Standard())
	if err != nil {
		return err
	}
	return h.SelectByValue(p.ctx(), optionValue)
}

// ActiveSortLabel returns the label of the currently selected sort option.
func (p *InventoryPage) ActiveSortLabel() (string, error) {
	h, err := p.q.ResolveOne(p.ctx(), p.sortControl, p.q.Standard())
	if err != nil {
		return "", err
	}
	return h.SelectedText(p.ctx())
}

// AllItemsSummary gathers name, description, price and image for every
// listed item in a single synchronized pass. The four field collections
// must agree in length; a mismatch means the page was read mid-render and
// is an InconsistentPageStateError, never a silent truncation.
func (p *InventoryPage) AllItemsSummary() ([]ItemSummary, error) {
	names, err := p.q.ResolveAll(p.ctx(), p.itemList, p.itemNames, p.q.Standard())
	if err != nil {
		return nil, err
	}
	descs, err := p.q.ResolveAll(p.ctx(), p.itemList, p.itemDescs, p.q.Standard())
	if err != nil {
		return nil, err
	}
	prices, err := p.q.ResolveAll(p.ctx(), p.itemList, p.itemPrices, p.q.Standard())
	if err != nil {
		return nil, err
	}
	images, err := p.q.ResolveAll(p.ctx(), p.itemList, p.itemImages, p.q.Standard())
	if err != nil {
		return nil, err
	}

	if len(descs) != len(names) || len(prices) != len(names) || len(images) != len(names) {
		return nil, &query.InconsistentPageStateError{
			Detail: "item field collections differ in length",
			Counts: map[string]int{
				"names":        len(names),
				"descriptions": len(descs),
				"prices":       len(prices),
				"images":       len(images),
			},
		}
	}

	summaries := make([]ItemSummary, len(names))
	for i := range names {
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
		summaries[i] = ItemSummary{
			Name:        name,
			Description: desc,
			PriceText:   price,
			Image:       images[i],
		}
	}
	return summaries, nil
}
