// pkg/pages/product_detail.go
package pages

import (
	"errors"

	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/locator"
	"github.com/jrx4d/cartwheel/pkg/query"
)

// ProductDetailPage wraps the single-product screen reached by clicking
// an item name or image on the inventory page.
type ProductDetailPage struct {
	page

	nameLabel   locator.Locator
	priceLabel  locator.Locator
	descLabel   locator.Locator
	detailImage locator.Locator
	cartButton  locator.Locator
	backBtn     locator.Locator
}

// NewProductDetailPage binds a product detail page object to a session.
func NewProductDetailPage(sess *browser.Session, q *query.Query) *ProductDetailPage {
	return &ProductDetailPage{
		page: page{sess: sess, q: q},

		nameLabel:   locator.ClassName("inventory_details_name"),
		priceLabel:  locator.ClassName("inventory_details_price"),
		descLabel:   locator.ClassName("inventory_details_desc"),
		detailImage: locator.CSS("img.inventory_details_img"),
		cartButton:  locator.CSS("button.btn_inventory"),
		backBtn:     locator.ID("back-to-products"),
	}
}

// Name returns the displayed product title.
func (p *ProductDetailPage) Name() (string, error) {
	return p.textOf(p.nameLabel)
}

// CartBadgeCount reads the header badge; 0 when it is absent.
func (p *ProductDetailPage) CartBadgeCount() (int, error) {
	return p.badgeCount()
}

// PriceDisplayed reports whether the price element is visible.
func (p *ProductDetailPage) PriceDisplayed() (bool, error) {
	return p.displayed(p.priceLabel)
}

// DescriptionDisplayed reports whether the description element is
// visible.
func (p *ProductDetailPage) DescriptionDisplayed() (bool, error) {
	return p.displayed(p.descLabel)
}

// BackDisplayed reports whether the back-to-products button is visible.
func (p *ProductDetailPage) BackDisplayed() (bool, error) {
	return p.displayed(p.backBtn)
}

// ImageLoaded reports whether the detail image finished loading with
// real pixel data, not just whether the element exists.
func (p *ProductDetailPage) ImageLoaded() (bool, error) {
	h, err := p.q.ResolveOne(p.ctx(), p.detailImage, p.q.Standard())
	if err != nil {
		return false, err
	}
	return h.ImageLoaded(p.ctx())
}

// ToggleCart clicks the add/remove button.
func (p *ProductDetailPage) ToggleCart() error {
	return p.clickOne(p.cartButton)
}

// ButtonLabel returns the current add/remove button caption.
func (p *ProductDetailPage) ButtonLabel() (string, error) {
	return p.textOf(p.cartButton)
}

// Back returns to the inventory page.
func (p *ProductDetailPage) Back() error {
	return p.clickOne(p.backBtn)
}

// displayed probes a component that may genuinely be missing, so it
// resolves under the short policy and treats absence as false rather
// than an error.
func (p *ProductDetailPage) displayed(loc locator.Locator) (bool, error) {
	h, err := p.q.ResolveOne(p.ctx(), loc, p.q.Short())
	if err != nil {
		var notFound *query.ElementNotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return h.Displayed(p.ctx())
}
