// pkg/pages/checkout.go
package pages

import (
	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/locator"
	"github.com/jrx4d/cartwheel/pkg/query"
)

// CheckoutInfo holds the buyer details for the first checkout step. A nil
// field is left untouched so scenarios can submit partially filled forms.
type CheckoutInfo struct {
	FirstName  *string
	LastName   *string
	PostalCode *string
}

// CheckoutPage wraps all three checkout screens: information, overview
// and confirmation. The flow shares a session, so one page object covers
// the whole funnel.
type CheckoutPage struct {
	page

	pageTitle      locator.Locator
	firstNameInput locator.Locator
	lastNameInput  locator.Locator
	postalInput    locator.Locator
	continueBtn    locator.Locator
	cancelBtn      locator.Locator
	finishBtn      locator.Locator
	backBtn        locator.Locator
	errorBanner    locator.Locator
	overviewList   locator.Locator
	itemPrices     locator.Locator
	subtotalLabel  locator.Locator
	taxLabel       locator.Locator
	totalLabel     locator.Locator
	completeHeader locator.Locator
}

// NewCheckoutPage binds a checkout page object to a session.
func NewCheckoutPage(sess *browser.Session, q *query.Query) *CheckoutPage {
	return &CheckoutPage{
		page: page{sess: sess, q: q},

		pageTitle:      locator.ClassName("title"),
		firstNameInput: locator.ID("first-name"),
		lastNameInput:  locator.ID("last-name"),
		postalInput:    locator.ID("postal-code"),
		continueBtn:    locator.ID("continue"),
		cancelBtn:      locator.ID("cancel"),
		finishBtn:      locator.ID("finish"),
		backBtn:        locator.ID("back-to-products"),
		errorBanner:    locator.CSS("h3[data-test='error']"),
		overviewList:   locator.ClassName("cart_list"),
		itemPrices:     locator.ClassName("inventory_item_price"),
		subtotalLabel:  locator.ClassName("summary_subtotal_label"),
		taxLabel:       locator.ClassName("summary_tax_label"),
		totalLabel:     locator.ClassName("summary_total_label"),
		completeHeader: locator.ClassName("complete-header"),
	}
}

// Title returns the page heading text.
func (p *CheckoutPage) Title() (string, error) {
	return p.textOf(p.pageTitle)
}

// CartBadgeCount reads the header badge; 0 when it is absent.
func (p *CheckoutPage) CartBadgeCount() (int, error) {
	return p.badgeCount()
}

// FillInformation fills the buyer detail form, skipping nil fields.
func (p *CheckoutPage) FillInformation(info CheckoutInfo) error {
	if info.FirstName != nil {
		if err := p.fillField(p.firstNameInput, *info.FirstName); err != nil {
			return err
		}
	}
	if info.LastName != nil {
		if err := p.fillField(p.lastNameInput, *info.LastName); err != nil {
			return err
		}
	}
	if info.PostalCode != nil {
		if err := p.fillField(p.postalInput, *info.PostalCode); err != nil {
			return err
		}
	}
	return nil
}

// FieldsVisible reports whether all three buyer detail inputs are shown.
func (p *CheckoutPage) FieldsVisible() (bool, error) {
	for _, loc := range []locator.Locator{p.firstNameInput, p.lastNameInput, p.postalInput} {
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

// Continue submits the buyer detail form.
func (p *CheckoutPage) Continue() error {
	return p.clickOne(p.continueBtn)
}

// Cancel leaves the current checkout step.
func (p *CheckoutPage) Cancel() error {
	return p.clickOne(p.cancelBtn)
}

// Finish places the order from the overview step.
func (p *CheckoutPage) Finish() error {
	return p.clickOne(p.finishBtn)
}

// BackToProducts returns to the inventory page from the confirmation
// screen.
func (p *CheckoutPage) BackToProducts() error {
	return p.clickOne(p.backBtn)
}

// ErrorMessage returns the validation banner text. The banner only
// renders after a rejected submit, so an absent banner is an
// ElementNotFoundError.
func (p *CheckoutPage) ErrorMessage() (string, error) {
	return p.textOf(p.errorBanner)
}

// LineItemPrices reads the per-item prices shown on the overview step,
// parsed to cents. Unparseable price text contributes zero.
func (p *CheckoutPage) LineItemPrices() ([]Cents, error) {
	handles, err := p.q.ResolveAll(p.ctx(), p.overviewList, p.itemPrices, p.q.Standard())
	if err != nil {
		return nil, err
	}
	prices := make([]Cents, len(handles))
	for i, h := range handles {
		raw, err := h.Text(p.ctx())
		if err != nil {
			return nil, err
		}
		prices[i] = parseCents(raw)
	}
	return prices, nil
}

// Summary reads the subtotal, tax and total labels from the overview
// step, parsed to cents.
func (p *CheckoutPage) Summary() (SummaryValues, error) {
	var s SummaryValues
	raw, err := p.textOf(p.subtotalLabel)
	if err != nil {
		return s, err
	}
	s.Subtotal = parseCents(raw)

	raw, err = p.textOf(p.taxLabel)
	if err != nil {
		return s, err
	}
	s.Tax = parseCents(raw)

	raw, err = p.textOf(p.totalLabel)
	if err != nil {
		return s, err
	}
	s.Total = parseCents(raw)
	return s, nil
}

// ConfirmationMessage returns the completion header text shown after a
// finished order.
func (p *CheckoutPage) ConfirmationMessage() (string, error) {
	return p.textOf(p.completeHeader)
}
