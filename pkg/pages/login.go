// pkg/pages/login.go
package pages

import (
	"github.com/jrx4d/cartwheel/pkg/browser"
	"github.com/jrx4d/cartwheel/pkg/locator"
	"github.com/jrx4d/cartwheel/pkg/query"
)

// LoginPage wraps the storefront sign-in screen.
type LoginPage struct {
	page
	baseURL string

	usernameInput locator.Locator
	passwordInput locator.Locator
	loginButton   locator.Locator
	errorBanner   locator.Locator
}

// NewLoginPage binds a login page object to a session.
func NewLoginPage(sess *browser.Session, q *query.Query, baseURL string) *LoginPage {
	return &LoginPage{
		page:    page{sess: sess, q: q},
		baseURL: baseURL,

		usernameInput: locator.ID("user-name"),
		passwordInput: locator.ID("password"),
		loginButton:   locator.ID("login-button"),
		errorBanner:   locator.CSS("h3[data-test='error']"),
	}
}

// Open navigates to the storefront entry point. The viewport is already
// maximized by the browser launch flags, so the call is idempotent.
func (p *LoginPage) Open() error {
	return p.sess.Navigate(p.baseURL)
}

// Login clears and fills both credential fields, then submits.
func (p *LoginPage) Login(username, password string) error {
	if err := p.fillField(p.usernameInput, username); err != nil {
		return err
	}
	if err := p.fillField(p.passwordInput, password); err != nil {
		return err
	}
	return p.clickOne(p.loginButton)
}

// ErrorMessage waits for the error banner and returns its text. It fails
// with ElementNotFoundError when no banner appears, so callers must only
// invoke it after an action expected to produce an error.
func (p *LoginPage) ErrorMessage() (string, error) {
	return p.textOf(p.errorBanner)
}
