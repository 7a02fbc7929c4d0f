// pkg/locator/locator.go
package locator

import (
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
)

// Strategy identifies how a selector string is interpreted when it is
// resolved against the live page.
type Strategy string

const (
	ByID          Strategy = "id"
	ByClassName   Strategy = "class name"
	ByCSSSelector Strategy = "css selector"
	ByXPath       Strategy = "xpath"
	ByLinkText    Strategy = "link text"
)

// Locator is an immutable (strategy, selector) pair identifying zero or
// more elements on a page. Equality is by value.
type Locator struct {
	Strategy Strategy
	Value    string
}

// ID builds a locator matching an element by its id attribute.
func ID(id string) Locator { return Locator{Strategy: ByID, Value: id} }

// ClassName builds a locator matching elements by a single class name.
func ClassName(name string) Locator { return Locator{Strategy: ByClassName, Value: name} }

// CSS builds a locator from a raw CSS selector.
func CSS(sel string) Locator { return Locator{Strategy: ByCSSSelector, Value: sel} }

// XPath builds a locator from a raw XPath expression.
func XPath(expr string) Locator { return Locator{Strategy: ByXPath, Value: expr} }

// LinkText builds a locator matching an anchor by its exact visible text.
func LinkText(text string) Locator { return Locator{Strategy: ByLinkText, Value: text} }

// ForItemNamed builds the locator for the add/remove button of the
// inventory item whose visible title matches name exactly. The name is a
// runtime value and is escaped into a literal XPath string, never
// interpolated as code.
func ForItemNamed(name string) Locator {
	expr := fmt.Sprintf(
		"//div[text()=%s]/ancestor::div[@class='inventory_item']//button",
		xpathLiteral(name),
	)
	return Locator{Strategy: ByXPath, Value: expr}
}

// Query returns the selector string understood by the underlying driver.
func (l Locator) Query() string {
	switch l.Strategy {
	case ByID:
		return "#" + l.Value
	case ByClassName:
		return "." + l.Value
	case ByLinkText:
		return fmt.Sprintf("//a[normalize-space(text())=%s]", xpathLiteral(l.Value))
	default:
		return l.Value
	}
}

// QueryOption returns the chromedp query option matching the strategy.
// XPath flavored strategies resolve through the DOM search API; everything
// else is a querySelectorAll call.
func (l Locator) QueryOption() chromedp.QueryOption {
	switch l.Strategy {
	case ByXPath, ByLinkText:
		return chromedp.BySearch
	default:
		return chromedp.ByQueryAll
	}
}

// IsXPath reports whether the locator resolves through an XPath expression.
func (l Locator) IsXPath() bool {
	return l.Strategy == ByXPath || l.Strategy == ByLinkText
}

// String implements fmt.Stringer for log and error messages.
func (l Locator) String() string {
	return fmt.Sprintf("%s=%q", l.Strategy, l.Value)
}

// xpathLiteral renders s as an XPath 1.0 string literal. XPath has no
// escape sequences, so a value containing both quote kinds must be split
// into a concat() of single-quoted pieces.
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	quoted := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		if p != "" {
			quoted = append(quoted, "'"+p+"'")
		}
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}
