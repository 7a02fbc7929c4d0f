// pkg/query/handle.go
package query

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// Handle is an opaque reference to an element resolved against the live
// page. A handle is only valid for the document it was resolved on; it
// must be re-resolved after every navigation.
type Handle struct {
	node *cdp.Node
}

// NewHandle wraps a resolved DOM node.
func NewHandle(node *cdp.Node) Handle {
	return Handle{node: node}
}

// Node exposes the underlying DOM node.
func (h Handle) Node() *cdp.Node {
	return h.node
}

// Click dispatches a mouse click on the element.
func (h Handle) Click(ctx context.Context) error {
	return chromedp.Run(ctx, chromedp.MouseClickNode(h.node))
}

// Text returns the rendered text content of the element.
func (h Handle) Text(ctx context.Context) (string, error) {
	var text string
	if err := h.eval(ctx, "el.innerText", &text); err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Attribute returns the value of the named attribute as captured when the
// element was resolved, and whether it was present.
func (h Handle) Attribute(name string) (string, bool) {
	for i := 0; i < len(h.node.Attributes)-1; i += 2 {
		if h.node.Attributes[i] == name {
			return h.node.Attributes[i+1], true
		}
	}
	return "", false
}

// Enabled reads the live disabled property without clicking.
func (h Handle) Enabled(ctx context.Context) (bool, error) {
	var enabled bool
	if err := h.eval(ctx, "!el.disabled", &enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

// Displayed reports whether the element currently takes part in layout.
func (h Handle) Displayed(ctx context.Context) (bool, error) {
	var displayed bool
	script := "(function(){const s=window.getComputedStyle(el);" +
		"return s.display!=='none'&&s.visibility!=='hidden'&&el.getClientRects().length>0;})()"
	if err := h.eval(ctx, script, &displayed); err != nil {
		return false, err
	}
	return displayed, nil
}

// Clear empties an input field and notifies the page of the change.
func (h Handle) Clear(ctx context.Context) error {
	return h.eval(ctx,
		"(function(){el.value='';"+
			"el.dispatchEvent(new Event('input',{bubbles:true}));"+
			"el.dispatchEvent(new Event('change',{bubbles:true}));})()", nil)
}

// SendKeys focuses the element and types the given text as key events.
func (h Handle) SendKeys(ctx context.Context, text string) error {
	if err := h.eval(ctx, "el.focus()", nil); err != nil {
		return err
	}
	return chromedp.Run(ctx, chromedp.KeyEventNode(h.node, text))
}

// SelectByValue picks the option with the given value on a select control
// and fires the change event the page listens for.
func (h Handle) SelectByValue(ctx context.Context, value string) error {
	script := fmt.Sprintf(
		"(function(){el.value=%s;el.dispatchEvent(new Event('change',{bubbles:true}));})()",
		strconv.Quote(value),
	)
	return h.eval(ctx, script, nil)
}

// SelectedText returns the visible label of the currently selected option
// on a select control.
func (h Handle) SelectedText(ctx context.Context) (string, error) {
	var text string
	if err := h.eval(ctx, "el.options[el.selectedIndex].text", &text); err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ImageLoaded reports whether an img element finished loading with real
// pixel data, not just whether the tag exists.
func (h Handle) ImageLoaded(ctx context.Context) (bool, error) {
	var ok bool
	script := "el.complete && typeof el.naturalWidth != 'undefined' && el.naturalWidth > 0"
	if err := h.eval(ctx, script, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// eval runs a script with "el" bound to this element. The element is
// re-located through its full XPath, so a stale handle evaluates against
// nothing and errors instead of touching an unrelated node.
func (h Handle) eval(ctx context.Context, body string, res interface{}) error {
	script := fmt.Sprintf(
		`(function(){const el=document.evaluate(%s,document,null,XPathResult.FIRST_ORDERED_NODE_TYPE,null).singleNodeValue;
if(!el){throw new Error('element detached from document');}
return %s;})()`,
		strconv.Quote(h.node.FullXPath()), body,
	)
	if res == nil {
		return chromedp.Run(ctx, chromedp.Evaluate(script, nil))
	}
	return chromedp.Run(ctx, chromedp.Evaluate(script, res))
}
