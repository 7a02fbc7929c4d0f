// pkg/locator/locator_test.go
package locator

import (
	"reflect"
	"testing"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
)

// funcPtr lets option function values be compared by identity.
func funcPtr(opt chromedp.QueryOption) uintptr {
	return reflect.ValueOf(opt).Pointer()
}

func TestQuery(t *testing.T) {
	cases := []struct {
		name string
		loc  Locator
		want string
	}{
		{"id gets a hash prefix", ID("login-button"), "#login-button"},
		{"class name gets a dot prefix", ClassName("inventory_item"), ".inventory_item"},
		{"css passes through", CSS("h3[data-test='error']"), "h3[data-test='error']"},
		{"xpath passes through", XPath("//div[@id='cart']"), "//div[@id='cart']"},
		{"link text becomes an anchor xpath", LinkText("About"), "//a[normalize-space(text())='About']"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.loc.Query())
		})
	}
}

func TestQueryOption(t *testing.T) {
	// chromedp query options are function values; compare by pointer.
	assert.Equal(t,
		funcPtr(chromedp.BySearch), funcPtr(XPath("//div").QueryOption()),
		"xpath locators should resolve through the search API")
	assert.Equal(t,
		funcPtr(chromedp.BySearch), funcPtr(LinkText("About").QueryOption()),
		"link text locators should resolve through the search API")
	assert.Equal(t,
		funcPtr(chromedp.ByQueryAll), funcPtr(ID("login-button").QueryOption()),
		"id locators should resolve through querySelectorAll")
	assert.Equal(t,
		funcPtr(chromedp.ByQueryAll), funcPtr(ClassName("title").QueryOption()),
		"class locators should resolve through querySelectorAll")
}

func TestIsXPath(t *testing.T) {
	assert.True(t, XPath("//div").IsXPath())
	assert.True(t, LinkText("About").IsXPath())
	assert.False(t, ID("cart").IsXPath())
	assert.False(t, CSS(".cart").IsXPath())
}

func TestForItemNamed(t *testing.T) {
	t.Run("plain name", func(t *testing.T) {
		loc := ForItemNamed("Sauce Labs Backpack")
		assert.Equal(t, ByXPath, loc.Strategy)
		assert.Equal(t,
			"//div[text()='Sauce Labs Backpack']/ancestor::div[@class='inventory_item']//button",
			loc.Value)
	})

	t.Run("name containing an apostrophe", func(t *testing.T) {
		loc := ForItemNamed("Tester's Choice")
		assert.Contains(t, loc.Value, `"Tester's Choice"`)
	})
}

func TestXPathLiteral(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "'plain'"},
		{"it's", `"it's"`},
		{`say "hi"`, `'say "hi"'`},
		{`both ' and "`, `concat('both ', "'", ' and "')`},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, xpathLiteral(tc.in), "input %q", tc.in)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, `id="user-name"`, ID("user-name").String())
	assert.Equal(t, `class name="title"`, ClassName("title").String())
}
