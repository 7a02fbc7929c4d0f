// pkg/query/errors_test.go
package query

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jrx4d/cartwheel/pkg/locator"
)

func TestElementNotFoundError(t *testing.T) {
	err := &ElementNotFoundError{
		Locator: locator.ID("login-button"),
		Elapsed: 10*time.Second + 3*time.Millisecond,
	}

	msg := err.Error()
	assert.Contains(t, msg, `id="login-button"`, "message should carry the locator")
	assert.Contains(t, msg, "10.003s", "message should carry the elapsed wait")

	// Wrapped instances must stay matchable for the optional-element
	// downgrade path.
	wrapped := fmt.Errorf("resolving badge: %w", err)
	var target *ElementNotFoundError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, locator.ID("login-button"), target.Locator)
}

func TestItemNotFoundError(t *testing.T) {
	err := &ItemNotFoundError{Criterion: "Sauce Labs Backpack"}
	assert.Contains(t, err.Error(), `"Sauce Labs Backpack"`)
}

func TestIndexOutOfRangeError(t *testing.T) {
	err := &IndexOutOfRangeError{Index: 5, Length: 3}
	assert.Equal(t, "index 5 out of range for 3 rendered item(s)", err.Error())

	// An index error and an item-not-found error are distinct types so
	// callers can tell "nothing there" from "you asked for slot 5 of 3".
	var itemErr *ItemNotFoundError
	assert.False(t, errors.As(err, &itemErr))
}

func TestMalformedDataError(t *testing.T) {
	err := &MalformedDataError{Raw: "abc", Expected: "integer badge count"}
	assert.Contains(t, err.Error(), `"abc"`)
	assert.Contains(t, err.Error(), "integer badge count")
}

func TestInconsistentPageStateError(t *testing.T) {
	err := &InconsistentPageStateError{
		Detail: "item field collections differ in length",
		Counts: map[string]int{"names": 6},
	}
	assert.Contains(t, err.Error(), "inconsistent page state")
	assert.Contains(t, err.Error(), "names:6")
}
