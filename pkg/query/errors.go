// pkg/query/errors.go
package query

import (
	"fmt"
	"time"

	"github.com/jrx4d/cartwheel/pkg/locator"
)

// ElementNotFoundError reports a synchronization timeout: the locator did
// not resolve to an interactable element within the wait window. It is
// surfaced to the caller and never retried beyond the single poll loop.
type ElementNotFoundError struct {
	Locator locator.Locator
	Elapsed time.Duration
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element not found: %s after %s", e.Locator, e.Elapsed.Round(time.Millisecond))
}

// ItemNotFoundError reports that a by-name lookup found no match among the
// currently rendered items.
type ItemNotFoundError struct {
	Criterion string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("no rendered item matches %q", e.Criterion)
}

// IndexOutOfRangeError reports an index past the end of a rendered
// collection. It is distinct from an empty-collection result so callers
// can tell "nothing there" from "you asked for slot 5 of 3".
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for %d rendered item(s)", e.Index, e.Length)
}

// MalformedDataError reports text read from the page that could not be
// parsed into the expected shape, such as a non-numeric badge label.
type MalformedDataError struct {
	Raw      string
	Expected string
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed page data %q, expected %s", e.Raw, e.Expected)
}

// InconsistentPageStateError reports field collections of mismatched
// length gathered in what should be a single consistent pass. The mismatch
// is never silently truncated or zipped.
type InconsistentPageStateError struct {
	Detail string
	Counts map[string]int
}

func (e *InconsistentPageStateError) Error() string {
	return fmt.Sprintf("inconsistent page state: %s (%v)", e.Detail, e.Counts)
}
