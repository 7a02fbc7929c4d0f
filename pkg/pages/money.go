// pkg/pages/money.go
package pages

import (
	"fmt"
	"regexp"
	"strconv"
)

// decimalPattern extracts the first decimal number from a currency
// formatted label, e.g. "Item total: $39.98" yields "39.98". Matching
// only the number keeps the parse resilient against label copy changes.
var decimalPattern = regexp.MustCompile(`(\d+)\.(\d+)`)

// Cents is a currency amount at cents precision.
type Cents int64

// Float converts to the displayed decimal value.
func (c Cents) Float() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

// SummaryValues are the checkout overview footer figures, read from the
// page at call time and never cached.
type SummaryValues struct {
	Subtotal Cents
	Tax      Cents
	Total    Cents
}

// parseCents extracts the first decimal number from label text. No match
// is a defined fallback of 0, not a failure: labels are copy that moves
// around, and the lax parse is deliberate.
func parseCents(text string) Cents {
	m := decimalPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}

	whole, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}

	frac := m[2]
	if len(frac) > 2 {
		frac = frac[:2]
	}
	fracVal, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0
	}
	if len(frac) == 1 {
		fracVal *= 10
	}

	return Cents(whole*100 + fracVal)
}
