// pkg/fixtures/fixtures.go
package fixtures

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FixtureNotFoundError reports a missing fixture file. It is raised at
// load time, before any browser session is touched.
type FixtureNotFoundError struct {
	Path string
	Err  error
}

func (e *FixtureNotFoundError) Error() string {
	return fmt.Sprintf("fixture file %s not found: %v", e.Path, e.Err)
}

func (e *FixtureNotFoundError) Unwrap() error { return e.Err }

// FixtureMalformedError reports a fixture file that parsed but does not
// satisfy the expected shape: a missing key, an empty required array, or a
// record with missing required fields.
type FixtureMalformedError struct {
	Path   string
	Detail string
}

func (e *FixtureMalformedError) Error() string {
	return fmt.Sprintf("fixture file %s malformed: %s", e.Path, e.Detail)
}

// LoginCase is one data-driven login attempt. Exactly one of
// ExpectedURLPart (positive case) or ExpectedError (negative case) is
// populated, depending on which set the record came from.
type LoginCase struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ExpectedURLPart string `json:"expected_url_part,omitempty"`
	ExpectedError   string `json:"expected_error,omitempty"`
}

// CheckoutCase carries the customer information and the expected tax for
// the checkout flow.
type CheckoutCase struct {
	FirstName  string  `json:"firstname"`
	LastName   string  `json:"lastname"`
	PostalCode string  `json:"postalcode"`
	TaxValue   float64 `json:"tax_value"`
}

// Set is the full content of a fixture file, loaded once per run and
// treated as immutable read-only data thereafter.
type Set struct {
	PositiveCases []LoginCase    `json:"positive_cases"`
	NegativeCases []LoginCase    `json:"negative_cases"`
	CheckoutData  []CheckoutCase `json:"checkout_data"`
}

// ValidLogin returns the canonical valid-credentials record, used by the
// logged-in session variant.
func (s *Set) ValidLogin() LoginCase {
	return s.PositiveCases[0]
}

// Checkout returns the canonical checkout record.
func (s *Set) Checkout() CheckoutCase {
	return s.CheckoutData[0]
}

// Load reads and validates a fixture file. Shape problems surface here,
// before any browser work starts.
func Load(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &FixtureNotFoundError{Path: path, Err: err}
	}

	var set Set
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, &FixtureMalformedError{Path: path, Detail: err.Error()}
	}

	if err := set.validate(path); err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *Set) validate(path string) error {
	if len(s.PositiveCases) == 0 {
		return &FixtureMalformedError{Path: path, Detail: "positive_cases is missing or empty"}
	}
	if len(s.NegativeCases) == 0 {
		return &FixtureMalformedError{Path: path, Detail: "negative_cases is missing or empty"}
	}
	if len(s.CheckoutData) == 0 {
		return &FixtureMalformedError{Path: path, Detail: "checkout_data is missing or empty"}
	}

	for i, c := range s.PositiveCases {
		if c.Username == "" || c.Password == "" || c.ExpectedURLPart == "" {
			return &FixtureMalformedError{
				Path:   path,
				Detail: fmt.Sprintf("positive_cases[%d] is missing required fields", i),
			}
		}
	}
	for i, c := range s.NegativeCases {
		// Empty credentials are legitimate negative input; only the
		// expectation is mandatory.
		if c.ExpectedError == "" {
			return &FixtureMalformedError{
				Path:   path,
				Detail: fmt.Sprintf("negative_cases[%d] is missing expected_error", i),
			}
		}
	}
	for i, c := range s.CheckoutData {
		if c.FirstName == "" || c.LastName == "" || c.PostalCode == "" {
			return &FixtureMalformedError{
				Path:   path,
				Detail: fmt.Sprintf("checkout_data[%d] is missing required fields", i),
			}
		}
	}
	return nil
}
