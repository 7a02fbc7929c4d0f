// pkg/fixtures/fixtures_test.go
package fixtures

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	set, err := Load("testdata/users.json")
	require.NoError(t, err)

	want := LoginCase{
		Username:        "standard_user",
		Password:        "secret_sauce",
		ExpectedURLPart: "inventory.html",
	}
	if diff := cmp.Diff(want, set.ValidLogin()); diff != "" {
		t.Errorf("unexpected canonical login record (-want +got):\n%s", diff)
	}

	require.Len(t, set.NegativeCases, 2)
	assert.Equal(t, "Epic sadface: Sorry, this user has been locked out.", set.NegativeCases[0].ExpectedError)

	checkout := set.Checkout()
	assert.Equal(t, "Tester", checkout.FirstName)
	assert.Equal(t, "McTestface", checkout.LastName)
	assert.Equal(t, "123456", checkout.PostalCode)
	assert.InDelta(t, 3.2, checkout.TaxValue, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.json")
	require.Error(t, err)

	var notFound *FixtureNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Contains(t, notFound.Path, "does-not-exist.json")
	assert.True(t, errors.Is(err, os.ErrNotExist), "should wrap the underlying file error")
}

func TestLoadMalformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
		detail  string
	}{
		{
			name:    "invalid JSON",
			content: `{"positive_cases": [`,
			detail:  "",
		},
		{
			name:    "missing positive cases",
			content: `{"negative_cases": [], "checkout_data": [{"firstname":"a","lastname":"b","postalcode":"c","tax_value":1}]}`,
			detail:  "positive_cases is missing or empty",
		},
		{
			name: "missing negative cases",
			content: `{"positive_cases": [{"username":"u","password":"p","expected_url_part":"x"}],
				"checkout_data": [{"firstname":"a","lastname":"b","postalcode":"c","tax_value":1}]}`,
			detail: "negative_cases is missing or empty",
		},
		{
			name: "empty checkout data",
			content: `{"positive_cases": [{"username":"u","password":"p","expected_url_part":"x"}],
				"negative_cases": [{"username":"u","password":"p","expected_error":"e"}],
				"checkout_data": []}`,
			detail: "checkout_data is missing or empty",
		},
		{
			name: "positive case missing field",
			content: `{"positive_cases": [{"username":"u","password":"p"}],
				"negative_cases": [{"username":"u","password":"p","expected_error":"e"}],
				"checkout_data": [{"firstname":"a","lastname":"b","postalcode":"c","tax_value":1}]}`,
			detail: "positive_cases[0] is missing required fields",
		},
		{
			name: "negative case missing expectation",
			content: `{"positive_cases": [{"username":"u","password":"p","expected_url_part":"x"}],
				"negative_cases": [{"username":"u","password":"p"}],
				"checkout_data": [{"firstname":"a","lastname":"b","postalcode":"c","tax_value":1}]}`,
			detail: "negative_cases[0] is missing expected_error",
		},
		{
			name: "checkout record missing field",
			content: `{"positive_cases": [{"username":"u","password":"p","expected_url_part":"x"}],
				"negative_cases": [{"username":"u","password":"p","expected_error":"e"}],
				"checkout_data": [{"firstname":"a","tax_value":1}]}`,
			detail: "checkout_data[0] is missing required fields",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixture(t, tc.content)
			_, err := Load(path)
			require.Error(t, err)

			var malformed *FixtureMalformedError
			require.True(t, errors.As(err, &malformed), "got %T", err)
			if tc.detail != "" {
				assert.Contains(t, malformed.Detail, tc.detail)
			}
		})
	}
}

func TestEmptyNegativeCredentialsAreAllowed(t *testing.T) {
	// Blank username and password are deliberate negative input: the site
	// must reject them with its own validation message.
	path := writeFixture(t, `{
		"positive_cases": [{"username":"u","password":"p","expected_url_part":"x"}],
		"negative_cases": [{"username":"","password":"","expected_error":"Epic sadface: Username is required"}],
		"checkout_data": [{"firstname":"a","lastname":"b","postalcode":"c","tax_value":1}]
	}`)

	set, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, set.NegativeCases[0].Username)
}
