package fixtures

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// ErrFormat reports a value that does not match its expected textual
// pattern, such as a malformed currency amount.
var ErrFormat = errors.New("malformed value")

var decimalAmount = regexp.MustCompile(`^\d+(\.\d+)?$`)

// ParseCurrency strips a single leading dollar sign and parses the remainder
// as a base-10 decimal. Inputs whose remainder is not a plain decimal
// literal fail with ErrFormat.
func ParseCurrency(text string) (float64, error) {
	s := strings.TrimPrefix(text, "$")
	if !decimalAmount.MatchString(s) {
		return 0, fmt.Errorf("%w: %q is not a currency amount", ErrFormat, text)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a currency amount", ErrFormat, text)
	}
	return v, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeProductKey translates a display name into the lookup key the
// storefront encodes into its markup: lower-cased, parentheses and periods
// stripped, whitespace runs collapsed to single hyphens. Cart controls carry
// ids derived from it, e.g. "add-to-cart-sauce-labs-bike-light". The mapping
// is deterministic: the same name always yields the same key.
func NormalizeProductKey(name string) string {
	s := strings.ToLower(name)
	s = strings.NewReplacer("(", "", ")", "", ".", "").Replace(s)
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), "-")
}

const randomAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns n random lower-case alphanumeric characters.
func RandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randomAlphabet[rand.Intn(len(randomAlphabet))]
	}
	return string(b)
}

// Shopper is one set of checkout contact details.
type Shopper struct {
	FirstName  string
	LastName   string
	PostalCode string
}

var (
	shopperFirstNames = []string{"Avery", "Jordan", "Riley", "Morgan", "Casey", "Quinn"}
	shopperLastNames  = []string{"Walker", "Reyes", "Kim", "Patel", "Nguyen", "Hayes"}
)

// RandomShopper generates contact details for scenarios that fill the
// checkout information form.
func RandomShopper() Shopper {
	return Shopper{
		FirstName:  shopperFirstNames[rand.Intn(len(shopperFirstNames))],
		LastName:   shopperLastNames[rand.Intn(len(shopperLastNames))],
		PostalCode: fmt.Sprintf("%05d", rand.Intn(100000)),
	}
}
