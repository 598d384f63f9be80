// Package fixtures holds the static data the suite is driven by: login
// credentials and catalog products, kept in two JSON collections. The loaded
// Dataset is immutable and shared read-only by every scenario; selection
// helpers always hand out private copies.
package fixtures

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Credential classifications.
const (
	ClassificationValid   = "valid"
	ClassificationInvalid = "invalid"
)

// ErrFixtureLoad reports a missing or malformed fixture collection. It is
// fatal: callers abort the run before any scenario starts, without retrying.
var ErrFixtureLoad = errors.New("fixture load failed")

// UserCredential is one login record from the users collection.
type UserCredential struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	Classification string `json:"-"`

	// ExpectedError is the exact error text the login page must show for
	// this record. Present only on invalid credentials.
	ExpectedError string `json:"expectedError,omitempty"`
}

// Product is one catalog record from the products collection. Name is the
// natural key used to locate the product in any page's rendering.
type Product struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// Dataset is the complete fixture set for one run.
type Dataset struct {
	validUsers   []UserCredential
	invalidUsers []UserCredential
	products     []Product
}

//go:embed data/users.json data/products.json
var defaultData embed.FS

// Collection file names, identical for the embedded defaults and for
// directory overrides.
const (
	usersFile    = "users.json"
	productsFile = "products.json"
)

// Default loads the fixture set embedded in the binary.
func Default() (*Dataset, error) {
	users, err := defaultData.ReadFile("data/" + usersFile)
	if err != nil {
		return nil, fmt.Errorf("%w: reading embedded %s: %v", ErrFixtureLoad, usersFile, err)
	}
	products, err := defaultData.ReadFile("data/" + productsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: reading embedded %s: %v", ErrFixtureLoad, productsFile, err)
	}
	return parse(users, products)
}

// Load reads users.json and products.json from dir. An empty dir falls back
// to the embedded defaults.
func Load(dir string) (*Dataset, error) {
	if dir == "" {
		return Default()
	}
	users, err := os.ReadFile(filepath.Join(dir, usersFile))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFixtureLoad, filepath.Join(dir, usersFile), err)
	}
	products, err := os.ReadFile(filepath.Join(dir, productsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFixtureLoad, filepath.Join(dir, productsFile), err)
	}
	return parse(users, products)
}

type userCollections struct {
	ValidUsers   []UserCredential `json:"validUsers"`
	InvalidUsers []UserCredential `json:"invalidUsers"`
}

type productCollection struct {
	Products []Product `json:"products"`
}

var priceFormat = regexp.MustCompile(`^\$\d+\.\d{2}$`)

func parse(usersRaw, productsRaw []byte) (*Dataset, error) {
	var users userCollections
	if err := json.Unmarshal(usersRaw, &users); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrFixtureLoad, usersFile, err)
	}
	var products productCollection
	if err := json.Unmarshal(productsRaw, &products); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrFixtureLoad, productsFile, err)
	}

	ds := &Dataset{
		validUsers:   users.ValidUsers,
		invalidUsers: users.InvalidUsers,
		products:     products.Products,
	}
	for i := range ds.validUsers {
		ds.validUsers[i].Classification = ClassificationValid
	}
	for i := range ds.invalidUsers {
		ds.invalidUsers[i].Classification = ClassificationInvalid
	}
	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFixtureLoad, err)
	}
	return ds, nil
}

func (d *Dataset) validate() error {
	if len(d.validUsers) == 0 {
		return errors.New("validUsers collection is empty")
	}
	for _, u := range d.validUsers {
		if u.Username == "" || u.Password == "" {
			return fmt.Errorf("valid user %q: username and password are required", u.ID)
		}
		if u.ExpectedError != "" {
			return fmt.Errorf("valid user %q: expectedError is only allowed on invalid users", u.ID)
		}
	}
	for _, u := range d.invalidUsers {
		if u.Username == "" || u.Password == "" {
			return fmt.Errorf("invalid user %q: username and password are required", u.ID)
		}
		if u.ExpectedError == "" {
			return fmt.Errorf("invalid user %q: expectedError is required", u.ID)
		}
	}
	if len(d.products) == 0 {
		return errors.New("products collection is empty")
	}
	seen := make(map[string]bool, len(d.products))
	for _, p := range d.products {
		if p.Name == "" {
			return errors.New("product with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate product name %q", p.Name)
		}
		seen[p.Name] = true
		if !priceFormat.MatchString(p.Price) {
			return fmt.Errorf("product %q: price %q does not match $D+.DD", p.Name, p.Price)
		}
	}
	return nil
}
