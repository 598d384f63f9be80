package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/farhankamalkhan/saucedemo/internal/fixtures"
)

// fileCase is the YAML schema for a declarative case.
type fileCase struct {
	Name     string        `yaml:"name"`
	Tags     []string      `yaml:"tags"`
	User     string        `yaml:"user"`
	Shopper  *shopperSpec  `yaml:"shopper"`
	Products *productsSpec `yaml:"products"`
	Steps    []fileStep    `yaml:"steps"`
}

type shopperSpec struct {
	FirstName  string `yaml:"firstName"`
	LastName   string `yaml:"lastName"`
	PostalCode string `yaml:"postalCode"`
}

// productsSpec selects the case's products either by explicit names or by
// sampling n distinct products from the catalog. The two are exclusive.
type productsSpec struct {
	Names  []string `yaml:"names"`
	Sample int      `yaml:"sample"`
}

type fileStep struct {
	Name   string   `yaml:"name"`
	Action string   `yaml:"action"`
	Target string   `yaml:"target"`
	Expect string   `yaml:"expect"`
	Count  int      `yaml:"count"`
	Text   string   `yaml:"text"`
	Items  []string `yaml:"items"`
}

// LoadFile parses a single YAML case file and resolves its user and product
// references against the dataset. An add/remove step without a target expands
// to one step per case product; the step's expectation then applies to the
// last expanded step.
func LoadFile(path string, ds *fixtures.Dataset) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	var fc fileCase
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if fc.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if len(fc.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s: at least one step is required", path)
	}

	c := &Case{Name: fc.Name, Tags: fc.Tags}

	if err := resolveProducts(c, fc.Products, ds, path); err != nil {
		return nil, err
	}
	if err := resolveCredential(c, &fc, ds, path); err != nil {
		return nil, err
	}
	resolveShopper(c, &fc)

	for i, fs := range fc.Steps {
		steps, err := buildSteps(c, fs, ds)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: step %d: %w", path, i+1, err)
		}
		c.Steps = append(c.Steps, steps...)
	}

	return c, nil
}

// LoadDir loads all .yaml and .yml case files from a directory.
func LoadDir(dir string, ds *fixtures.Dataset) ([]*Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading scenario directory %s: %w", dir, err)
	}

	var cases []*Case
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		c, err := LoadFile(filepath.Join(dir, entry.Name()), ds)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	if len(cases) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", dir)
	}

	return cases, nil
}

func resolveProducts(c *Case, spec *productsSpec, ds *fixtures.Dataset, path string) error {
	if spec == nil {
		return nil
	}
	if len(spec.Names) > 0 && spec.Sample > 0 {
		return fmt.Errorf("scenario %s: products.names and products.sample are exclusive", path)
	}
	if spec.Sample > 0 {
		c.Products = ds.SampleProducts(spec.Sample)
		return nil
	}
	for _, name := range spec.Names {
		p, ok := ds.ProductByName(name)
		if !ok {
			return fmt.Errorf("scenario %s: unknown product %q", path, name)
		}
		c.Products = append(c.Products, p)
	}
	return nil
}

// resolveCredential binds the case's user. An explicit username is looked up
// among valid credentials first, then invalid ones. Without one, a case that
// logs in gets the first valid credential.
func resolveCredential(c *Case, fc *fileCase, ds *fixtures.Dataset, path string) error {
	if fc.User == "" {
		for _, fs := range fc.Steps {
			if Action(fs.Action) == ActionLogin {
				cred := ds.ValidCredentials()[0]
				c.Credential = &cred
				return nil
			}
		}
		return nil
	}
	for _, cred := range ds.ValidCredentials() {
		if cred.Username == fc.User {
			cred := cred
			c.Credential = &cred
			return nil
		}
	}
	for _, cred := range ds.InvalidCredentials() {
		if cred.Username == fc.User {
			cred := cred
			c.Credential = &cred
			return nil
		}
	}
	return fmt.Errorf("scenario %s: unknown user %q", path, fc.User)
}

func resolveShopper(c *Case, fc *fileCase) {
	if fc.Shopper != nil {
		c.Shopper = fixtures.Shopper{
			FirstName:  fc.Shopper.FirstName,
			LastName:   fc.Shopper.LastName,
			PostalCode: fc.Shopper.PostalCode,
		}
		return
	}
	for _, fs := range fc.Steps {
		if Action(fs.Action) == ActionFillInformation {
			c.Shopper = fixtures.RandomShopper()
			return
		}
	}
}

func buildSteps(c *Case, fs fileStep, ds *fixtures.Dataset) ([]Step, error) {
	action := Action(fs.Action)
	if !knownAction(action) {
		return nil, fmt.Errorf("unknown action %q", fs.Action)
	}
	expect := Expect(fs.Expect)
	if !knownExpect(expect) {
		return nil, fmt.Errorf("unknown expectation %q", fs.Expect)
	}

	if action == ActionAddProduct || action == ActionRemoveProduct {
		if fs.Target == "" {
			// Expand over the case's products.
			if len(c.Products) == 0 {
				return nil, fmt.Errorf("%s without target needs case products", action)
			}
			var steps []Step
			for i, p := range c.Products {
				s := Step{
					Name:   fmt.Sprintf("%s %s", verb(action), p.Name),
					Action: action,
					Target: p.Name,
				}
				if i == len(c.Products)-1 {
					s.Expect = expect
					s.Count = fs.Count
					s.Text = fs.Text
					s.Items = fs.Items
				}
				steps = append(steps, s)
			}
			return steps, nil
		}
		if _, ok := ds.ProductByName(fs.Target); !ok {
			return nil, fmt.Errorf("unknown product %q", fs.Target)
		}
	}

	return []Step{{
		Name:   fs.Name,
		Action: action,
		Target: fs.Target,
		Expect: expect,
		Count:  fs.Count,
		Text:   fs.Text,
		Items:  fs.Items,
	}}, nil
}

func verb(a Action) string {
	if a == ActionRemoveProduct {
		return "remove"
	}
	return "add"
}

func knownAction(a Action) bool {
	switch a {
	case ActionLogin, ActionAddProduct, ActionRemoveProduct, ActionOpenCart,
		ActionClearCart, ActionBeginCheckout, ActionFillInformation,
		ActionContinueCheckout, ActionFinishCheckout:
		return true
	}
	return false
}

func knownExpect(e Expect) bool {
	switch e {
	case ExpectNone, ExpectInventory, ExpectLoginError, ExpectBadgeCount,
		ExpectBadgeAbsent, ExpectCartContains, ExpectCartEmpty,
		ExpectItemTotal, ExpectOrderComplete:
		return true
	}
	return false
}
