// Package scenario models executable storefront test cases. Cases are either
// generated from fixture data or loaded from YAML files, and run step by step
// against a browser-backed Driver.
package scenario

import (
	"fmt"

	"github.com/farhankamalkhan/saucedemo/internal/fixtures"
)

// Action identifies the browser operation a step performs.
type Action string

const (
	ActionLogin            Action = "login"
	ActionAddProduct       Action = "add-product"
	ActionRemoveProduct    Action = "remove-product"
	ActionOpenCart         Action = "open-cart"
	ActionClearCart        Action = "clear-cart"
	ActionBeginCheckout    Action = "begin-checkout"
	ActionFillInformation  Action = "fill-information"
	ActionContinueCheckout Action = "continue-checkout"
	ActionFinishCheckout   Action = "finish-checkout"
)

// Expect identifies the post-condition verified after a step's action. The
// post-condition of step i is checked before the action of step i+1 runs.
type Expect string

const (
	ExpectNone          Expect = ""
	ExpectInventory     Expect = "on-inventory"
	ExpectLoginError    Expect = "login-error"
	ExpectBadgeCount    Expect = "badge-count"
	ExpectBadgeAbsent   Expect = "badge-absent"
	ExpectCartContains  Expect = "cart-contains"
	ExpectCartEmpty     Expect = "cart-empty"
	ExpectItemTotal     Expect = "item-total"
	ExpectOrderComplete Expect = "order-complete"
)

// CompleteHeaderText is the confirmation headline the storefront shows once
// an order has been placed.
const CompleteHeaderText = "Thank you for your order!"

// Step is a single action plus the post-condition that must hold afterwards.
type Step struct {
	Name   string
	Action Action
	// Target names the product an add/remove action operates on.
	Target string
	Expect Expect
	// Count is the expected badge count for ExpectBadgeCount.
	Count int
	// Text overrides the expected text for ExpectLoginError and
	// ExpectOrderComplete; when empty the credential's expected error
	// respectively CompleteHeaderText applies.
	Text string
	// Items overrides the expected cart contents for ExpectCartContains;
	// when empty the case's product names apply.
	Items []string
}

// Case is a complete scenario: the credential and products it operates with
// and its ordered steps. Credential and Products are private copies of
// fixture records; mutating them never touches the shared dataset.
type Case struct {
	Name       string
	Tags       []string
	Credential *fixtures.UserCredential
	Products   []fixtures.Product
	Shopper    fixtures.Shopper
	Steps      []Step
}

// HasTag reports whether the case carries the given tag.
func (c *Case) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ProductNames returns the display names of the case's products in order.
func (c *Case) ProductNames() []string {
	names := make([]string, len(c.Products))
	for i, p := range c.Products {
		names[i] = p.Name
	}
	return names
}

// LoginCases generates one case per credential in the dataset: valid
// credentials must land on the inventory page, invalid ones must surface
// exactly their recorded error text.
func LoginCases(ds *fixtures.Dataset) []Case {
	var cases []Case
	for _, cred := range ds.ValidCredentials() {
		cred := cred
		cases = append(cases, Case{
			Name:       fmt.Sprintf("login succeeds for %s", cred.Username),
			Tags:       []string{"login", "smoke"},
			Credential: &cred,
			Steps: []Step{
				{Name: "sign in", Action: ActionLogin, Expect: ExpectInventory},
			},
		})
	}
	for _, cred := range ds.InvalidCredentials() {
		cred := cred
		cases = append(cases, Case{
			Name:       fmt.Sprintf("login rejected for %s", cred.ID),
			Tags:       []string{"login"},
			Credential: &cred,
			Steps: []Step{
				{Name: "sign in", Action: ActionLogin, Expect: ExpectLoginError},
			},
		})
	}
	return cases
}

// CartRoundTripCase generates a case that adds n sampled products, verifies
// the cart holds exactly that subset, and clears it again.
func CartRoundTripCase(ds *fixtures.Dataset, n int) Case {
	cred := firstValid(ds)
	products := ds.SampleProducts(n)

	steps := []Step{
		{Name: "sign in", Action: ActionLogin, Expect: ExpectInventory},
	}
	for i, p := range products {
		steps = append(steps, Step{
			Name:   fmt.Sprintf("add %s", p.Name),
			Action: ActionAddProduct,
			Target: p.Name,
			Expect: ExpectBadgeCount,
			Count:  i + 1,
		})
	}
	steps = append(steps,
		Step{Name: "open cart", Action: ActionOpenCart, Expect: ExpectCartContains},
		Step{Name: "clear cart", Action: ActionClearCart, Expect: ExpectCartEmpty},
	)

	return Case{
		Name:       fmt.Sprintf("cart round trip with %d products", len(products)),
		Tags:       []string{"cart"},
		Credential: &cred,
		Products:   products,
		Steps:      steps,
	}
}

// CheckoutCase generates a full purchase: add n sampled products, walk the
// three checkout pages, verify the overview's item total against the fixture
// prices and finish the order.
func CheckoutCase(ds *fixtures.Dataset, n int) Case {
	cred := firstValid(ds)
	products := ds.SampleProducts(n)

	steps := []Step{
		{Name: "sign in", Action: ActionLogin, Expect: ExpectInventory},
	}
	for _, p := range products {
		steps = append(steps, Step{
			Name:   fmt.Sprintf("add %s", p.Name),
			Action: ActionAddProduct,
			Target: p.Name,
		})
	}
	steps = append(steps,
		Step{Name: "open cart", Action: ActionOpenCart, Expect: ExpectCartContains},
		Step{Name: "begin checkout", Action: ActionBeginCheckout},
		Step{Name: "fill shopper information", Action: ActionFillInformation},
		Step{Name: "continue to overview", Action: ActionContinueCheckout, Expect: ExpectItemTotal},
		Step{Name: "finish order", Action: ActionFinishCheckout, Expect: ExpectOrderComplete},
	)

	return Case{
		Name:       fmt.Sprintf("checkout with %d products", len(products)),
		Tags:       []string{"checkout"},
		Credential: &cred,
		Products:   products,
		Shopper:    fixtures.RandomShopper(),
		Steps:      steps,
	}
}

// BadgeLifecycleCase generates the badge lifecycle: add three fixed products
// watching the badge climb, remove one, then clear the cart and verify the
// badge disappears entirely.
func BadgeLifecycleCase(ds *fixtures.Dataset) Case {
	cred := firstValid(ds)
	all := ds.Products()
	products := all[:3]

	steps := []Step{
		{Name: "sign in", Action: ActionLogin, Expect: ExpectInventory},
	}
	for i, p := range products {
		steps = append(steps, Step{
			Name:   fmt.Sprintf("add %s", p.Name),
			Action: ActionAddProduct,
			Target: p.Name,
			Expect: ExpectBadgeCount,
			Count:  i + 1,
		})
	}
	steps = append(steps,
		Step{
			Name:   fmt.Sprintf("remove %s", products[1].Name),
			Action: ActionRemoveProduct,
			Target: products[1].Name,
			Expect: ExpectBadgeCount,
			Count:  2,
		},
		Step{Name: "open cart", Action: ActionOpenCart},
		Step{Name: "clear cart", Action: ActionClearCart, Expect: ExpectBadgeAbsent},
	)

	return Case{
		Name:       "cart badge lifecycle",
		Tags:       []string{"cart", "smoke"},
		Credential: &cred,
		Products:   products,
		Steps:      steps,
	}
}

func firstValid(ds *fixtures.Dataset) fixtures.UserCredential {
	return ds.ValidCredentials()[0]
}
