package pages

import (
	"fmt"
	"strings"

	"github.com/farhankamalkhan/saucedemo/internal/scenario"
)

// Driver executes scenario steps through the page objects.
type Driver struct {
	s *Session
}

var _ scenario.Driver = (*Driver)(nil)

// NewDriver wraps a session for the scenario runner.
func NewDriver(s *Session) *Driver {
	return &Driver{s: s}
}

// Login opens the login page and submits the credential pair.
func (d *Driver) Login(username, password string) error {
	login := d.s.Login()
	if err := login.Open(); err != nil {
		return err
	}
	return login.Attempt(username, password)
}

// LoginError reads the login error container.
func (d *Driver) LoginError() (string, error) {
	return d.s.Login().ErrorText()
}

// Location reports the browser's current URL.
func (d *Driver) Location() (string, error) {
	return d.s.URL(), nil
}

// AddProduct adds a product from the listing.
func (d *Driver) AddProduct(name string) error {
	return d.s.Inventory().AddProduct(name)
}

// RemoveProduct removes a product from whichever page is showing: the cart
// when the session is there, the listing otherwise.
func (d *Driver) RemoveProduct(name string) error {
	if strings.Contains(d.s.URL(), cartPath) {
		return d.s.Cart().RemoveProduct(name)
	}
	return d.s.Inventory().RemoveProduct(name)
}

// OpenCart opens the cart through the header link.
func (d *Driver) OpenCart() error {
	return d.s.OpenCart()
}

// ClearCart empties the cart row by row.
func (d *Driver) ClearCart() error {
	return d.s.Cart().ClearAll()
}

// CartItems lists the carted product names.
func (d *Driver) CartItems() ([]string, error) {
	return d.s.Cart().ItemNames()
}

// BadgeCount reads the header badge.
func (d *Driver) BadgeCount() (int, error) {
	return d.s.BadgeCount()
}

// BeginCheckout proceeds from the cart to the information step.
func (d *Driver) BeginCheckout() error {
	return d.s.Cart().Checkout()
}

// FillInformation enters the shopper identity.
func (d *Driver) FillInformation(first, last, postal string) error {
	return d.s.Checkout().FillInformation(first, last, postal)
}

// ContinueToOverview submits the information form and fails with the
// storefront's validation message if it did not reach the overview.
func (d *Driver) ContinueToOverview() error {
	checkout := d.s.Checkout()
	if err := checkout.Continue(); err != nil {
		return err
	}
	if !strings.Contains(d.s.URL(), checkoutStepTwoPath) {
		text, err := checkout.ErrorText()
		if err != nil {
			return fmt.Errorf("information step did not continue")
		}
		return fmt.Errorf("information step rejected: %s", text)
	}
	return nil
}

// ItemTotal reads the overview's pre-tax total.
func (d *Driver) ItemTotal() (float64, error) {
	return d.s.Checkout().ItemTotal()
}

// FinishCheckout places the order.
func (d *Driver) FinishCheckout() error {
	return d.s.Checkout().Finish()
}

// CompleteHeader reads the confirmation banner.
func (d *Driver) CompleteHeader() (string, error) {
	return d.s.Checkout().CompleteHeader()
}
