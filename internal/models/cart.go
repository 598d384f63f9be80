package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CartStatus represents valid cart states
type CartStatus string

// Cart statuses
const (
	CartStatusOpen      CartStatus = "open"
	CartStatusCheckout  CartStatus = "checkout"
	CartStatusCompleted CartStatus = "completed"
)

// Cart represents a shopper's session cart with business logic. Items hold
// product display names, in the order they were added; the product name is
// the natural key throughout.
type Cart struct {
	ID          string
	Status      CartStatus
	Information CheckoutInformation
	CreatedAt   time.Time
	UpdatedAt   time.Time

	items []string
}

// CheckoutInformation carries the shopper identity entered at checkout step one
type CheckoutInformation struct {
	FirstName  string
	LastName   string
	PostalCode string
}

// Domain errors
var (
	ErrEmptyProductName      = errors.New("product name cannot be empty")
	ErrCartNotOpen           = errors.New("cart is not open")
	ErrInvalidCartTransition = errors.New("invalid cart status transition")
	ErrFirstNameRequired     = errors.New("first name is required")
	ErrLastNameRequired      = errors.New("last name is required")
	ErrPostalCodeRequired    = errors.New("postal code is required")
)

// NewCart creates a new open cart
func NewCart() *Cart {
	now := time.Now()
	return &Cart{
		ID:        uuid.New().String(),
		Status:    CartStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add puts a product into the cart. Adding a product that is already present
// is a no-op, so the cart holds at most one of each product.
func (c *Cart) Add(productName string) error {
	if productName == "" {
		return ErrEmptyProductName
	}
	if c.Status != CartStatusOpen {
		return fmt.Errorf("%w: cannot add to cart with status %s", ErrCartNotOpen, c.Status)
	}

	if c.Contains(productName) {
		return nil
	}
	c.items = append(c.items, productName)
	c.UpdatedAt = time.Now()
	return nil
}

// Remove takes a product out of the cart. Removing a product that is not
// present is a no-op.
func (c *Cart) Remove(productName string) error {
	if productName == "" {
		return ErrEmptyProductName
	}
	if c.Status != CartStatusOpen {
		return fmt.Errorf("%w: cannot remove from cart with status %s", ErrCartNotOpen, c.Status)
	}

	for i, name := range c.items {
		if name == productName {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

// Clear removes every product from the cart
func (c *Cart) Clear() error {
	if c.Status != CartStatusOpen {
		return fmt.Errorf("%w: cannot clear cart with status %s", ErrCartNotOpen, c.Status)
	}

	c.items = nil
	c.UpdatedAt = time.Now()
	return nil
}

// Items returns the product names in the cart in the order they were added
func (c *Cart) Items() []string {
	return append([]string(nil), c.items...)
}

// Count returns the number of products in the cart
func (c *Cart) Count() int {
	return len(c.items)
}

// Contains returns true if the named product is in the cart
func (c *Cart) Contains(productName string) bool {
	for _, name := range c.items {
		if name == productName {
			return true
		}
	}
	return false
}

// BeginCheckout moves an open cart into the checkout flow
func (c *Cart) BeginCheckout() error {
	if c.Status != CartStatusOpen {
		return fmt.Errorf("%w: cannot begin checkout with status %s", ErrInvalidCartTransition, c.Status)
	}

	c.Status = CartStatusCheckout
	c.UpdatedAt = time.Now()
	return nil
}

// EnterInformation records the shopper identity during checkout
func (c *Cart) EnterInformation(info CheckoutInformation) error {
	if c.Status != CartStatusCheckout {
		return fmt.Errorf("%w: cannot enter information with status %s", ErrInvalidCartTransition, c.Status)
	}
	if info.FirstName == "" {
		return ErrFirstNameRequired
	}
	if info.LastName == "" {
		return ErrLastNameRequired
	}
	if info.PostalCode == "" {
		return ErrPostalCodeRequired
	}

	c.Information = info
	c.UpdatedAt = time.Now()
	return nil
}

// AbandonCheckout returns a checking-out cart to the open state, keeping
// its items
func (c *Cart) AbandonCheckout() error {
	if c.Status != CartStatusCheckout {
		return fmt.Errorf("%w: cannot abandon checkout with status %s", ErrInvalidCartTransition, c.Status)
	}

	c.Status = CartStatusOpen
	c.UpdatedAt = time.Now()
	return nil
}

// Complete finishes the checkout and closes the cart
func (c *Cart) Complete() error {
	if c.Status != CartStatusCheckout {
		return fmt.Errorf("%w: cannot complete cart with status %s", ErrInvalidCartTransition, c.Status)
	}

	c.Status = CartStatusCompleted
	c.UpdatedAt = time.Now()
	return nil
}

// IsOpen returns true if the cart accepts item changes
func (c *Cart) IsOpen() bool {
	return c.Status == CartStatusOpen
}

// IsCheckingOut returns true if the cart is in the checkout flow
func (c *Cart) IsCheckingOut() bool {
	return c.Status == CartStatusCheckout
}

// IsCompleted returns true if the cart's order has been placed
func (c *Cart) IsCompleted() bool {
	return c.Status == CartStatusCompleted
}
