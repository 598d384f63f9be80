package pages

import (
	"fmt"
	"slices"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// CartPage drives the cart listing.
type CartPage struct {
	s *Session
}

// Open navigates straight to the cart page.
func (p *CartPage) Open() error {
	if _, err := p.s.page.Goto(p.s.baseURL + cartPath); err != nil {
		return fmt.Errorf("opening cart page: %w", err)
	}
	return nil
}

// ItemNames lists the carted product names in page order.
func (p *CartPage) ItemNames() ([]string, error) {
	names, err := p.s.page.Locator(cartRow + " " + itemName).AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("reading cart items: %w", err)
	}
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names, nil
}

// ItemCount counts the cart rows.
func (p *CartPage) ItemCount() (int, error) {
	count, err := p.s.page.Locator(cartRow).Count()
	if err != nil {
		return 0, fmt.Errorf("counting cart items: %w", err)
	}
	return count, nil
}

// RemoveProduct removes one product and waits for its row to disappear.
func (p *CartPage) RemoveProduct(product string) error {
	row, err := p.row(product)
	if err != nil {
		return err
	}
	if err := row.Locator(rowButton).Click(); err != nil {
		return fmt.Errorf("removing %q from the cart: %w", product, err)
	}

	return p.s.waitFor(func() (bool, error) {
		names, err := p.ItemNames()
		if err != nil {
			return false, err
		}
		return !slices.Contains(names, product), nil
	})
}

// ClearAll removes rows until the cart is empty. After every click it
// waits for the row count to strictly decrease, so a remove that does not
// land surfaces as an error instead of an endless loop.
func (p *CartPage) ClearAll() error {
	for {
		count, err := p.ItemCount()
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}

		if err := p.s.page.Locator(cartRow).First().Locator(rowButton).Click(); err != nil {
			return fmt.Errorf("removing cart row: %w", err)
		}

		before := count
		if err := p.s.waitFor(func() (bool, error) {
			n, err := p.ItemCount()
			if err != nil {
				return false, err
			}
			return n < before, nil
		}); err != nil {
			return fmt.Errorf("cart stuck at %d items: %w", before, err)
		}
	}
}

// Checkout proceeds to the information step.
func (p *CartPage) Checkout() error {
	if err := p.s.page.Locator(checkoutButton).Click(); err != nil {
		return fmt.Errorf("clicking checkout: %w", err)
	}
	return p.s.waitForPath(checkoutStepOnePath)
}

// ContinueShopping returns to the inventory.
func (p *CartPage) ContinueShopping() error {
	if err := p.s.page.Locator(continueShoppingButton).Click(); err != nil {
		return fmt.Errorf("clicking continue shopping: %w", err)
	}
	return p.s.waitForPath(inventoryPath)
}

// row resolves the single cart row whose name matches the product exactly.
func (p *CartPage) row(product string) (playwright.Locator, error) {
	rows := p.s.page.Locator(cartRow)
	count, err := rows.Count()
	if err != nil {
		return nil, fmt.Errorf("counting cart rows: %w", err)
	}

	var match playwright.Locator
	matches := 0
	for i := 0; i < count; i++ {
		row := rows.Nth(i)
		name, err := row.Locator(itemName).TextContent()
		if err != nil {
			return nil, fmt.Errorf("reading cart row %d name: %w", i, err)
		}
		if strings.TrimSpace(name) == product {
			match = row
			matches++
		}
	}

	switch matches {
	case 1:
		return match, nil
	case 0:
		return nil, fmt.Errorf("%w: %q is not in the cart", ErrLookup, product)
	default:
		return nil, fmt.Errorf("%w: %q matches %d cart rows", ErrLookup, product, matches)
	}
}
