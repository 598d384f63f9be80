package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// InventoryPage drives the product listing.
type InventoryPage struct {
	s *Session
}

// Open navigates straight to the inventory page. Without a signed-in
// session the storefront bounces this back to the login page.
func (p *InventoryPage) Open() error {
	if _, err := p.s.page.Goto(p.s.baseURL + inventoryPath); err != nil {
		return fmt.Errorf("opening inventory page: %w", err)
	}
	return nil
}

// Await waits until the product list is visible.
func (p *InventoryPage) Await() error {
	if err := p.s.page.Locator(inventoryList).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(p.s.timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("waiting for the product list: %w", err)
	}
	return nil
}

// ProductNames lists the catalog rows in page order.
func (p *InventoryPage) ProductNames() ([]string, error) {
	names, err := p.s.page.Locator(inventoryRow + " " + itemName).AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("reading product names: %w", err)
	}
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names, nil
}

// PriceOf reads the product's displayed price tag.
func (p *InventoryPage) PriceOf(product string) (string, error) {
	row, err := p.row(product)
	if err != nil {
		return "", err
	}
	text, err := row.Locator(itemPrice).TextContent()
	if err != nil {
		return "", fmt.Errorf("reading price of %q: %w", product, err)
	}
	return strings.TrimSpace(text), nil
}

// AddProduct clicks the product's add button and waits for it to flip to
// remove.
func (p *InventoryPage) AddProduct(product string) error {
	row, err := p.row(product)
	if err != nil {
		return err
	}
	if err := row.Locator(addButton).Click(); err != nil {
		return fmt.Errorf("adding %q: %w", product, err)
	}

	return p.s.waitFor(func() (bool, error) {
		row, err := p.row(product)
		if err != nil {
			return false, err
		}
		return row.Locator(removeButton).IsVisible()
	})
}

// RemoveProduct clicks the product's remove button and waits for the add
// button to come back.
func (p *InventoryPage) RemoveProduct(product string) error {
	row, err := p.row(product)
	if err != nil {
		return err
	}
	if err := row.Locator(removeButton).Click(); err != nil {
		return fmt.Errorf("removing %q: %w", product, err)
	}

	return p.s.waitFor(func() (bool, error) {
		row, err := p.row(product)
		if err != nil {
			return false, err
		}
		return row.Locator(addButton).IsVisible()
	})
}

// row resolves the single listing row whose name matches the product
// exactly. Partial matches do not count: "Sauce Labs Bolt T-Shirt" must
// not resolve when asked for "T-Shirt".
func (p *InventoryPage) row(product string) (playwright.Locator, error) {
	rows := p.s.page.Locator(inventoryRow)
	count, err := rows.Count()
	if err != nil {
		return nil, fmt.Errorf("counting listing rows: %w", err)
	}

	var match playwright.Locator
	matches := 0
	for i := 0; i < count; i++ {
		row := rows.Nth(i)
		name, err := row.Locator(itemName).TextContent()
		if err != nil {
			return nil, fmt.Errorf("reading row %d name: %w", i, err)
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
		return nil, fmt.Errorf("%w: %q is not on the page", ErrLookup, product)
	default:
		return nil, fmt.Errorf("%w: %q matches %d rows", ErrLookup, product, matches)
	}
}
