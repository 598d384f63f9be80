package pages

import (
	"fmt"
	"strings"
)

// CheckoutPage drives the two checkout steps and the confirmation page.
type CheckoutPage struct {
	s *Session
}

// FillInformation enters the shopper identity on step one.
func (p *CheckoutPage) FillInformation(first, last, postal string) error {
	if err := p.s.page.Locator(firstNameInput).Fill(first); err != nil {
		return fmt.Errorf("filling first name: %w", err)
	}
	if err := p.s.page.Locator(lastNameInput).Fill(last); err != nil {
		return fmt.Errorf("filling last name: %w", err)
	}
	if err := p.s.page.Locator(postalCodeInput).Fill(postal); err != nil {
		return fmt.Errorf("filling postal code: %w", err)
	}
	return nil
}

// Continue submits the information form and settles on either the
// overview page or a validation error.
func (p *CheckoutPage) Continue() error {
	if err := p.s.page.Locator(continueButton).Click(); err != nil {
		return fmt.Errorf("clicking continue: %w", err)
	}

	return p.s.waitFor(func() (bool, error) {
		if strings.Contains(p.s.page.URL(), checkoutStepTwoPath) {
			return true, nil
		}
		return p.s.page.Locator(errorMessage).IsVisible()
	})
}

// ErrorText reads the step-one validation message.
func (p *CheckoutPage) ErrorText() (string, error) {
	text, err := p.s.page.Locator(errorMessage).TextContent()
	if err != nil {
		return "", fmt.Errorf("reading checkout error: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ItemTotal reads the overview's pre-tax total.
func (p *CheckoutPage) ItemTotal() (float64, error) {
	return p.summaryAmount(itemTotalLabel)
}

// Tax reads the overview's tax line.
func (p *CheckoutPage) Tax() (float64, error) {
	return p.summaryAmount(taxLabel)
}

// Total reads the overview's grand total.
func (p *CheckoutPage) Total() (float64, error) {
	return p.summaryAmount(totalLabel)
}

func (p *CheckoutPage) summaryAmount(selector string) (float64, error) {
	text, err := p.s.page.Locator(selector).TextContent()
	if err != nil {
		return 0, fmt.Errorf("reading summary label %s: %w", selector, err)
	}
	return parseSummaryAmount(text)
}

// Finish places the order and waits for the confirmation page.
func (p *CheckoutPage) Finish() error {
	if err := p.s.page.Locator(finishButton).Click(); err != nil {
		return fmt.Errorf("clicking finish: %w", err)
	}
	return p.s.waitForPath(checkoutCompletePath)
}

// CompleteHeader reads the confirmation banner.
func (p *CheckoutPage) CompleteHeader() (string, error) {
	text, err := p.s.page.Locator(completeHeader).TextContent()
	if err != nil {
		return "", fmt.Errorf("reading confirmation header: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// BackHome returns from the confirmation page to the inventory.
func (p *CheckoutPage) BackHome() error {
	if err := p.s.page.Locator(backHomeButton).Click(); err != nil {
		return fmt.Errorf("clicking back home: %w", err)
	}
	return p.s.waitForPath(inventoryPath)
}

// CancelInformation returns from step one to the cart.
func (p *CheckoutPage) CancelInformation() error {
	if err := p.s.page.Locator(cancelLink).Click(); err != nil {
		return fmt.Errorf("cancelling the information step: %w", err)
	}
	return p.s.waitForPath(cartPath)
}

// CancelOverview returns from the overview to the inventory.
func (p *CheckoutPage) CancelOverview() error {
	if err := p.s.page.Locator(cancelLink).Click(); err != nil {
		return fmt.Errorf("cancelling the overview: %w", err)
	}
	return p.s.waitForPath(inventoryPath)
}
