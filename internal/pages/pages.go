// Package pages implements the page object model for the storefront under
// test. Each page object wraps one storefront page's selectors and exposes
// the interactions the scenarios need. Every wait is condition based and
// bounded by the suite's action timeout; nothing in here sleeps for a fixed
// amount of time and hopes.
package pages

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/farhankamalkhan/saucedemo/internal/config"
	"github.com/farhankamalkhan/saucedemo/internal/fixtures"
)

// ErrLookup reports a product lookup that did not resolve to exactly one row.
var ErrLookup = errors.New("product lookup did not match exactly one row")

// ErrWait reports a condition that did not hold before the action timeout.
var ErrWait = errors.New("condition not met before timeout")

// Session binds one browser page to the storefront under test. Page objects
// share it, so one session sees one consistent cart.
type Session struct {
	page    playwright.Page
	baseURL string
	timeout time.Duration
	poll    time.Duration
}

// NewSession creates a session over an open browser page. The suite's
// action timeout becomes the page's default, so every locator action is
// bounded by it.
func NewSession(page playwright.Page, cfg *config.SuiteConfig) *Session {
	page.SetDefaultTimeout(float64(cfg.ActionTimeout.Milliseconds()))
	return &Session{
		page:    page,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.ActionTimeout,
		poll:    cfg.PollInterval,
	}
}

// Login returns the login page object.
func (s *Session) Login() *LoginPage { return &LoginPage{s: s} }

// Inventory returns the product listing page object.
func (s *Session) Inventory() *InventoryPage { return &InventoryPage{s: s} }

// Cart returns the cart page object.
func (s *Session) Cart() *CartPage { return &CartPage{s: s} }

// Checkout returns the checkout page object.
func (s *Session) Checkout() *CheckoutPage { return &CheckoutPage{s: s} }

// URL returns the browser's current location.
func (s *Session) URL() string {
	return s.page.URL()
}

// BadgeCount reads the cart badge in the shared header. An absent badge
// means an empty cart.
func (s *Session) BadgeCount() (int, error) {
	badge := s.page.Locator(cartBadge)
	visible, err := badge.IsVisible()
	if err != nil {
		return 0, fmt.Errorf("checking cart badge: %w", err)
	}
	if !visible {
		return 0, nil
	}
	text, err := badge.TextContent()
	if err != nil {
		return 0, fmt.Errorf("reading cart badge: %w", err)
	}
	return parseBadgeText(text)
}

// OpenCart clicks the header cart link and waits for the cart page.
func (s *Session) OpenCart() error {
	if err := s.page.Locator(cartLink).Click(); err != nil {
		return fmt.Errorf("clicking cart link: %w", err)
	}
	return s.waitForPath(cartPath)
}

// waitFor polls cond with the session's bounds.
func (s *Session) waitFor(cond func() (bool, error)) error {
	return waitFor(s.timeout, s.poll, cond)
}

// waitForPath waits until the browser lands on the given storefront path.
func (s *Session) waitForPath(path string) error {
	if err := s.page.WaitForURL("**"+path, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(s.timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("waiting for %s: %w", path, err)
	}
	return nil
}

// waitFor polls cond until it holds or the timeout passes. A condition
// error ends the wait immediately.
func waitFor(timeout, poll time.Duration, cond func() (bool, error)) error {
	deadline := time.Now().Add(timeout)
	for {
		ok, err := cond()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrWait
		}
		time.Sleep(poll)
	}
}

// parseBadgeText turns the badge's text into a count.
func parseBadgeText(text string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("cart badge %q is not a count: %w", text, err)
	}
	return count, nil
}

// parseSummaryAmount extracts the dollar amount from a summary label such
// as "Item total: $39.98".
func parseSummaryAmount(text string) (float64, error) {
	idx := strings.Index(text, "$")
	if idx < 0 {
		return 0, fmt.Errorf("no amount in %q", text)
	}
	return fixtures.ParseCurrency(strings.TrimSpace(text[idx:]))
}
