package pages

import (
	"fmt"
	"strings"
)

// LoginPage drives the storefront login form.
type LoginPage struct {
	s *Session
}

// Open navigates to the login page.
func (p *LoginPage) Open() error {
	if _, err := p.s.page.Goto(p.s.baseURL + loginPath); err != nil {
		return fmt.Errorf("opening login page: %w", err)
	}
	return nil
}

// Attempt submits the credential pair and returns once the attempt has
// settled: either the inventory page loaded or the error container showed.
// Which of the two happened is for the caller to assert.
func (p *LoginPage) Attempt(username, password string) error {
	if err := p.s.page.Locator(usernameInput).Fill(username); err != nil {
		return fmt.Errorf("filling username: %w", err)
	}
	if err := p.s.page.Locator(passwordInput).Fill(password); err != nil {
		return fmt.Errorf("filling password: %w", err)
	}
	if err := p.s.page.Locator(loginButton).Click(); err != nil {
		return fmt.Errorf("clicking login: %w", err)
	}

	return p.s.waitFor(func() (bool, error) {
		if strings.Contains(p.s.page.URL(), inventoryPath) {
			return true, nil
		}
		return p.s.page.Locator(errorMessage).IsVisible()
	})
}

// ErrorText reads the login error container.
func (p *LoginPage) ErrorText() (string, error) {
	text, err := p.s.page.Locator(errorMessage).TextContent()
	if err != nil {
		return "", fmt.Errorf("reading login error: %w", err)
	}
	return strings.TrimSpace(text), nil
}
