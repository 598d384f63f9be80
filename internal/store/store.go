// Package store holds the storefront's in-memory state: the account and
// product collections seeded from the fixture dataset, and the live shopper
// sessions with their carts.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/farhankamalkhan/saucedemo/internal/fixtures"
	"github.com/farhankamalkhan/saucedemo/internal/models"
)

// CredentialMismatchMessage is the login failure shown when a username and
// password match no account.
const CredentialMismatchMessage = "Epic sadface: Username and password do not match any user in this service"

// Domain errors
var (
	ErrNoSession      = errors.New("no such session")
	ErrUnknownProduct = errors.New("unknown product")
)

// LoginError is a rejected authentication carrying the message the login
// page displays.
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string {
	return e.Message
}

// Store is the storefront's state. All access is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	dataset  *fixtures.Dataset
	sessions map[string]*session
}

type session struct {
	username  string
	cart      *models.Cart
	createdAt time.Time
}

// New creates a Store seeded from the fixture dataset. Valid credentials
// become accounts; invalid credentials authenticate to exactly their
// recorded error message.
func New(ds *fixtures.Dataset) *Store {
	return &Store{
		dataset:  ds,
		sessions: make(map[string]*session),
	}
}

// Products returns the catalog in fixture order.
func (s *Store) Products() []fixtures.Product {
	return s.dataset.Products()
}

// ValidCredentials returns the accounts that can sign in, in fixture order.
func (s *Store) ValidCredentials() []fixtures.UserCredential {
	return s.dataset.ValidCredentials()
}

// Product looks up a catalog product by display name.
func (s *Store) Product(name string) (fixtures.Product, bool) {
	return s.dataset.ProductByName(name)
}

// Authenticate checks a username/password pair against the seeded
// credentials. On success it opens a session with a fresh cart and returns
// the session ID; on failure it returns a LoginError with the message the
// login page must display.
func (s *Store) Authenticate(username, password string) (string, error) {
	for _, cred := range s.dataset.InvalidCredentials() {
		if cred.Username == username && cred.Password == password {
			return "", &LoginError{Message: cred.ExpectedError}
		}
	}

	for _, cred := range s.dataset.ValidCredentials() {
		if cred.Username == username && cred.Password == password {
			id := uuid.New().String()
			s.mu.Lock()
			s.sessions[id] = &session{
				username:  username,
				cart:      models.NewCart(),
				createdAt: time.Now(),
			}
			s.mu.Unlock()
			return id, nil
		}
	}

	return "", &LoginError{Message: CredentialMismatchMessage}
}

// Username returns the account name behind a session.
func (s *Store) Username(sessionID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return "", false
	}
	return sess.username, true
}

// EndSession discards a session and its cart.
func (s *Store) EndSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// AddToCart puts a catalog product into the session's cart.
func (s *Store) AddToCart(sessionID, productName string) error {
	if _, ok := s.dataset.ProductByName(productName); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, productName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNoSession
	}
	return sess.cart.Add(productName)
}

// RemoveFromCart takes a product out of the session's cart.
func (s *Store) RemoveFromCart(sessionID, productName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNoSession
	}
	return sess.cart.Remove(productName)
}

// CartItems returns the product names in the session's cart in the order
// they were added.
func (s *Store) CartItems(sessionID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNoSession
	}
	return sess.cart.Items(), nil
}

// CartCount returns the number of products in the session's cart, zero when
// the session does not exist.
func (s *Store) CartCount(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return 0
	}
	return sess.cart.Count()
}

// InCart reports whether the session's cart holds the named product.
func (s *Store) InCart(sessionID, productName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return false
	}
	return sess.cart.Contains(productName)
}

// BeginCheckout moves the session's cart into the checkout flow. Re-entering
// checkout is a no-op.
func (s *Store) BeginCheckout(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNoSession
	}
	if sess.cart.IsCheckingOut() {
		return nil
	}
	return sess.cart.BeginCheckout()
}

// AbandonCheckout returns the session's cart to the open state, keeping its
// items. A cart that is not checking out is left alone.
func (s *Store) AbandonCheckout(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNoSession
	}
	if !sess.cart.IsCheckingOut() {
		return nil
	}
	return sess.cart.AbandonCheckout()
}

// EnterInformation records the shopper identity for the session's checkout.
func (s *Store) EnterInformation(sessionID string, info models.CheckoutInformation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNoSession
	}
	return sess.cart.EnterInformation(info)
}

// CheckoutInformation returns the shopper identity entered for the session's
// checkout.
func (s *Store) CheckoutInformation(sessionID string) (models.CheckoutInformation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return models.CheckoutInformation{}, ErrNoSession
	}
	return sess.cart.Information, nil
}

// CompleteOrder finishes the session's checkout and opens a fresh cart so
// the shopper returns to an empty storefront.
func (s *Store) CompleteOrder(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNoSession
	}
	if err := sess.cart.Complete(); err != nil {
		return err
	}
	sess.cart = models.NewCart()
	return nil
}
