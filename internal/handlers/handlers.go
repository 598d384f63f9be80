// Package handlers serves the storefront pages: login, inventory, cart and
// the three checkout steps. Page markup follows the swag-shop selector
// contract the e2e suite drives (element IDs, data-test attributes and
// .html paths), so the bundled server is a drop-in stand-in for the hosted
// site.
package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/farhankamalkhan/saucedemo/internal/fixtures"
	"github.com/farhankamalkhan/saucedemo/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// sessionCookieName is the cookie carrying the shopper's session ID.
const sessionCookieName = "session_id"

// parsePage parses the named page template together with the shared header
// partial from the embedded template set.
func parsePage(page string) (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/header.html", "templates/"+page)
}

// sessionID extracts the session cookie from a request, empty when absent.
func sessionID(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// currentSession returns the request's session ID when it belongs to a
// logged-in shopper.
func currentSession(st *store.Store, r *http.Request) (string, bool) {
	id := sessionID(r)
	if id == "" {
		return "", false
	}
	if _, ok := st.Username(id); !ok {
		return "", false
	}
	return id, true
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// cartItem is a cart row as the cart and overview templates render it.
type cartItem struct {
	Name        string
	Description string
	Price       string
	Key         string
}

// cartItems resolves the session's cart contents against the catalog.
func cartItems(st *store.Store, sessionID string) ([]cartItem, error) {
	names, err := st.CartItems(sessionID)
	if err != nil {
		return nil, err
	}

	items := make([]cartItem, 0, len(names))
	for _, name := range names {
		product, ok := st.Product(name)
		if !ok {
			continue
		}
		items = append(items, cartItem{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Key:         fixtures.NormalizeProductKey(product.Name),
		})
	}
	return items, nil
}
