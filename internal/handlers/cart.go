package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/farhankamalkhan/saucedemo/internal/store"
)

// CartHandler serves the cart page
type CartHandler struct {
	store    *store.Store
	template *template.Template
}

// CartData represents the data passed to the cart template
type CartData struct {
	CartCount int
	Items     []cartItem
}

// NewCartHandler creates a new cart handler
func NewCartHandler(st *store.Store) (*CartHandler, error) {
	tmpl, err := parsePage("cart.html")
	if err != nil {
		return nil, err
	}

	return &CartHandler{
		store:    st,
		template: tmpl,
	}, nil
}

// ServeHTTP handles the GET /cart.html request
func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := currentSession(h.store, r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	// Viewing the cart steps out of any in-progress checkout.
	if err := h.store.AbandonCheckout(id); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items, err := cartItems(h.store, id)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := CartData{
		CartCount: h.store.CartCount(id),
		Items:     items,
	}
	if err := h.template.ExecuteTemplate(w, "cart.html", data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// CartUpdateHandler applies add and remove operations posted by the
// inventory and cart pages
type CartUpdateHandler struct {
	store *store.Store
}

// NewCartUpdateHandler creates a new cart update handler
func NewCartUpdateHandler(st *store.Store) *CartUpdateHandler {
	return &CartUpdateHandler{store: st}
}

// ServeHTTP handles the POST /cart/update request. The form carries the
// operation ("add" or "remove"), the product name, and the page to return
// to ("inventory" or "cart").
func (h *CartUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := currentSession(h.store, r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	product := r.FormValue("product")
	var err error
	switch op := r.FormValue("op"); op {
	case "add":
		err = h.store.AddToCart(id, product)
	case "remove":
		err = h.store.RemoveFromCart(id, product)
	default:
		http.Error(w, "Unknown cart operation", http.StatusBadRequest)
		return
	}
	if err != nil {
		if errors.Is(err, store.ErrUnknownProduct) {
			http.Error(w, "Unknown product", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	target := "/inventory.html"
	if r.FormValue("from") == "cart" {
		target = "/cart.html"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
