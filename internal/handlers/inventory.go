package handlers

import (
	"html/template"
	"net/http"

	"github.com/farhankamalkhan/saucedemo/internal/fixtures"
	"github.com/farhankamalkhan/saucedemo/internal/store"
)

// InventoryHandler serves the product listing page
type InventoryHandler struct {
	store    *store.Store
	template *template.Template
}

// InventoryItem represents one product row on the inventory page
type InventoryItem struct {
	Name        string
	Description string
	Price       string
	Key         string
	InCart      bool
}

// InventoryData represents the data passed to the inventory template
type InventoryData struct {
	CartCount int
	Items     []InventoryItem
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(st *store.Store) (*InventoryHandler, error) {
	tmpl, err := parsePage("inventory.html")
	if err != nil {
		return nil, err
	}

	return &InventoryHandler{
		store:    st,
		template: tmpl,
	}, nil
}

// ServeHTTP handles the GET /inventory.html request
func (h *InventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := currentSession(h.store, r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	// Returning to the shop floor leaves any in-progress checkout.
	if err := h.store.AbandonCheckout(id); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	products := h.store.Products()
	data := InventoryData{
		CartCount: h.store.CartCount(id),
		Items:     make([]InventoryItem, 0, len(products)),
	}
	for _, p := range products {
		data.Items = append(data.Items, InventoryItem{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Key:         fixtures.NormalizeProductKey(p.Name),
			InCart:      h.store.InCart(id, p.Name),
		})
	}

	if err := h.template.ExecuteTemplate(w, "inventory.html", data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
