package handlers

import (
	"html/template"
	"net/http"

	"github.com/farhankamalkhan/saucedemo/internal/store"
)

// CheckoutCompleteHandler places the order and serves the confirmation page
type CheckoutCompleteHandler struct {
	store    *store.Store
	template *template.Template
}

// CheckoutCompleteData represents the data passed to the confirmation template
type CheckoutCompleteData struct {
	CartCount int
}

// NewCheckoutCompleteHandler creates a new checkout completion handler
func NewCheckoutCompleteHandler(st *store.Store) (*CheckoutCompleteHandler, error) {
	tmpl, err := parsePage("checkout-complete.html")
	if err != nil {
		return nil, err
	}

	return &CheckoutCompleteHandler{
		store:    st,
		template: tmpl,
	}, nil
}

// ServeHTTP handles POST /checkout-complete.html (finish, posted by the
// overview page) and GET /checkout-complete.html (confirmation page)
func (h *CheckoutCompleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := currentSession(h.store, r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	switch r.Method {
	case http.MethodPost:
		if err := h.store.CompleteOrder(id); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/checkout-complete.html", http.StatusSeeOther)
	case http.MethodGet:
		data := CheckoutCompleteData{CartCount: h.store.CartCount(id)}
		if err := h.template.ExecuteTemplate(w, "checkout-complete.html", data); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
