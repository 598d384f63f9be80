package handlers

import (
	"fmt"
	"html/template"
	"math"
	"net/http"

	"github.com/farhankamalkhan/saucedemo/internal/fixtures"
	"github.com/farhankamalkhan/saucedemo/internal/store"
)

// taxRate is the flat sales tax applied on the checkout overview.
const taxRate = 0.08

// CheckoutStepTwoHandler serves the checkout overview page
type CheckoutStepTwoHandler struct {
	store    *store.Store
	template *template.Template
}

// CheckoutStepTwoData represents the data passed to the overview template
type CheckoutStepTwoData struct {
	CartCount int
	Items     []cartItem
	Subtotal  string
	Tax       string
	Total     string
}

// NewCheckoutStepTwoHandler creates a new checkout overview handler
func NewCheckoutStepTwoHandler(st *store.Store) (*CheckoutStepTwoHandler, error) {
	tmpl, err := parsePage("checkout-step-two.html")
	if err != nil {
		return nil, err
	}

	return &CheckoutStepTwoHandler{
		store:    st,
		template: tmpl,
	}, nil
}

// ServeHTTP handles the GET /checkout-step-two.html request
func (h *CheckoutStepTwoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := currentSession(h.store, r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	// The overview requires the information step to be done first.
	info, err := h.store.CheckoutInformation(id)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if info.FirstName == "" {
		http.Redirect(w, r, "/checkout-step-one.html", http.StatusFound)
		return
	}

	items, err := cartItems(h.store, id)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	subtotal := 0.0
	for _, item := range items {
		price, err := fixtures.ParseCurrency(item.Price)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		subtotal += price
	}
	tax := math.Round(subtotal*taxRate*100) / 100

	data := CheckoutStepTwoData{
		CartCount: h.store.CartCount(id),
		Items:     items,
		Subtotal:  fmt.Sprintf("$%.2f", subtotal),
		Tax:       fmt.Sprintf("$%.2f", tax),
		Total:     fmt.Sprintf("$%.2f", subtotal+tax),
	}
	if err := h.template.ExecuteTemplate(w, "checkout-step-two.html", data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
