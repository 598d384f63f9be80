package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/farhankamalkhan/saucedemo/internal/models"
	"github.com/farhankamalkhan/saucedemo/internal/store"
)

// Checkout validation messages, shown in the step-one error container.
const (
	firstNameRequiredMessage  = "Error: First Name is required"
	lastNameRequiredMessage   = "Error: Last Name is required"
	postalCodeRequiredMessage = "Error: Postal Code is required"
)

// CheckoutStepOneHandler serves the checkout information form
type CheckoutStepOneHandler struct {
	store    *store.Store
	template *template.Template
}

// CheckoutStepOneData represents the data passed to the step-one template
type CheckoutStepOneData struct {
	CartCount  int
	Error      string
	FirstName  string
	LastName   string
	PostalCode string
}

// NewCheckoutStepOneHandler creates a new checkout step-one handler
func NewCheckoutStepOneHandler(st *store.Store) (*CheckoutStepOneHandler, error) {
	tmpl, err := parsePage("checkout-step-one.html")
	if err != nil {
		return nil, err
	}

	return &CheckoutStepOneHandler{
		store:    st,
		template: tmpl,
	}, nil
}

// ServeHTTP handles GET /checkout-step-one.html (form) and its POST
// (information submission)
func (h *CheckoutStepOneHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := currentSession(h.store, r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.begin(w, r, id)
	case http.MethodPost:
		h.submit(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CheckoutStepOneHandler) begin(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.BeginCheckout(id); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, id, CheckoutStepOneData{})
}

func (h *CheckoutStepOneHandler) submit(w http.ResponseWriter, r *http.Request, id string) {
	info := models.CheckoutInformation{
		FirstName:  r.FormValue("first-name"),
		LastName:   r.FormValue("last-name"),
		PostalCode: r.FormValue("postal-code"),
	}

	if err := h.store.EnterInformation(id, info); err != nil {
		message := ""
		switch {
		case errors.Is(err, models.ErrFirstNameRequired):
			message = firstNameRequiredMessage
		case errors.Is(err, models.ErrLastNameRequired):
			message = lastNameRequiredMessage
		case errors.Is(err, models.ErrPostalCodeRequired):
			message = postalCodeRequiredMessage
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		h.render(w, id, CheckoutStepOneData{
			Error:      message,
			FirstName:  info.FirstName,
			LastName:   info.LastName,
			PostalCode: info.PostalCode,
		})
		return
	}

	http.Redirect(w, r, "/checkout-step-two.html", http.StatusSeeOther)
}

func (h *CheckoutStepOneHandler) render(w http.ResponseWriter, id string, data CheckoutStepOneData) {
	data.CartCount = h.store.CartCount(id)
	if err := h.template.ExecuteTemplate(w, "checkout-step-one.html", data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
