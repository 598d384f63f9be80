package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/farhankamalkhan/saucedemo/internal/models"
)

func TestCheckoutStepOneHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		withSession  bool
		beginFirst   bool
		form         url.Values
		wantStatus   int
		wantLocation string
		checkContent []string
	}{
		{
			name:         "redirects to login without a session",
			method:       http.MethodGet,
			wantStatus:   http.StatusFound,
			wantLocation: "/",
		},
		{
			name:        "GET renders the information form",
			method:      http.MethodGet,
			withSession: true,
			wantStatus:  http.StatusOK,
			checkContent: []string{
				"Checkout: Your Information",
				`id="first-name"`,
				`id="last-name"`,
				`id="postal-code"`,
				`id="continue"`,
				`id="cancel"`,
			},
		},
		{
			name:        "POST with complete information continues to the overview",
			method:      http.MethodPost,
			withSession: true,
			beginFirst:  true,
			form: url.Values{
				"first-name":  {"Jane"},
				"last-name":   {"Shopper"},
				"postal-code": {"75000"},
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/checkout-step-two.html",
		},
		{
			name:        "POST without a first name renders the error",
			method:      http.MethodPost,
			withSession: true,
			beginFirst:  true,
			form: url.Values{
				"last-name":   {"Shopper"},
				"postal-code": {"75000"},
			},
			wantStatus:   http.StatusOK,
			checkContent: []string{"Error: First Name is required"},
		},
		{
			name:        "POST without a last name renders the error",
			method:      http.MethodPost,
			withSession: true,
			beginFirst:  true,
			form: url.Values{
				"first-name":  {"Jane"},
				"postal-code": {"75000"},
			},
			wantStatus:   http.StatusOK,
			checkContent: []string{"Error: Last Name is required"},
		},
		{
			name:        "POST without a postal code renders the error",
			method:      http.MethodPost,
			withSession: true,
			beginFirst:  true,
			form: url.Values{
				"first-name": {"Jane"},
				"last-name":  {"Shopper"},
			},
			wantStatus:   http.StatusOK,
			checkContent: []string{"Error: Postal Code is required"},
		},
		{
			name:        "DELETE is not allowed",
			method:      http.MethodDelete,
			withSession: true,
			wantStatus:  http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testStore(t)
			sessionID := ""
			if tt.withSession {
				sessionID = testSession(t, st)
			}
			if tt.beginFirst {
				if err := st.BeginCheckout(sessionID); err != nil {
					t.Fatalf("BeginCheckout() unexpected error = %v", err)
				}
			}

			handler, err := NewCheckoutStepOneHandler(st)
			if err != nil {
				t.Fatalf("NewCheckoutStepOneHandler() unexpected error = %v", err)
			}

			body := ""
			if tt.form != nil {
				body = tt.form.Encode()
			}
			req := httptest.NewRequest(tt.method, "/checkout-step-one.html", strings.NewReader(body))
			if tt.form != nil {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			if sessionID != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionID})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" {
				if got := rec.Header().Get("Location"); got != tt.wantLocation {
					t.Errorf("Location = %q, want %q", got, tt.wantLocation)
				}
			}
			for _, content := range tt.checkContent {
				if !strings.Contains(rec.Body.String(), content) {
					t.Errorf("body does not contain %q", content)
				}
			}
		})
	}
}

func TestCheckoutStepOneHandler_GetBeginsCheckout(t *testing.T) {
	st := testStore(t)
	sessionID := testSession(t, st)
	if err := st.AddToCart(sessionID, "Sauce Labs Backpack"); err != nil {
		t.Fatalf("AddToCart() unexpected error = %v", err)
	}

	handler, err := NewCheckoutStepOneHandler(st)
	if err != nil {
		t.Fatalf("NewCheckoutStepOneHandler() unexpected error = %v", err)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(http.MethodGet, "/checkout-step-one.html", sessionID))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	// The cart is checking out now, so it refuses new items.
	if err := st.AddToCart(sessionID, "Sauce Labs Onesie"); !errors.Is(err, models.ErrCartNotOpen) {
		t.Errorf("AddToCart() after opening checkout = %v, want ErrCartNotOpen", err)
	}
}

func TestCheckoutStepOneHandler_ErrorKeepsEnteredValues(t *testing.T) {
	st := testStore(t)
	sessionID := testSession(t, st)
	if err := st.BeginCheckout(sessionID); err != nil {
		t.Fatalf("BeginCheckout() unexpected error = %v", err)
	}

	handler, err := NewCheckoutStepOneHandler(st)
	if err != nil {
		t.Fatalf("NewCheckoutStepOneHandler() unexpected error = %v", err)
	}

	form := url.Values{
		"first-name":  {"Jane"},
		"postal-code": {"75000"},
	}
	req := httptest.NewRequest(http.MethodPost, "/checkout-step-one.html", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionID})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	for _, content := range []string{`value="Jane"`, `value="75000"`} {
		if !strings.Contains(rec.Body.String(), content) {
			t.Errorf("body does not contain %q", content)
		}
	}
}
