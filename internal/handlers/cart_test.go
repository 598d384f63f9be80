package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/farhankamalkhan/saucedemo/internal/store"
)

func TestCartHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		withSession  bool
		setup        func(t *testing.T, st *store.Store, id string)
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
			name:        "renders an empty cart",
			method:      http.MethodGet,
			withSession: true,
			wantStatus:  http.StatusOK,
			checkContent: []string{
				"Your Cart",
				`id="continue-shopping"`,
				`id="checkout"`,
			},
		},
		{
			name:        "lists carted products with remove buttons",
			method:      http.MethodGet,
			withSession: true,
			setup: func(t *testing.T, st *store.Store, id string) {
				for _, name := range []string{"Sauce Labs Backpack", "Sauce Labs Onesie"} {
					if err := st.AddToCart(id, name); err != nil {
						t.Fatalf("AddToCart(%q) unexpected error = %v", name, err)
					}
				}
			},
			wantStatus: http.StatusOK,
			checkContent: []string{
				`class="cart_item"`,
				"Sauce Labs Backpack",
				"Sauce Labs Onesie",
				"$7.99",
				`id="remove-sauce-labs-backpack"`,
				`id="remove-sauce-labs-onesie"`,
				`class="shopping_cart_badge"`,
			},
		},
		{
			name:        "POST is not allowed",
			method:      http.MethodPost,
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
			if tt.setup != nil {
				tt.setup(t, st, sessionID)
			}

			handler, err := NewCartHandler(st)
			if err != nil {
				t.Fatalf("NewCartHandler() unexpected error = %v", err)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, sessionRequest(tt.method, "/cart.html", sessionID))

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

func TestCartUpdateHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		withSession  bool
		form         url.Values
		wantStatus   int
		wantLocation string
	}{
		{
			name:        "add redirects back to the inventory",
			method:      http.MethodPost,
			withSession: true,
			form: url.Values{
				"op":      {"add"},
				"product": {"Sauce Labs Backpack"},
				"from":    {"inventory"},
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/inventory.html",
		},
		{
			name:        "remove from the cart page redirects back to the cart",
			method:      http.MethodPost,
			withSession: true,
			form: url.Values{
				"op":      {"remove"},
				"product": {"Sauce Labs Backpack"},
				"from":    {"cart"},
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/cart.html",
		},
		{
			name:        "unknown operation is a bad request",
			method:      http.MethodPost,
			withSession: true,
			form: url.Values{
				"op":      {"upsert"},
				"product": {"Sauce Labs Backpack"},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown product is not found",
			method:      http.MethodPost,
			withSession: true,
			form: url.Values{
				"op":      {"add"},
				"product": {"Sauce Labs Teleporter"},
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "redirects to login without a session",
			method: http.MethodPost,
			form: url.Values{
				"op":      {"add"},
				"product": {"Sauce Labs Backpack"},
			},
			wantStatus:   http.StatusFound,
			wantLocation: "/",
		},
		{
			name:        "GET is not allowed",
			method:      http.MethodGet,
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

			handler := NewCartUpdateHandler(st)

			body := ""
			if tt.form != nil {
				body = tt.form.Encode()
			}
			req := httptest.NewRequest(tt.method, "/cart/update", strings.NewReader(body))
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
		})
	}
}

func TestCartUpdateHandler_MutatesCart(t *testing.T) {
	st := testStore(t)
	sessionID := testSession(t, st)
	handler := NewCartUpdateHandler(st)

	post := func(op, product string) {
		t.Helper()
		form := url.Values{
			"op":      {op},
			"product": {product},
		}
		req := httptest.NewRequest(http.MethodPost, "/cart/update", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionID})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("%s %s: status = %d, want %d", op, product, rec.Code, http.StatusSeeOther)
		}
	}

	post("add", "Sauce Labs Backpack")
	post("add", "Sauce Labs Bike Light")
	post("remove", "Sauce Labs Backpack")

	items, err := st.CartItems(sessionID)
	if err != nil {
		t.Fatalf("CartItems() unexpected error = %v", err)
	}
	if len(items) != 1 || items[0] != "Sauce Labs Bike Light" {
		t.Errorf("cart items = %v, want [Sauce Labs Bike Light]", items)
	}
}
