package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/farhankamalkhan/saucedemo/internal/fixtures"
	"github.com/farhankamalkhan/saucedemo/internal/store"
)

// testStore builds a store seeded with the embedded fixtures
func testStore(t *testing.T) *store.Store {
	t.Helper()
	ds, err := fixtures.Default()
	if err != nil {
		t.Fatalf("loading fixtures: %v", err)
	}
	return store.New(ds)
}

// testSession signs in the first valid fixture user
func testSession(t *testing.T, st *store.Store) string {
	t.Helper()
	id, err := st.Authenticate("standard_user", "secret_sauce")
	if err != nil {
		t.Fatalf("Authenticate() unexpected error = %v", err)
	}
	return id
}

// sessionRequest builds a request carrying the session cookie
func sessionRequest(method, target, sessionID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionID})
	}
	return req
}
