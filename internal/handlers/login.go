package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/farhankamalkhan/saucedemo/internal/store"
)

// LoginHandler serves the login page and authenticates submitted credentials
type LoginHandler struct {
	store    *store.Store
	template *template.Template
}

// LoginData represents the data passed to the login template
type LoginData struct {
	Error     string
	Usernames []string
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(st *store.Store) (*LoginHandler, error) {
	tmpl, err := parsePage("login.html")
	if err != nil {
		return nil, err
	}

	return &LoginHandler{
		store:    st,
		template: tmpl,
	}, nil
}

// ServeHTTP handles GET / (form) and POST / (authentication)
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, LoginData{})
	case http.MethodPost:
		h.authenticate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// usernames lists the accounts shown on the login page.
func (h *LoginHandler) usernames() []string {
	creds := h.store.ValidCredentials()
	names := make([]string, len(creds))
	for i, cred := range creds {
		names[i] = cred.Username
	}
	return names
}

func (h *LoginHandler) authenticate(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("user-name")
	password := r.FormValue("password")

	id, err := h.store.Authenticate(username, password)
	if err != nil {
		var loginErr *store.LoginError
		if errors.As(err, &loginErr) {
			h.render(w, LoginData{Error: loginErr.Message})
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, id)
	http.Redirect(w, r, "/inventory.html", http.StatusSeeOther)
}

func (h *LoginHandler) render(w http.ResponseWriter, data LoginData) {
	data.Usernames = h.usernames()
	if err := h.template.ExecuteTemplate(w, "login.html", data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// LogoutHandler ends the shopper's session
type LogoutHandler struct {
	store *store.Store
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(st *store.Store) *LogoutHandler {
	return &LogoutHandler{store: st}
}

// ServeHTTP handles the GET /logout request
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if id := sessionID(r); id != "" {
		h.store.EndSession(id)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
