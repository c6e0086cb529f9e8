package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/alextreichler/thumbify/internal/models"
	"github.com/alextreichler/thumbify/internal/session"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

type AuthHandler struct {
	App          *session.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// RoleFromEmail derives a role from the login email: any address
// containing "admin" gets the admin role, everything else is a client.
//
// This is a placeholder policy, NOT a trust mechanism: nothing is
// authenticated and anyone can type an admin address. It lives in one
// place so a real credential check can replace it without touching the
// call sites.
func RoleFromEmail(email string) models.Role {
	if strings.Contains(email, "admin") {
		return models.RoleAdmin
	}
	return models.RoleClient
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	// Already logged in: no re-login flow, straight to the dashboard.
	if _, ok := h.App.CurrentUser(); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("login.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	sess, _ := h.SessionStore.Get(r, SessionName)
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(sess),
	}
	sess.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.SessionStore.Get(r, SessionName)

	email := strings.TrimSpace(r.FormValue("email"))
	// The password field is collected and deliberately never checked.
	_ = r.FormValue("password")

	if email == "" {
		sess.AddFlash(FlashMessage{Type: "error", Message: "L'adresse e-mail est requise."})
		sess.Save(r, w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	role := RoleFromEmail(email)
	user := h.App.Login(email, role)
	sess.AddFlash(FlashMessage{Type: "success", Message: "Bon retour, " + user.Email + " !"})

	if err := sess.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	slog.Info("Login successful, redirecting to /dashboard", "email", user.Email, "role", user.Role)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.App.Logout()
	sess, _ := h.SessionStore.Get(r, SessionName)
	sess.AddFlash(FlashMessage{Type: "success", Message: "Déconnexion réussie !"})
	sess.Save(r, w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
