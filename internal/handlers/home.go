package handlers

import (
	"net/http"

	"github.com/alextreichler/thumbify/internal/catalog"
	"github.com/alextreichler/thumbify/internal/session"
	"github.com/gorilla/sessions"
)

type HomeHandler struct {
	Catalog      *catalog.Catalog
	App          *session.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// Index renders the landing page. It is registered on "/" and therefore
// also receives every unknown path, which redirects back to the landing
// page.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	sess, _ := h.SessionStore.Get(r, SessionName)
	user, loggedIn := h.App.CurrentUser()

	data := map[string]interface{}{
		"Items":    h.Catalog.Preview(6),
		"Flashes":  GetFlash(sess),
		"User":     user,
		"LoggedIn": loggedIn,
	}
	sess.Save(r, w)
	tmpl.Execute(w, data)
}

// Confirmation is the static order acknowledgment page. Payment happens
// out of band: the copy tells the customer to watch for an invoice email.
func (h *HomeHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("confirmation.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	sess, _ := h.SessionStore.Get(r, SessionName)
	user, loggedIn := h.App.CurrentUser()

	data := map[string]interface{}{
		"Flashes":  GetFlash(sess),
		"User":     user,
		"LoggedIn": loggedIn,
	}
	sess.Save(r, w)
	tmpl.Execute(w, data)
}
