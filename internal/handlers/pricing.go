package handlers

import (
	"net/http"
)

// Pricing renders every pack in catalog order. The per-pack order button
// links to the order form when someone is logged in and to the login page
// otherwise; that choice is only an affordance, the real gate sits on the
// /order routes.
func (h *HomeHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("pricing.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	sess, _ := h.SessionStore.Get(r, SessionName)
	user, loggedIn := h.App.CurrentUser()

	data := map[string]interface{}{
		"Packs":    h.Catalog.Packs(),
		"Flashes":  GetFlash(sess),
		"User":     user,
		"LoggedIn": loggedIn,
	}
	sess.Save(r, w)
	tmpl.Execute(w, data)
}
