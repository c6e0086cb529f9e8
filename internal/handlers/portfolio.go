package handlers

import (
	"net/http"

	"github.com/alextreichler/thumbify/internal/catalog"
)

// Portfolio renders the full grid with the category filter. The active
// category travels as a query parameter; selecting one is just a link, so
// the filter needs no state beyond the URL.
func (h *HomeHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	active := r.URL.Query().Get("category")
	if active == "" {
		active = catalog.CategoryAll
	}

	tmpl := h.Templates.Get("portfolio.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	sess, _ := h.SessionStore.Get(r, SessionName)
	user, loggedIn := h.App.CurrentUser()

	data := map[string]interface{}{
		"Items":      h.Catalog.ItemsByCategory(active),
		"Categories": h.Catalog.Categories(),
		"Active":     active,
		"Flashes":    GetFlash(sess),
		"User":       user,
		"LoggedIn":   loggedIn,
	}
	sess.Save(r, w)
	tmpl.Execute(w, data)
}
