package handlers

import (
	"net/http"
	"strings"

	"github.com/alextreichler/thumbify/internal/catalog"
	"github.com/alextreichler/thumbify/internal/models"
	"github.com/alextreichler/thumbify/internal/session"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

type DashboardHandler struct {
	Catalog      *catalog.Catalog
	App          *session.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// Dashboard branches purely on the current role: clients see their own
// orders, admins see every order plus the portfolio management form. The
// router gate guarantees a user is present, but the slot is re-read here
// rather than trusted.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.App.CurrentUser()
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	sess, _ := h.SessionStore.Get(r, SessionName)

	var tmplName string
	data := map[string]interface{}{
		"User":     user,
		"LoggedIn": true,
		"Flashes":  GetFlash(sess),
	}

	switch user.Role {
	case models.RoleAdmin:
		tmplName = "dashboard_admin.html"
		data["Orders"] = h.App.Orders()
		data["CsrfField"] = csrf.TemplateField(r)
	case models.RoleClient:
		tmplName = "dashboard_client.html"
		data["Orders"] = h.App.OrdersFor(user.Email)
	default:
		// Unknown role tag; treat as client, the least-privileged view.
		tmplName = "dashboard_client.html"
		data["Orders"] = h.App.OrdersFor(user.Email)
	}

	tmpl := h.Templates.Get(tmplName)
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	sess.Save(r, w)
	tmpl.Execute(w, data)
}

// CreateItem appends a portfolio item from the admin form. All three
// fields are required; the new item is visible on the very next catalog
// read.
func (h *DashboardHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.SessionStore.Get(r, SessionName)

	user, ok := h.App.CurrentUser()
	if !ok || !user.IsAdmin() {
		sess.AddFlash(FlashMessage{Type: "error", Message: "Seul un administrateur peut gérer le portfolio."})
		sess.Save(r, w)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	imageURL := strings.TrimSpace(r.FormValue("imageUrl"))
	category := strings.TrimSpace(r.FormValue("category"))

	if title == "" || imageURL == "" || category == "" {
		sess.AddFlash(FlashMessage{Type: "error", Message: "Titre, URL de l'image et catégorie sont requis."})
		sess.Save(r, w)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	item := h.Catalog.AddItem(title, imageURL, category)
	sess.AddFlash(FlashMessage{Type: "success", Message: "Élément ajouté au portfolio : " + item.Title})
	sess.Save(r, w)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
