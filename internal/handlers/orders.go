package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alextreichler/thumbify/internal/assistant"
	"github.com/alextreichler/thumbify/internal/catalog"
	"github.com/alextreichler/thumbify/internal/models"
	"github.com/alextreichler/thumbify/internal/session"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

// Brief attachments are read fully into memory; 10MB covers a handful of
// reference images and logos.
const maxBriefUpload = 10 << 20

type OrderHandler struct {
	Catalog      *catalog.Catalog
	App          *session.Store
	Generator    assistant.IdeaGenerator
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// OrderForm renders the brief form for the pack in the path. An unknown
// pack id renders a terminal not-found page.
func (h *OrderHandler) OrderForm(w http.ResponseWriter, r *http.Request) {
	pack, ok := h.Catalog.PackByID(r.PathValue("packId"))
	if !ok {
		h.renderPackNotFound(w, r)
		return
	}

	tmpl := h.Templates.Get("order.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	sess, _ := h.SessionStore.Get(r, SessionName)
	user, loggedIn := h.App.CurrentUser()

	data := map[string]interface{}{
		"Pack":      pack,
		"CsrfField": csrf.TemplateField(r),
		"CsrfToken": csrf.Token(r),
		"Flashes":   GetFlash(sess),
		"User":      user,
		"LoggedIn":  loggedIn,
	}
	sess.Save(r, w)
	tmpl.Execute(w, data)
}

// SubmitOrder records the brief against the current user. Fields are
// accepted as-is: validation is the form's job, the server side of this
// product deliberately enforces nothing beyond authentication.
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.SessionStore.Get(r, SessionName)

	pack, ok := h.Catalog.PackByID(r.PathValue("packId"))
	if !ok {
		h.renderPackNotFound(w, r)
		return
	}

	if err := r.ParseMultipartForm(maxBriefUpload); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		sess.AddFlash(FlashMessage{Type: "error", Message: "Formulaire invalide ou fichiers trop volumineux (10 Mo max)."})
		sess.Save(r, w)
		http.Redirect(w, r, "/order/"+pack.ID, http.StatusSeeOther)
		return
	}

	brief := models.OrderBrief{
		VideoTitle:       r.FormValue("videoTitle"),
		StyleInspiration: r.FormValue("styleInspiration"),
		KeyElements:      r.FormValue("keyElements"),
		Notes:            r.FormValue("notes"),
	}

	// The chosen file set replaces any previous selection wholesale; the
	// contents are opaque and never inspected.
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["files"] {
			f, err := fh.Open()
			if err != nil {
				continue
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				continue
			}
			brief.Files = append(brief.Files, models.Attachment{Filename: fh.Filename, Data: data})
		}
	}

	order, err := h.App.AddOrder(pack, brief)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			sess.AddFlash(FlashMessage{Type: "error", Message: "Veuillez vous connecter pour passer une commande."})
			sess.Save(r, w)
			http.Redirect(w, r, "/order/"+pack.ID, http.StatusSeeOther)
			return
		}
		slog.Error("Failed to record order", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("Order received", "order_id", order.ID, "pack", pack.ID, "email", order.UserEmail, "files", len(brief.Files))
	sess.Save(r, w)
	http.Redirect(w, r, "/confirmation", http.StatusSeeOther)
}

func (h *OrderHandler) renderPackNotFound(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("pack_not_found.html")
	if tmpl == nil {
		http.Error(w, "Pack non trouvé.", http.StatusNotFound)
		return
	}
	user, loggedIn := h.App.CurrentUser()
	w.WriteHeader(http.StatusNotFound)
	tmpl.Execute(w, map[string]interface{}{
		"User":     user,
		"LoggedIn": loggedIn,
	})
}

type ideasRequest struct {
	Topic string `json:"topic"`
}

type ideasResponse struct {
	Ideas string `json:"ideas,omitempty"`
	Error string `json:"error,omitempty"`
}

// Ideas is the idea-assistant endpoint behind the brief form. It takes a
// topic and returns generated thumbnail concepts as JSON. Failures come
// back as an error payload so the panel can show them; ordering between
// overlapping calls is handled by the client script.
func (h *OrderHandler) Ideas(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req ideasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ideasResponse{Error: "Requête invalide."})
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		// Empty topic never reaches the generator.
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ideasResponse{Error: "Le sujet est requis."})
		return
	}

	ideas, err := h.Generator.GenerateIdeas(r.Context(), topic)
	if err != nil {
		slog.Error("Idea generation failed", "topic", topic, "error", err)
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(ideasResponse{Error: "La génération d'idées a échoué. Réessayez dans un instant."})
		return
	}

	json.NewEncoder(w).Encode(ideasResponse{Ideas: ideas})
}
