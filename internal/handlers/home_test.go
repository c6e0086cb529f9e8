package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alextreichler/thumbify/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIndexRendersPreview(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.home().Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	// First six items only
	assert.Contains(t, body, "Miniature de Réaction Surpris")
	assert.Contains(t, body, "React vs. Vue : Le Duel Ultime")
	assert.NotContains(t, body, "Carnet de Voyage : Tokyo")
	assert.Contains(t, body, "Voir le Portfolio Complet")
}

func TestIndexRedirectsUnknownPaths(t *testing.T) {
	env := newTestEnv(t)
	h := env.home()

	for _, path := range []string{"/doesnotexist", "/admin", "/order"} {
		rec := httptest.NewRecorder()
		h.Index(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code, "path %s", path)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	}
}

func TestPortfolioFilter(t *testing.T) {
	env := newTestEnv(t)
	h := env.home()

	tests := []struct {
		name        string
		query       string
		contains    []string
		notContains []string
	}{
		{
			name:     "no filter shows everything",
			query:    "",
			contains: []string{"Victoire Épique sur Fortnite", "Carnet de Voyage : Tokyo", "Le Krach Boursier Expliqué"},
		},
		{
			name:        "gaming only",
			query:       "?category=Gaming",
			contains:    []string{"Miniature de Réaction Surpris", "Victoire Épique sur Fortnite"},
			notContains: []string{"Carnet de Voyage : Tokyo", "Le Krach Boursier Expliqué"},
		},
		{
			name:        "finance only",
			query:       "?category=Finance",
			contains:    []string{"Le Krach Boursier Expliqué"},
			notContains: []string{"Victoire Épique sur Fortnite"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Portfolio(rec, httptest.NewRequest(http.MethodGet, "/portfolio"+tt.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, body, s)
			}
			// The filter bar always lists every category plus the sentinel.
			assert.Contains(t, body, "Tout")
			assert.Contains(t, body, "Finance")
		})
	}
}

func TestPricingOrderAffordance(t *testing.T) {
	env := newTestEnv(t)
	h := env.home()

	// Logged out: order buttons point to the login page.
	rec := httptest.NewRecorder()
	h.Pricing(rec, httptest.NewRequest(http.MethodGet, "/pricing", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/login"`)
	assert.NotContains(t, rec.Body.String(), `href="/order/starter"`)

	// Logged in: buttons point at the order form for each pack.
	env.App.Login("jane@x.com", models.RoleClient)
	rec = httptest.NewRecorder()
	h.Pricing(rec, httptest.NewRequest(http.MethodGet, "/pricing", nil))
	body := rec.Body.String()
	for _, id := range []string{"starter", "creator", "pro", "premium"} {
		assert.Contains(t, body, `href="/order/`+id+`"`)
	}
	assert.Contains(t, body, "Abonnement Premium")
}

func TestConfirmation(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.home().Confirmation(rec, httptest.NewRequest(http.MethodGet, "/confirmation", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Commande Reçue !")
	assert.Contains(t, rec.Body.String(), `href="/dashboard"`)
}
