package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alextreichler/thumbify/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  models.Role
	}{
		{"admin@x.com", models.RoleAdmin},
		{"jane@x.com", models.RoleClient},
		{"site-admin@agency.fr", models.RoleAdmin},
		{"jane.admiral@x.com", models.RoleClient},
		{"", models.RoleClient},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleFromEmail(tt.email))
		})
	}
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginPost(t *testing.T) {
	env := newTestEnv(t)
	h := env.auth()

	rec := httptest.NewRecorder()
	h.LoginPost(rec, postForm("/login", url.Values{"email": {"jane@x.com"}, "password": {"whatever"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	user, ok := env.App.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "jane@x.com", user.Email)
	assert.Equal(t, models.RoleClient, user.Role)
}

func TestLoginPostDerivesAdmin(t *testing.T) {
	env := newTestEnv(t)
	h := env.auth()

	rec := httptest.NewRecorder()
	h.LoginPost(rec, postForm("/login", url.Values{"email": {"admin@x.com"}}))

	user, ok := env.App.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestLoginPostEmptyEmail(t *testing.T) {
	env := newTestEnv(t)
	h := env.auth()

	rec := httptest.NewRecorder()
	h.LoginPost(rec, postForm("/login", url.Values{"email": {"  "}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	_, ok := env.App.CurrentUser()
	assert.False(t, ok, "empty email must not log anyone in")
}

func TestLoginGetRedirectsWhenLoggedIn(t *testing.T) {
	env := newTestEnv(t)
	env.App.Login("jane@x.com", models.RoleClient)
	h := env.auth()

	rec := httptest.NewRecorder()
	h.LoginGet(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestLoginGetRendersForm(t *testing.T) {
	env := newTestEnv(t)
	h := env.auth()

	rec := httptest.NewRecorder()
	h.LoginGet(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Connexion Client")
	assert.Contains(t, rec.Body.String(), `name="password"`)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	env.App.Login("jane@x.com", models.RoleClient)
	h := env.auth()

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	_, ok := env.App.CurrentUser()
	assert.False(t, ok)
}
