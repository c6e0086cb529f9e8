package handlers

import (
	"testing"

	"github.com/alextreichler/thumbify/internal/assistant"
	"github.com/alextreichler/thumbify/internal/catalog"
	"github.com/alextreichler/thumbify/internal/session"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
)

// testEnv wires the handlers against the real templates so that
// template/data mismatches fail tests instead of rendering blank pages.
type testEnv struct {
	Catalog      *catalog.Catalog
	App          *session.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tc := NewTemplateCache()
	require.NoError(t, tc.Load("../../templates"))
	return &testEnv{
		Catalog:      catalog.New(),
		App:          session.NewStore(),
		Templates:    tc,
		SessionStore: sessions.NewCookieStore([]byte("test-session-key-0123456789abcdef")),
	}
}

func (e *testEnv) home() *HomeHandler {
	return &HomeHandler{Catalog: e.Catalog, App: e.App, Templates: e.Templates, SessionStore: e.SessionStore}
}

func (e *testEnv) auth() *AuthHandler {
	return &AuthHandler{App: e.App, Templates: e.Templates, SessionStore: e.SessionStore}
}

func (e *testEnv) orders(gen assistant.IdeaGenerator) *OrderHandler {
	return &OrderHandler{Catalog: e.Catalog, App: e.App, Generator: gen, Templates: e.Templates, SessionStore: e.SessionStore}
}

func (e *testEnv) dashboard() *DashboardHandler {
	return &DashboardHandler{Catalog: e.Catalog, App: e.App, Templates: e.Templates, SessionStore: e.SessionStore}
}
