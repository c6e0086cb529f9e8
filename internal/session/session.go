// Package session holds the in-memory state of one running instance:
// the current user, if any, and every order placed since the process
// started. There is no durable storage; everything here is gone on
// restart.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/alextreichler/thumbify/internal/models"
	"github.com/google/uuid"
)

// ErrNotAuthenticated is returned by AddOrder when no user is logged in.
var ErrNotAuthenticated = errors.New("session: not authenticated")

// Store is the single source of truth for identity and orders. All methods
// are safe for concurrent use, though the product model is one active user
// at a time.
type Store struct {
	mu     sync.RWMutex
	user   *models.User
	orders []models.Order
}

func NewStore() *Store {
	return &Store{}
}

// Login unconditionally replaces the current user. No credential is
// checked anywhere; the role is whatever the caller derived.
func (s *Store) Login(email string, role models.Role) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{Email: email, Role: role}
	s.user = &u
	return u
}

// Logout clears the user slot. Orders placed during the session are kept
// on purpose: a later login in the same process still sees them.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// CurrentUser reports the logged-in user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// AddOrder appends a new order for the current user. The pack is stored as
// a snapshot so later catalog changes cannot alter past orders. Returns
// ErrNotAuthenticated, without mutating anything, when nobody is logged in.
func (s *Store) AddOrder(pack models.PricingPack, brief models.OrderBrief) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.Order{}, ErrNotAuthenticated
	}
	order := models.Order{
		ID:        uuid.NewString(),
		Pack:      pack,
		Brief:     brief,
		UserEmail: s.user.Email,
		Status:    models.StatusPending,
		OrderDate: time.Now(),
	}
	s.orders = append(s.orders, order)
	return order, nil
}

// Orders returns every order in insertion order.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrdersFor returns the orders placed under the given email, preserving
// insertion order.
func (s *Store) OrdersFor(email string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.UserEmail == email {
			out = append(out, o)
		}
	}
	return out
}
