package models

import (
	"time"
)

type PortfolioItem struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Category string `json:"category"`
}

type PricingPack struct {
	ID          string   `json:"id"` // slug, e.g. "starter"
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	IsPremium   bool     `json:"is_premium"`
}

// Attachment is an opaque client-supplied file. Contents are never
// inspected or validated.
type Attachment struct {
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
}

type OrderBrief struct {
	VideoTitle       string       `json:"video_title"`
	StyleInspiration string       `json:"style_inspiration"`
	KeyElements      string       `json:"key_elements"`
	Notes            string       `json:"notes"`
	Files            []Attachment `json:"files"`
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in_progress"
	StatusDone       OrderStatus = "done"
)

// Label returns the customer-facing French label for the status badge.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "En attente"
	case StatusInProgress:
		return "En cours"
	case StatusDone:
		return "Terminé"
	}
	return string(s)
}

type Order struct {
	ID        string      `json:"id"`
	Pack      PricingPack `json:"pack"` // snapshot at order time
	Brief     OrderBrief  `json:"brief"`
	UserEmail string      `json:"user_email"`
	Status    OrderStatus `json:"status"`
	OrderDate time.Time   `json:"order_date"`
}

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

type User struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
