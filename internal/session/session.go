// Package session guarda el estado de cada comprador: carrito, usuario
// autenticado e historial del asistente.
package session

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"carteasy/internal/assistant"
	"carteasy/internal/cart"
	"carteasy/internal/models"
)

var ErrNotFound = errors.New("session not found")

// Session es el estado de un comprador (equivale a una pestaña del navegador)
type Session struct {
	ID        string                 `json:"id"`
	Cart      cart.Cart              `json:"cart"`
	User      *models.User           `json:"user,omitempty"`
	Assistant assistant.Conversation `json:"assistant"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`

	// CheckoutUntil marca un checkout en curso hasta esa hora
	CheckoutUntil time.Time `json:"checkoutUntil,omitzero"`
}

func newSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Cart:      *cart.New(),
		Assistant: assistant.NewConversation(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAuthenticated indica si hay un usuario en la sesión
func (s *Session) IsAuthenticated() bool {
	return s.User != nil
}

// CheckingOut indica si hay un checkout en curso en now
func (s *Session) CheckingOut(now time.Time) bool {
	return now.Before(s.CheckoutUntil)
}

// clone retorna una copia independiente de la sesión
func (s *Session) clone() *Session {
	c := *s
	c.Cart.Items = slices.Clone(s.Cart.Items)
	c.Assistant.Messages = slices.Clone(s.Assistant.Messages)
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	return &c
}

// Store define las operaciones sobre sesiones
type Store interface {
	Create(ctx context.Context) (*Session, error)
	// Get retorna ErrNotFound si la sesión no existe o expiró
	Get(ctx context.Context, id string) (*Session, error)
	// Update aplica fn de forma atómica; si fn falla no se guarda nada
	Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
