package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user. Returns a Conflict error if the
	// username is already taken (enforced by a unique index, so two
	// concurrent creates cannot both succeed).
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByUsername retrieves a user by username (exact, case-sensitive).
	// Returns a NotFound error when no such user exists.
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// HoldingRepository defines the interface for holding data operations
type HoldingRepository interface {
	// ListAll retrieves every holding. An empty collection yields an
	// empty slice, never an error.
	ListAll(ctx context.Context) ([]*Holding, error)

	// Create persists a new holding and returns it with its generated ID
	Create(ctx context.Context, holding *Holding) (*Holding, error)
}

// PositionRepository defines the interface for position data operations
type PositionRepository interface {
	// ListAll retrieves every position
	ListAll(ctx context.Context) ([]*Position, error)

	// Create persists a new position and returns it with its generated ID
	Create(ctx context.Context, position *Position) (*Position, error)
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// ListAll retrieves every order
	ListAll(ctx context.Context) ([]*Order, error)

	// Create persists a new order and returns it with its generated ID
	Create(ctx context.Context, order *Order) (*Order, error)
}
