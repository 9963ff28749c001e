package domain

import (
	"time"

	"github.com/google/uuid"
)

// Holding represents a snapshot of an asset currently held
type Holding struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Qty       int       `json:"qty"`
	AvgCost   float64   `json:"avg"`
	Price     float64   `json:"price"`
	Net       string    `json:"net"`
	Day       string    `json:"day"`
	CreatedAt time.Time `json:"created_at"`
}