package domain

import (
	"time"

	"github.com/google/uuid"
)

// Position represents a snapshot of an open market position
type Position struct {
	ID        uuid.UUID `json:"id"`
	Product   string    `json:"product"`
	Name      string    `json:"name"`
	Qty       int       `json:"qty"`
	AvgCost   float64   `json:"avg"`
	Price     float64   `json:"price"`
	Net       string    `json:"net"`
	Day       string    `json:"day"`
	IsLoss    bool      `json:"isLoss"`
	CreatedAt time.Time `json:"created_at"`
}
