package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a buy/sell instruction recorded by the ledger
type Order struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Qty       float64   `json:"qty"`
	Price     float64   `json:"price"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderMode constants. Mode is stored as submitted; these cover the
// values the frontend sends.
const (
	ModeBuy  = "BUY"
	ModeSell = "SELL"
)
