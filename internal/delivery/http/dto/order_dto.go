package dto

import "tradeledger/internal/domain"

// NewOrderRequest represents the new-order request payload
type NewOrderRequest struct {
	Name  string  `json:"name"`
	Qty   float64 `json:"qty"`
	Price float64 `json:"price"`
	Mode  string  `json:"mode"`
}

// NewOrderResponse confirms a saved order
type NewOrderResponse struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}
