package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradeledger/internal/apperror"
	"tradeledger/internal/domain"
)

// OrderRepositoryImpl implements the OrderRepository interface
type OrderRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *pgxpool.Pool) domain.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// ListAll retrieves every order
func (r *OrderRepositoryImpl) ListAll(ctx context.Context) ([]*domain.Order, error) {
	query := `
		SELECT id, name, qty, price, mode, created_at
		FROM orders
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewStorage("failed to query orders", err)
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		order := &domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.Name,
			&order.Qty,
			&order.Price,
			&order.Mode,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, apperror.NewStorage("failed to scan order", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.NewStorage("error iterating orders", err)
	}

	return orders, nil
}

// Create persists a new order and returns it with its generated ID.
// Only field presence is validated here; the mode string is stored as
// submitted.
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.Name == "" {
		return nil, apperror.NewValidation("order name is required")
	}
	if order.Qty == 0 {
		return nil, apperror.NewValidation("order qty is required")
	}
	if order.Price == 0 {
		return nil, apperror.NewValidation("order price is required")
	}
	if order.Mode == "" {
		return nil, apperror.NewValidation("order mode is required")
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO orders (id, name, qty, price, mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.Name,
		order.Qty,
		order.Price,
		order.Mode,
		order.CreatedAt,
	)

	if err != nil {
		return nil, apperror.NewStorage("failed to create order", err)
	}

	return order, nil
}
