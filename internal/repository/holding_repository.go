package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradeledger/internal/apperror"
	"tradeledger/internal/domain"
)

// HoldingRepositoryImpl implements the HoldingRepository interface
type HoldingRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewHoldingRepository creates a new HoldingRepository
func NewHoldingRepository(db *pgxpool.Pool) domain.HoldingRepository {
	return &HoldingRepositoryImpl{db: db}
}

// ListAll retrieves every holding
func (r *HoldingRepositoryImpl) ListAll(ctx context.Context) ([]*domain.Holding, error) {
	query := `
		SELECT id, name, qty, avg_cost, price, net, day, created_at
		FROM holdings
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewStorage("failed to query holdings", err)
	}
	defer rows.Close()

	holdings := []*domain.Holding{}
	for rows.Next() {
		holding := &domain.Holding{}
		err := rows.Scan(
			&holding.ID,
			&holding.Name,
			&holding.Qty,
			&holding.AvgCost,
			&holding.Price,
			&holding.Net,
			&holding.Day,
			&holding.CreatedAt,
		)
		if err != nil {
			return nil, apperror.NewStorage("failed to scan holding", err)
		}
		holdings = append(holdings, holding)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.NewStorage("error iterating holdings", err)
	}

	return holdings, nil
}

// Create persists a new holding and returns it with its generated ID
func (r *HoldingRepositoryImpl) Create(ctx context.Context, holding *domain.Holding) (*domain.Holding, error) {
	if holding.Name == "" {
		return nil, apperror.NewValidation("holding name is required")
	}

	if holding.ID == uuid.Nil {
		holding.ID = uuid.New()
	}
	if holding.CreatedAt.IsZero() {
		holding.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO holdings (id, name, qty, avg_cost, price, net, day, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		holding.ID,
		holding.Name,
		holding.Qty,
		holding.AvgCost,
		holding.Price,
		holding.Net,
		holding.Day,
		holding.CreatedAt,
	)

	if err != nil {
		return nil, apperror.NewStorage("failed to create holding", err)
	}

	return holding, nil
}
