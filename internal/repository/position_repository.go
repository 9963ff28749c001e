package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tradeledger/internal/apperror"
	"tradeledger/internal/domain"
)

// PositionRepositoryImpl implements the PositionRepository interface
type PositionRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPositionRepository creates a new PositionRepository
func NewPositionRepository(db *pgxpool.Pool) domain.PositionRepository {
	return &PositionRepositoryImpl{db: db}
}

// ListAll retrieves every position
func (r *PositionRepositoryImpl) ListAll(ctx context.Context) ([]*domain.Position, error) {
	query := `
		SELECT id, product, name, qty, avg_cost, price, net, day, is_loss, created_at
		FROM positions
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewStorage("failed to query positions", err)
	}
	defer rows.Close()

	positions := []*domain.Position{}
	for rows.Next() {
		position := &domain.Position{}
		err := rows.Scan(
			&position.ID,
			&position.Product,
			&position.Name,
			&position.Qty,
			&position.AvgCost,
			&position.Price,
			&position.Net,
			&position.Day,
			&position.IsLoss,
			&position.CreatedAt,
		)
		if err != nil {
			return nil, apperror.NewStorage("failed to scan position", err)
		}
		positions = append(positions, position)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.NewStorage("error iterating positions", err)
	}

	return positions, nil
}

// Create persists a new position and returns it with its generated ID
func (r *PositionRepositoryImpl) Create(ctx context.Context, position *domain.Position) (*domain.Position, error) {
	if position.Name == "" {
		return nil, apperror.NewValidation("position name is required")
	}

	if position.ID == uuid.Nil {
		position.ID = uuid.New()
	}
	if position.CreatedAt.IsZero() {
		position.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO positions (id, product, name, qty, avg_cost, price, net, day, is_loss, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		position.ID,
		position.Product,
		position.Name,
		position.Qty,
		position.AvgCost,
		position.Price,
		position.Net,
		position.Day,
		position.IsLoss,
		position.CreatedAt,
	)

	if err != nil {
		return nil, apperror.NewStorage("failed to create position", err)
	}

	return position, nil
}
