package repository

import (
	"context"
	"fmt"

	"lotto/domain/entities"

	"github.com/jackc/pgx/v5"
)

// DrawRepository implements draw data access
type DrawRepository struct {
	q Queryable
}

// NewDrawRepository creates a new draw repository bound to a transaction
func NewDrawRepository(tx Queryable) *DrawRepository {
	return &DrawRepository{q: tx}
}

const drawColumns = `id, state, capacity, entry_price, prize_amount,
	       winner_account_id, winning_index, created_at, closed_at, fulfilled_at`

func scanDraw(row pgx.Row) (*entities.Draw, error) {
	var draw entities.Draw
	err := row.Scan(
		&draw.ID,
		&draw.State,
		&draw.Capacity,
		&draw.EntryPrice,
		&draw.PrizeAmount,
		&draw.WinnerAccountID,
		&draw.WinningIndex,
		&draw.CreatedAt,
		&draw.ClosedAt,
		&draw.FulfilledAt,
	)
	if err != nil {
		return nil, err
	}
	return &draw, nil
}

// GetByID retrieves a draw by its sequential id
func (r *DrawRepository) GetByID(ctx context.Context, id int64) (*entities.Draw, error) {
	query := `
		SELECT ` + drawColumns + `
		FROM draws
		WHERE id = $1
	`

	draw, err := scanDraw(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draw %d: %w", id, err)
	}

	return draw, nil
}

// GetByIDForUpdate retrieves a draw by id with a row lock
func (r *DrawRepository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Draw, error) {
	query := `
		SELECT ` + drawColumns + `
		FROM draws
		WHERE id = $1
		FOR UPDATE
	`

	draw, err := scanDraw(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draw %d for update: %w", id, err)
	}

	return draw, nil
}

// GetCurrentOpen returns the single open draw, or nil if none exists
func (r *DrawRepository) GetCurrentOpen(ctx context.Context) (*entities.Draw, error) {
	query := `
		SELECT ` + drawColumns + `
		FROM draws
		WHERE state = $1
		LIMIT 1
	`

	draw, err := scanDraw(r.q.QueryRow(ctx, query, entities.DrawStateOpen))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get current open draw: %w", err)
	}

	return draw, nil
}

// Create inserts a draw with an explicit sequential id
func (r *DrawRepository) Create(ctx context.Context, draw *entities.Draw) error {
	query := `
		INSERT INTO draws (id, state, capacity, entry_price, prize_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.Exec(ctx, query,
		draw.ID,
		draw.State,
		draw.Capacity,
		draw.EntryPrice,
		draw.PrizeAmount,
		draw.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create draw %d: %w", draw.ID, err)
	}

	return nil
}

// Update persists state transitions and winner fields
func (r *DrawRepository) Update(ctx context.Context, draw *entities.Draw) error {
	query := `
		UPDATE draws
		SET state = $2,
		    winner_account_id = $3,
		    winning_index = $4,
		    closed_at = $5,
		    fulfilled_at = $6
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query,
		draw.ID,
		draw.State,
		draw.WinnerAccountID,
		draw.WinningIndex,
		draw.ClosedAt,
		draw.FulfilledAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update draw %d: %w", draw.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("draw with ID %d not found", draw.ID)
	}

	return nil
}

// GetStuckInProgress returns draws that have been waiting on randomness
// longer than the supplied number of seconds
func (r *DrawRepository) GetStuckInProgress(ctx context.Context, olderThanSeconds int64) ([]*entities.Draw, error) {
	query := `
		SELECT ` + drawColumns + `
		FROM draws
		WHERE state = $1
		  AND closed_at < NOW() - make_interval(secs => $2)
		ORDER BY closed_at ASC
	`

	rows, err := r.q.Query(ctx, query, entities.DrawStateInProgress, olderThanSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to get stuck draws: %w", err)
	}
	defer rows.Close()

	var draws []*entities.Draw
	for rows.Next() {
		draw, err := scanDraw(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draw: %w", err)
		}
		draws = append(draws, draw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draws: %w", err)
	}

	return draws, nil
}
