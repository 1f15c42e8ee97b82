package repository

import (
	"context"
	"fmt"
)

// DrawFundingRepository tracks funding received per draw
type DrawFundingRepository struct {
	q Queryable
}

// NewDrawFundingRepository creates a new funding repository bound to a transaction
func NewDrawFundingRepository(tx Queryable) *DrawFundingRepository {
	return &DrawFundingRepository{q: tx}
}

// Add increments a draw's funding total, creating the row on first use
func (r *DrawFundingRepository) Add(ctx context.Context, drawID, amount int64) error {
	query := `
		INSERT INTO draw_funding (draw_id, total)
		VALUES ($1, $2)
		ON CONFLICT (draw_id)
		DO UPDATE SET total = draw_funding.total + $2
	`

	if _, err := r.q.Exec(ctx, query, drawID, amount); err != nil {
		return fmt.Errorf("failed to add funding for draw %d: %w", drawID, err)
	}

	return nil
}

// GetTotal returns a draw's funding total, zero if never funded
func (r *DrawFundingRepository) GetTotal(ctx context.Context, drawID int64) (int64, error) {
	query := `SELECT COALESCE(SUM(total), 0) FROM draw_funding WHERE draw_id = $1`

	var total int64
	if err := r.q.QueryRow(ctx, query, drawID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to get funding total for draw %d: %w", drawID, err)
	}

	return total, nil
}
