package repository

import (
	"context"
	"fmt"

	"lotto/domain/entities"

	"github.com/jackc/pgx/v5"
)

// AssetHoldingRepository tracks non-native tokens held pending rescue
type AssetHoldingRepository struct {
	q Queryable
}

// NewAssetHoldingRepository creates a new holding repository bound to a transaction
func NewAssetHoldingRepository(tx Queryable) *AssetHoldingRepository {
	return &AssetHoldingRepository{q: tx}
}

// Get returns the held amount of an asset for a component
func (r *AssetHoldingRepository) Get(ctx context.Context, component, asset string) (int64, error) {
	query := `
		SELECT amount
		FROM asset_holdings
		WHERE component = $1
		  AND asset = $2
	`

	var amount int64
	err := r.q.QueryRow(ctx, query, component, asset).Scan(&amount)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get %s holding of %s: %w", component, asset, err)
	}

	return amount, nil
}

// Add increments a component's holding of an asset
func (r *AssetHoldingRepository) Add(ctx context.Context, component, asset string, amount int64) error {
	query := `
		INSERT INTO asset_holdings (component, asset, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (component, asset)
		DO UPDATE SET amount = asset_holdings.amount + $3
	`

	if _, err := r.q.Exec(ctx, query, component, asset, amount); err != nil {
		return fmt.Errorf("failed to add %s holding of %s: %w", component, asset, err)
	}

	return nil
}

// Remove clears amount from a holding; the guard keeps it from going negative
func (r *AssetHoldingRepository) Remove(ctx context.Context, component, asset string, amount int64) error {
	query := `
		UPDATE asset_holdings
		SET amount = amount - $3
		WHERE component = $1
		  AND asset = $2
		  AND amount >= $3
	`

	result, err := r.q.Exec(ctx, query, component, asset, amount)
	if err != nil {
		return fmt.Errorf("failed to remove %s holding of %s: %w", component, asset, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("holding %s/%s: %w", component, asset, entities.ErrNothingToRescue)
	}

	return nil
}
