package repository

import (
	"context"
	"fmt"

	"lotto/domain/entities"

	"github.com/jackc/pgx/v5"
)

// ShareBucketRepository implements settlement bucket data access
type ShareBucketRepository struct {
	q Queryable
}

// NewShareBucketRepository creates a new bucket repository bound to a transaction
func NewShareBucketRepository(tx Queryable) *ShareBucketRepository {
	return &ShareBucketRepository{q: tx}
}

// GetAll returns every bucket
func (r *ShareBucketRepository) GetAll(ctx context.Context) ([]*entities.ShareBucket, error) {
	query := `
		SELECT key, basis_points, balance, destination_account_id
		FROM share_buckets
		ORDER BY key ASC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get share buckets: %w", err)
	}
	defer rows.Close()

	var buckets []*entities.ShareBucket
	for rows.Next() {
		var bucket entities.ShareBucket
		err := rows.Scan(
			&bucket.Key,
			&bucket.BasisPoints,
			&bucket.Balance,
			&bucket.DestinationAccountID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan share bucket: %w", err)
		}
		buckets = append(buckets, &bucket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate share buckets: %w", err)
	}

	return buckets, nil
}

// GetByKey returns a single bucket, nil if the key is unknown
func (r *ShareBucketRepository) GetByKey(ctx context.Context, key entities.BucketKey) (*entities.ShareBucket, error) {
	query := `
		SELECT key, basis_points, balance, destination_account_id
		FROM share_buckets
		WHERE key = $1
	`

	var bucket entities.ShareBucket
	err := r.q.QueryRow(ctx, query, key).Scan(
		&bucket.Key,
		&bucket.BasisPoints,
		&bucket.Balance,
		&bucket.DestinationAccountID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get share bucket %s: %w", key, err)
	}

	return &bucket, nil
}

// ReplaceShares rewrites every bucket's basis points in one statement
func (r *ShareBucketRepository) ReplaceShares(ctx context.Context, shares map[entities.BucketKey]int64) error {
	query := `
		UPDATE share_buckets
		SET basis_points = $2
		WHERE key = $1
	`

	for key, bps := range shares {
		result, err := r.q.Exec(ctx, query, key, bps)
		if err != nil {
			return fmt.Errorf("failed to set share for bucket %s: %w", key, err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("share bucket %s not found", key)
		}
	}

	return nil
}

// Accrue adds amount to a bucket's withdrawable balance
func (r *ShareBucketRepository) Accrue(ctx context.Context, key entities.BucketKey, amount int64) error {
	query := `
		UPDATE share_buckets
		SET balance = balance + $2
		WHERE key = $1
	`

	result, err := r.q.Exec(ctx, query, key, amount)
	if err != nil {
		return fmt.Errorf("failed to accrue to bucket %s: %w", key, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("share bucket %s not found", key)
	}

	return nil
}

// Deduct subtracts amount from a bucket's balance. The WHERE guard keeps the
// balance from going negative under concurrent withdrawals.
func (r *ShareBucketRepository) Deduct(ctx context.Context, key entities.BucketKey, amount int64) error {
	query := `
		UPDATE share_buckets
		SET balance = balance - $2
		WHERE key = $1
		  AND balance >= $2
	`

	result, err := r.q.Exec(ctx, query, key, amount)
	if err != nil {
		return fmt.Errorf("failed to deduct from bucket %s: %w", key, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("bucket %s: %w", key, entities.ErrInsufficientBucket)
	}

	return nil
}

// SetDestination assigns a bucket's payout destination account
func (r *ShareBucketRepository) SetDestination(ctx context.Context, key entities.BucketKey, accountID int64) error {
	query := `
		UPDATE share_buckets
		SET destination_account_id = $2
		WHERE key = $1
	`

	result, err := r.q.Exec(ctx, query, key, accountID)
	if err != nil {
		return fmt.Errorf("failed to set destination for bucket %s: %w", key, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("share bucket %s not found", key)
	}

	return nil
}
