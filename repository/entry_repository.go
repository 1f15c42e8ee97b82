package repository

import (
	"context"
	"fmt"

	"lotto/domain/entities"

	"github.com/jackc/pgx/v5"
)

// EntryRepository implements entry data access
type EntryRepository struct {
	q Queryable
}

// NewEntryRepository creates a new entry repository bound to a transaction
func NewEntryRepository(tx Queryable) *EntryRepository {
	return &EntryRepository{q: tx}
}

// Create inserts an entry; the (draw, account) unique index enforces the
// one-entry-per-account rule at the storage layer too
func (r *EntryRepository) Create(ctx context.Context, entry *entities.Entry) error {
	query := `
		INSERT INTO entries (draw_id, account_id, affiliate_account_id, position, entry_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		entry.DrawID,
		entry.AccountID,
		entry.AffiliateAccountID,
		entry.Position,
		entry.EntryPrice,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create entry for draw %d: %w", entry.DrawID, err)
	}

	return nil
}

// CountForDraw returns the number of entries in a draw
func (r *EntryRepository) CountForDraw(ctx context.Context, drawID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM entries WHERE draw_id = $1`

	var count int64
	if err := r.q.QueryRow(ctx, query, drawID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries for draw %d: %w", drawID, err)
	}

	return count, nil
}

// ExistsForDraw reports whether the account already entered the draw
func (r *EntryRepository) ExistsForDraw(ctx context.Context, drawID, accountID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM entries WHERE draw_id = $1 AND account_id = $2)`

	var exists bool
	if err := r.q.QueryRow(ctx, query, drawID, accountID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check entry for draw %d: %w", drawID, err)
	}

	return exists, nil
}

// GetByDrawOrdered returns a draw's entries in insertion order
func (r *EntryRepository) GetByDrawOrdered(ctx context.Context, drawID int64) ([]*entities.Entry, error) {
	query := `
		SELECT id, draw_id, account_id, affiliate_account_id, position, entry_price, created_at
		FROM entries
		WHERE draw_id = $1
		ORDER BY position ASC
	`

	rows, err := r.q.Query(ctx, query, drawID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries for draw %d: %w", drawID, err)
	}
	defer rows.Close()

	var entries []*entities.Entry
	for rows.Next() {
		var entry entities.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.DrawID,
			&entry.AccountID,
			&entry.AffiliateAccountID,
			&entry.Position,
			&entry.EntryPrice,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// GetByPosition returns the entry at a given insertion position
func (r *EntryRepository) GetByPosition(ctx context.Context, drawID, position int64) (*entities.Entry, error) {
	query := `
		SELECT id, draw_id, account_id, affiliate_account_id, position, entry_price, created_at
		FROM entries
		WHERE draw_id = $1
		  AND position = $2
	`

	var entry entities.Entry
	err := r.q.QueryRow(ctx, query, drawID, position).Scan(
		&entry.ID,
		&entry.DrawID,
		&entry.AccountID,
		&entry.AffiliateAccountID,
		&entry.Position,
		&entry.EntryPrice,
		&entry.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry at position %d of draw %d: %w", position, drawID, err)
	}

	return &entry, nil
}
