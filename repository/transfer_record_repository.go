package repository

import (
	"context"
	"fmt"

	"lotto/domain/entities"
)

// TransferRecordRepository implements the append-only transfer audit trail
type TransferRecordRepository struct {
	q Queryable
}

// NewTransferRecordRepository creates a new transfer record repository bound to a transaction
func NewTransferRecordRepository(tx Queryable) *TransferRecordRepository {
	return &TransferRecordRepository{q: tx}
}

// Record creates a new transfer audit entry
func (r *TransferRecordRepository) Record(ctx context.Context, record *entities.TransferRecord) error {
	query := `
		INSERT INTO transfer_records (from_account_id, to_account_id, amount, transaction_type, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		record.FromAccountID,
		record.ToAccountID,
		record.Amount,
		record.TransactionType,
		record.Metadata,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record %s transfer: %w", record.TransactionType, err)
	}

	return nil
}

// GetByAccount returns recent transfers touching an account, newest first
func (r *TransferRecordRepository) GetByAccount(ctx context.Context, accountID int64, limit int) ([]*entities.TransferRecord, error) {
	query := `
		SELECT id, from_account_id, to_account_id, amount, transaction_type, metadata, created_at
		FROM transfer_records
		WHERE from_account_id = $1
		   OR to_account_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfers for account %d: %w", accountID, err)
	}
	defer rows.Close()

	var records []*entities.TransferRecord
	for rows.Next() {
		var record entities.TransferRecord
		err := rows.Scan(
			&record.ID,
			&record.FromAccountID,
			&record.ToAccountID,
			&record.Amount,
			&record.TransactionType,
			&record.Metadata,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transfer records: %w", err)
	}

	return records, nil
}
