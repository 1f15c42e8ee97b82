package repository

import (
	"context"
	"fmt"

	"lotto/domain/entities"

	"github.com/jackc/pgx/v5"
)

// AffiliateRepository implements affiliate policy and gate state data access
type AffiliateRepository struct {
	q Queryable
}

// NewAffiliateRepository creates a new affiliate repository bound to a transaction
func NewAffiliateRepository(tx Queryable) *AffiliateRepository {
	return &AffiliateRepository{q: tx}
}

// GetRecord returns the flags for an account, nil if never recorded
func (r *AffiliateRepository) GetRecord(ctx context.Context, accountID int64) (*entities.AffiliateRecord, error) {
	query := `
		SELECT account_id, approved, blacklisted, updated_at
		FROM affiliate_records
		WHERE account_id = $1
	`

	var record entities.AffiliateRecord
	err := r.q.QueryRow(ctx, query, accountID).Scan(
		&record.AccountID,
		&record.Approved,
		&record.Blacklisted,
		&record.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get affiliate record %d: %w", accountID, err)
	}

	return &record, nil
}

// UpsertRecord creates or updates an account's flags
func (r *AffiliateRepository) UpsertRecord(ctx context.Context, record *entities.AffiliateRecord) error {
	query := `
		INSERT INTO affiliate_records (account_id, approved, blacklisted, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id)
		DO UPDATE SET approved = $2, blacklisted = $3, updated_at = $4
	`

	if _, err := r.q.Exec(ctx, query,
		record.AccountID,
		record.Approved,
		record.Blacklisted,
		record.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to upsert affiliate record %d: %w", record.AccountID, err)
	}

	return nil
}

// GetGateState returns the gate's nomad bookkeeping
func (r *AffiliateRepository) GetGateState(ctx context.Context) (*entities.GateState, error) {
	query := `SELECT nomad_balance FROM gate_state WHERE id = 1`

	var state entities.GateState
	if err := r.q.QueryRow(ctx, query).Scan(&state.NomadBalance); err != nil {
		return nil, fmt.Errorf("failed to get gate state: %w", err)
	}

	return &state, nil
}

// AddNomad increments the unattributed funds balance
func (r *AffiliateRepository) AddNomad(ctx context.Context, amount int64) error {
	query := `UPDATE gate_state SET nomad_balance = nomad_balance + $1 WHERE id = 1`

	if _, err := r.q.Exec(ctx, query, amount); err != nil {
		return fmt.Errorf("failed to add nomad funds: %w", err)
	}

	return nil
}

// DeductNomad decrements the unattributed funds balance; the WHERE guard
// keeps it from going negative
func (r *AffiliateRepository) DeductNomad(ctx context.Context, amount int64) error {
	query := `
		UPDATE gate_state
		SET nomad_balance = nomad_balance - $1
		WHERE id = 1
		  AND nomad_balance >= $1
	`

	result, err := r.q.Exec(ctx, query, amount)
	if err != nil {
		return fmt.Errorf("failed to deduct nomad funds: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("nomad deduction of %d: %w", amount, entities.ErrInsufficientCustody)
	}

	return nil
}
