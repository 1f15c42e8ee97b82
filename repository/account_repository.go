package repository

import (
	"context"
	"fmt"

	"lotto/domain/entities"

	"github.com/jackc/pgx/v5"
)

// AccountRepository implements the fungible-token ledger
type AccountRepository struct {
	q Queryable
}

// NewAccountRepository creates a new account repository bound to a transaction
func NewAccountRepository(tx Queryable) *AccountRepository {
	return &AccountRepository{q: tx}
}

// GetByID retrieves an account, nil if it does not exist
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*entities.Account, error) {
	query := `
		SELECT id, balance, created_at
		FROM accounts
		WHERE id = $1
	`

	var account entities.Account
	err := r.q.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Balance,
		&account.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", id, err)
	}

	return &account, nil
}

// GetOrCreate retrieves an account, creating it with zero balance
func (r *AccountRepository) GetOrCreate(ctx context.Context, id int64) (*entities.Account, error) {
	query := `
		INSERT INTO accounts (id, balance)
		VALUES ($1, 0)
		ON CONFLICT (id) DO UPDATE SET id = accounts.id
		RETURNING id, balance, created_at
	`

	var account entities.Account
	err := r.q.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Balance,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create account %d: %w", id, err)
	}

	return &account, nil
}

// Credit atomically adds amount to an account's balance
func (r *AccountRepository) Credit(ctx context.Context, id, amount int64) error {
	query := `
		UPDATE accounts
		SET balance = balance + $2
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("failed to credit account %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account with ID %d not found", id)
	}

	return nil
}

// Debit atomically subtracts amount. The balance guard in the WHERE clause
// makes overdraft impossible even under concurrent debits.
func (r *AccountRepository) Debit(ctx context.Context, id, amount int64) error {
	query := `
		UPDATE accounts
		SET balance = balance - $2
		WHERE id = $1
		  AND balance >= $2
	`

	result, err := r.q.Exec(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("failed to debit account %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %d debit of %d: %w", id, amount, entities.ErrInsufficientBalance)
	}

	return nil
}
