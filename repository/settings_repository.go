package repository

import (
	"context"
	"fmt"

	"lotto/domain/entities"
)

// SettingsRepository implements access to the singleton settings row
type SettingsRepository struct {
	q Queryable
}

// NewSettingsRepository creates a new settings repository bound to a transaction
func NewSettingsRepository(tx Queryable) *SettingsRepository {
	return &SettingsRepository{q: tx}
}

// Get returns the settings row
func (r *SettingsRepository) Get(ctx context.Context) (*entities.LotterySettings, error) {
	query := `
		SELECT entry_price, draw_capacity, prize_amount, required_funding, prize_bps,
		       paused, settlement_account_id, gate_account_id,
		       oracle_key_hash, oracle_subscription_id, oracle_confirmations, oracle_callback_gas_limit
		FROM lottery_settings
		WHERE id = 1
	`

	var settings entities.LotterySettings
	err := r.q.QueryRow(ctx, query).Scan(
		&settings.EntryPrice,
		&settings.DrawCapacity,
		&settings.PrizeAmount,
		&settings.RequiredFunding,
		&settings.PrizeBps,
		&settings.Paused,
		&settings.SettlementAccountID,
		&settings.GateAccountID,
		&settings.OracleKeyHash,
		&settings.OracleSubscriptionID,
		&settings.OracleConfirmations,
		&settings.OracleCallbackGasLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get lottery settings: %w", err)
	}

	return &settings, nil
}

// Update persists the full settings row
func (r *SettingsRepository) Update(ctx context.Context, settings *entities.LotterySettings) error {
	query := `
		UPDATE lottery_settings
		SET entry_price = $1,
		    draw_capacity = $2,
		    prize_amount = $3,
		    required_funding = $4,
		    prize_bps = $5,
		    paused = $6,
		    settlement_account_id = $7,
		    gate_account_id = $8,
		    oracle_key_hash = $9,
		    oracle_subscription_id = $10,
		    oracle_confirmations = $11,
		    oracle_callback_gas_limit = $12
		WHERE id = 1
	`

	result, err := r.q.Exec(ctx, query,
		settings.EntryPrice,
		settings.DrawCapacity,
		settings.PrizeAmount,
		settings.RequiredFunding,
		settings.PrizeBps,
		settings.Paused,
		settings.SettlementAccountID,
		settings.GateAccountID,
		settings.OracleKeyHash,
		settings.OracleSubscriptionID,
		settings.OracleConfirmations,
		settings.OracleCallbackGasLimit,
	)
	if err != nil {
		return fmt.Errorf("failed to update lottery settings: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lottery settings row not found")
	}

	return nil
}
