package entities

import "fmt"

// Configuration bounds for operator-tunable values
const (
	MinEntryPrice   = 100
	MaxEntryPrice   = 1_000_000
	MinDrawCapacity = 2
	MaxDrawCapacity = 10_000
)

// LotterySettings is the singleton runtime configuration row. Draws capture
// price, capacity and prize at creation, so edits here apply from the next
// draw onward.
type LotterySettings struct {
	EntryPrice          int64 `db:"entry_price"`
	DrawCapacity        int64 `db:"draw_capacity"`
	PrizeAmount         int64 `db:"prize_amount"`
	RequiredFunding     int64 `db:"required_funding"` // per-draw funding threshold for closing
	PrizeBps            int64 `db:"prize_bps"`
	Paused              bool  `db:"paused"`
	SettlementAccountID int64 `db:"settlement_account_id"`
	GateAccountID       int64 `db:"gate_account_id"`

	// Randomness request parameters forwarded to the oracle
	OracleKeyHash          string `db:"oracle_key_hash"`
	OracleSubscriptionID   int64  `db:"oracle_subscription_id"`
	OracleConfirmations    int64  `db:"oracle_confirmations"`
	OracleCallbackGasLimit int64  `db:"oracle_callback_gas_limit"`
}

// OracleParams assembles the captured randomness-request parameters
func (s *LotterySettings) OracleParams() OracleParams {
	return OracleParams{
		KeyHash:          s.OracleKeyHash,
		SubscriptionID:   s.OracleSubscriptionID,
		Confirmations:    s.OracleConfirmations,
		CallbackGasLimit: s.OracleCallbackGasLimit,
		NumValues:        1,
	}
}

// ValidateEntryPrice checks a proposed entry price against the allowed range
func ValidateEntryPrice(price int64) error {
	if price < MinEntryPrice || price > MaxEntryPrice {
		return fmt.Errorf("entry price %d outside [%d, %d]: %w", price, MinEntryPrice, MaxEntryPrice, ErrPriceOutOfRange)
	}
	return nil
}

// ValidateDrawCapacity checks a proposed capacity against the allowed range
func ValidateDrawCapacity(capacity int64) error {
	if capacity < MinDrawCapacity || capacity > MaxDrawCapacity {
		return fmt.Errorf("draw capacity %d outside [%d, %d]: %w", capacity, MinDrawCapacity, MaxDrawCapacity, ErrCapacityOutOfRange)
	}
	return nil
}

// ValidatePrizeAmount rejects a zero or negative prize
func ValidatePrizeAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("prize amount %d: %w", amount, ErrZeroAmount)
	}
	return nil
}
