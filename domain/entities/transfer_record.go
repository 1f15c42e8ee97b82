package entities

import "time"

// TransactionType categorizes a transfer record
type TransactionType string

const (
	TransactionTypeEntryFee            TransactionType = "entry_fee"
	TransactionTypeReferralFee         TransactionType = "referral_fee"
	TransactionTypeAffiliatePayout     TransactionType = "affiliate_payout"
	TransactionTypeNomadRetained       TransactionType = "nomad_retained"
	TransactionTypeNomadWithdrawal     TransactionType = "nomad_withdrawal"
	TransactionTypePrizePayout         TransactionType = "prize_payout"
	TransactionTypeBucketWithdrawal    TransactionType = "bucket_withdrawal"
	TransactionTypeEmergencyWithdrawal TransactionType = "emergency_withdrawal"
	TransactionTypeAssetRescue         TransactionType = "asset_rescue"
)

// TransferRecord is the append-only audit entry for every movement of funds
// the system performs. Nomad retentions are recorded with equal from/to so
// the reason metadata survives even though no account balance changes.
type TransferRecord struct {
	ID              int64           `db:"id"`
	FromAccountID   int64           `db:"from_account_id"`
	ToAccountID     int64           `db:"to_account_id"`
	Amount          int64           `db:"amount"`
	TransactionType TransactionType `db:"transaction_type"`
	Metadata        map[string]any  `db:"metadata"`
	CreatedAt       time.Time       `db:"created_at"`
}
