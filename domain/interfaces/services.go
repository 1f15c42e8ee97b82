package interfaces

import (
	"context"

	"lotto/domain/entities"
)

// EnterResult describes the outcome of a successful entry
type EnterResult struct {
	Draw            *entities.Draw
	Position        int64
	AffiliateShare  int64
	SettlementShare int64
	AffiliatePaid   bool
	// Set only when this entry filled the draw
	ClosedDraw *entities.Draw
	RequestID  string
	NextDraw   *entities.Draw
}

// FulfillResult describes the outcome of a processed fulfillment
type FulfillResult struct {
	Draw            *entities.Draw
	RandomValue     uint64
	WinningIndex    int64
	WinnerAccountID int64
	PrizeAmount     int64
}

// LifecycleService owns the sequence of draws, entry admission,
// capacity-triggered closing and winner resolution
type LifecycleService interface {
	// Enter admits caller into the current open draw, splitting the entry
	// fee between the affiliate gate and the settlement ledger. If the entry
	// fills the draw, the next draw is opened and the filled draw closes,
	// which requires the settlement ledger to confirm full funding; an
	// unconfirmed close fails the whole entry.
	Enter(ctx context.Context, callerID, affiliateID int64) (*EnterResult, error)

	// Fulfill consumes a randomness request correlation exactly once,
	// resolves the winner and instructs the settlement ledger to pay the
	// prize. Only the designated oracle adapter may reach this.
	Fulfill(ctx context.Context, requestID string, randomValues []uint64) (*FulfillResult, error)

	// GetCurrentDraw returns the open draw
	GetCurrentDraw(ctx context.Context) (*entities.Draw, error)
}

// SettlementService owns per-draw funding totals, bucket accrual and all
// payouts from settlement custody
type SettlementService interface {
	// NotifyEntry records funding for a draw and accrues bucket shares.
	// Restricted to the lifecycle caller; funds are already in custody.
	NotifyEntry(ctx context.Context, payerID, amount, drawID int64) error

	// DispatchPayout pays the prize from custody. Restricted to lifecycle.
	DispatchPayout(ctx context.Context, winnerID, amount, drawID int64) error

	// IsDrawFullyFunded reports whether the draw's funding total has reached
	// the captured per-draw requirement
	IsDrawFullyFunded(ctx context.Context, drawID int64) (bool, error)

	// SetBucketShares atomically replaces all bucket basis points after
	// re-validating the 10,000 sum against the unchanged prize share
	SetBucketShares(ctx context.Context, operatorID int64, shares map[entities.BucketKey]int64) error

	// SetBucketDestination assigns where a bucket's withdrawals go
	SetBucketDestination(ctx context.Context, operatorID int64, key entities.BucketKey, accountID int64) error

	// WithdrawBucket pays out a bucket's full accrued balance
	WithdrawBucket(ctx context.Context, operatorID int64, key entities.BucketKey) (int64, error)

	// EmergencyWithdraw moves amount from total custody to an account
	EmergencyWithdraw(ctx context.Context, operatorID, toAccountID, amount int64) error

	// RescueAsset moves the full holding of a non-native asset out of
	// settlement custody; the native asset is refused
	RescueAsset(ctx context.Context, operatorID int64, asset string, toAccountID int64) (int64, error)
}

// AffiliateService decides per entry whether the referral share is paid out
// or retained as nomad funds, and owns the approval/blacklist policy
type AffiliateService interface {
	// HandleEntry routes the referral-sized portion of an entry fee.
	// Restricted to the lifecycle caller; funds are already in custody.
	// Returns whether the affiliate was paid.
	HandleEntry(ctx context.Context, playerID, affiliateID, amount, drawID int64) (bool, error)

	// SetApproval adds or removes an account from the approved list
	SetApproval(ctx context.Context, operatorID, accountID int64, approved bool) error

	// SetBlacklist sets or clears an account's blacklist flag
	SetBlacklist(ctx context.Context, operatorID, accountID int64, blacklisted bool) error

	// WithdrawNomad pays the accumulated unattributed funds to an account
	WithdrawNomad(ctx context.Context, operatorID, toAccountID int64) (int64, error)

	// RescueAsset moves the full holding of a non-native asset out of gate
	// custody; the native asset is refused
	RescueAsset(ctx context.Context, operatorID int64, asset string, toAccountID int64) (int64, error)
}

// SettingsService exposes the bounded administrative configuration surface.
// Every setter emits an observable change record.
type SettingsService interface {
	Get(ctx context.Context) (*entities.LotterySettings, error)
	UpdateEntryPrice(ctx context.Context, operatorID, price int64) error
	UpdateDrawCapacity(ctx context.Context, operatorID, capacity int64) error
	UpdatePrizeAmount(ctx context.Context, operatorID, amount int64) error
	UpdateRequiredFunding(ctx context.Context, operatorID, amount int64) error
	UpdateOracleParams(ctx context.Context, operatorID int64, params entities.OracleParams) error
	UpdateCustodyAccounts(ctx context.Context, operatorID, settlementAccountID, gateAccountID int64) error
	SetPaused(ctx context.Context, operatorID int64, paused bool) error
}

// RandomnessOracle is the adapter to the external randomness source. The
// request phase returns a correlation id immediately without blocking;
// fulfillment arrives later through an independently triggered call.
type RandomnessOracle interface {
	RequestRandomness(ctx context.Context, drawID int64, params entities.OracleParams) (string, error)
}
