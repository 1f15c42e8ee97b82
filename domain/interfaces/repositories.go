package interfaces

import (
	"context"

	"lotto/domain/entities"
	"lotto/domain/events"
)

// DrawRepository defines data access for draw records
type DrawRepository interface {
	// GetByID retrieves a draw by its sequential id
	GetByID(ctx context.Context, id int64) (*entities.Draw, error)

	// GetByIDForUpdate retrieves a draw by id with a row lock
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Draw, error)

	// GetCurrentOpen returns the single open draw, or nil if none exists
	GetCurrentOpen(ctx context.Context) (*entities.Draw, error)

	// Create inserts a draw with an explicit sequential id
	Create(ctx context.Context, draw *entities.Draw) error

	// Update persists state transitions and winner fields
	Update(ctx context.Context, draw *entities.Draw) error

	// GetStuckInProgress returns draws that have been waiting on randomness
	// longer than the supplied number of seconds
	GetStuckInProgress(ctx context.Context, olderThanSeconds int64) ([]*entities.Draw, error)
}

// EntryRepository defines data access for draw entries
type EntryRepository interface {
	// Create inserts an entry; uniqueness of (draw, account) is enforced
	Create(ctx context.Context, entry *entities.Entry) error

	// CountForDraw returns the number of entries in a draw
	CountForDraw(ctx context.Context, drawID int64) (int64, error)

	// ExistsForDraw reports whether the account already entered the draw
	ExistsForDraw(ctx context.Context, drawID, accountID int64) (bool, error)

	// GetByDrawOrdered returns a draw's entries in insertion order
	GetByDrawOrdered(ctx context.Context, drawID int64) ([]*entities.Entry, error)

	// GetByPosition returns the entry at a given insertion position
	GetByPosition(ctx context.Context, drawID, position int64) (*entities.Entry, error)
}

// RandomnessRequestRepository defines data access for request correlations
type RandomnessRequestRepository interface {
	// Create stores a new request-to-draw correlation
	Create(ctx context.Context, request *entities.RandomnessRequest) error

	// GetByRequestID returns the correlation for a request id, nil if unknown
	GetByRequestID(ctx context.Context, requestID string) (*entities.RandomnessRequest, error)

	// Delete removes a correlation; deleting an absent id is an error
	Delete(ctx context.Context, requestID string) error
}

// ShareBucketRepository defines data access for settlement buckets
type ShareBucketRepository interface {
	// GetAll returns every bucket
	GetAll(ctx context.Context) ([]*entities.ShareBucket, error)

	// GetByKey returns a single bucket, nil if the key is unknown
	GetByKey(ctx context.Context, key entities.BucketKey) (*entities.ShareBucket, error)

	// ReplaceShares atomically rewrites every bucket's basis points
	ReplaceShares(ctx context.Context, shares map[entities.BucketKey]int64) error

	// Accrue adds amount to a bucket's withdrawable balance
	Accrue(ctx context.Context, key entities.BucketKey, amount int64) error

	// Deduct subtracts amount from a bucket's balance; never goes negative
	Deduct(ctx context.Context, key entities.BucketKey, amount int64) error

	// SetDestination assigns a bucket's payout destination account
	SetDestination(ctx context.Context, key entities.BucketKey, accountID int64) error
}

// DrawFundingRepository tracks funding received per draw
type DrawFundingRepository interface {
	// Add increments a draw's funding total, creating the row on first use
	Add(ctx context.Context, drawID, amount int64) error

	// GetTotal returns a draw's funding total, zero if never funded
	GetTotal(ctx context.Context, drawID int64) (int64, error)
}

// AffiliateRepository defines data access for affiliate policy and gate state
type AffiliateRepository interface {
	// GetRecord returns the flags for an account, nil if never recorded
	GetRecord(ctx context.Context, accountID int64) (*entities.AffiliateRecord, error)

	// UpsertRecord creates or updates an account's flags
	UpsertRecord(ctx context.Context, record *entities.AffiliateRecord) error

	// GetGateState returns the gate's nomad bookkeeping
	GetGateState(ctx context.Context) (*entities.GateState, error)

	// AddNomad increments the unattributed funds balance
	AddNomad(ctx context.Context, amount int64) error

	// DeductNomad decrements the unattributed funds balance; never negative
	DeductNomad(ctx context.Context, amount int64) error
}

// AccountRepository defines access to the fungible-token ledger
type AccountRepository interface {
	// GetByID retrieves an account, nil if it does not exist
	GetByID(ctx context.Context, id int64) (*entities.Account, error)

	// GetOrCreate retrieves an account, creating it with zero balance
	GetOrCreate(ctx context.Context, id int64) (*entities.Account, error)

	// Credit atomically adds amount to an account's balance
	Credit(ctx context.Context, id, amount int64) error

	// Debit atomically subtracts amount; fails with ErrInsufficientBalance
	// if the balance does not cover it
	Debit(ctx context.Context, id, amount int64) error
}

// TransferRecordRepository is the append-only audit trail of fund movements
type TransferRecordRepository interface {
	// Record creates a new transfer audit entry
	Record(ctx context.Context, record *entities.TransferRecord) error

	// GetByAccount returns recent transfers touching an account
	GetByAccount(ctx context.Context, accountID int64, limit int) ([]*entities.TransferRecord, error)
}

// AssetHoldingRepository tracks non-native tokens held pending rescue
type AssetHoldingRepository interface {
	// Get returns the held amount of an asset for a component
	Get(ctx context.Context, component, asset string) (int64, error)

	// Add increments a component's holding of an asset
	Add(ctx context.Context, component, asset string, amount int64) error

	// Remove clears up to amount from a holding; never goes negative
	Remove(ctx context.Context, component, asset string, amount int64) error
}

// SettingsRepository defines access to the singleton settings row
type SettingsRepository interface {
	// Get returns the settings row
	Get(ctx context.Context) (*entities.LotterySettings, error)

	// Update persists the full settings row
	Update(ctx context.Context, settings *entities.LotterySettings) error
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(event events.Event) error
}

// TransactionalEventPublisher buffers events until the surrounding
// transaction resolves
type TransactionalEventPublisher interface {
	EventPublisher

	// Flush publishes all buffered events after a successful commit
	Flush(ctx context.Context) error

	// Discard drops buffered events on rollback
	Discard()
}
