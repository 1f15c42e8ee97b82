package events

import "lotto/domain/entities"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeEntryAccepted        EventType = "entry_accepted"
	EventTypeDrawOpened           EventType = "draw_opened"
	EventTypeRandomnessRequested  EventType = "randomness_requested"
	EventTypeDrawFulfilled        EventType = "draw_fulfilled"
	EventTypePrizePaid            EventType = "prize_paid"
	EventTypeAffiliatePaid        EventType = "affiliate_paid"
	EventTypeNomadRetained        EventType = "nomad_retained"
	EventTypeBalanceChange        EventType = "balance_change"
	EventTypeSettingChanged       EventType = "setting_changed"
	EventTypeAffiliateFlagChanged EventType = "affiliate_flag_changed"
	EventTypeBucketSharesChanged  EventType = "bucket_shares_changed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// EntryAcceptedEvent records an admitted entry and its fee split
type EntryAcceptedEvent struct {
	DrawID             int64
	AccountID          int64
	AffiliateAccountID int64 // 0 when entered without a referrer
	Position           int64
	EntryPrice         int64
	AffiliateShare     int64
	SettlementShare    int64
}

func (e EntryAcceptedEvent) Type() EventType { return EventTypeEntryAccepted }

// DrawOpenedEvent records creation of a new open draw
type DrawOpenedEvent struct {
	DrawID      int64
	Capacity    int64
	EntryPrice  int64
	PrizeAmount int64
}

func (e DrawOpenedEvent) Type() EventType { return EventTypeDrawOpened }

// RandomnessRequestedEvent records a draw closing and its outstanding request
type RandomnessRequestedEvent struct {
	DrawID    int64
	RequestID string
}

func (e RandomnessRequestedEvent) Type() EventType { return EventTypeRandomnessRequested }

// DrawFulfilledEvent records winner resolution for a draw
type DrawFulfilledEvent struct {
	DrawID          int64
	RequestID       string
	RandomValue     uint64
	WinningIndex    int64
	WinnerAccountID int64
}

func (e DrawFulfilledEvent) Type() EventType { return EventTypeDrawFulfilled }

// PrizePaidEvent records the prize payout from settlement custody
type PrizePaidEvent struct {
	DrawID          int64
	WinnerAccountID int64
	Amount          int64
}

func (e PrizePaidEvent) Type() EventType { return EventTypePrizePaid }

// AffiliatePaidEvent records a referral payout to an approved affiliate
type AffiliatePaidEvent struct {
	DrawID             int64
	PlayerAccountID    int64
	AffiliateAccountID int64
	Amount             int64
}

func (e AffiliatePaidEvent) Type() EventType { return EventTypeAffiliatePaid }

// NomadRetainedEvent records a referral share kept as unattributed funds
type NomadRetainedEvent struct {
	DrawID          int64
	PlayerAccountID int64
	Amount          int64
	Reason          entities.NomadReason
}

func (e NomadRetainedEvent) Type() EventType { return EventTypeNomadRetained }

// BalanceChangeEvent represents a ledger account balance change
type BalanceChangeEvent struct {
	AccountID       int64
	OldBalance      int64
	NewBalance      int64
	ChangeAmount    int64
	TransactionType entities.TransactionType
}

func (e BalanceChangeEvent) Type() EventType { return EventTypeBalanceChange }

// SettingChangedEvent is the observable change record every setter emits
type SettingChangedEvent struct {
	Setting    string
	OldValue   string
	NewValue   string
	OperatorID int64
}

func (e SettingChangedEvent) Type() EventType { return EventTypeSettingChanged }

// AffiliateFlagChangedEvent records an approval or blacklist flag mutation
type AffiliateFlagChangedEvent struct {
	AccountID   int64
	Approved    bool
	Blacklisted bool
	OperatorID  int64
}

func (e AffiliateFlagChangedEvent) Type() EventType { return EventTypeAffiliateFlagChanged }

// BucketSharesChangedEvent records an atomic bucket share replacement
type BucketSharesChangedEvent struct {
	Shares     map[entities.BucketKey]int64
	PrizeBps   int64
	OperatorID int64
}

func (e BucketSharesChangedEvent) Type() EventType { return EventTypeBucketSharesChanged }
