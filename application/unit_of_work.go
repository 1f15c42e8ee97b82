package application

import (
	"context"

	"lotto/domain/interfaces"
)

// UnitOfWork defines the interface for transactional repository operations.
// Every operation that moves funds runs inside one so a failure anywhere
// rolls back every transfer it made.
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	DrawRepository() interfaces.DrawRepository
	EntryRepository() interfaces.EntryRepository
	RandomnessRequestRepository() interfaces.RandomnessRequestRepository
	ShareBucketRepository() interfaces.ShareBucketRepository
	DrawFundingRepository() interfaces.DrawFundingRepository
	AffiliateRepository() interfaces.AffiliateRepository
	AccountRepository() interfaces.AccountRepository
	TransferRecordRepository() interfaces.TransferRecordRepository
	AssetHoldingRepository() interfaces.AssetHoldingRepository
	SettingsRepository() interfaces.SettingsRepository
	EventBus() interfaces.EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
