package repository

import (
	"context"
	"fmt"

	"lotto/application"
	"lotto/database"
	"lotto/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db                     *database.DB
	tx                     pgx.Tx
	ctx                    context.Context
	transactionalPublisher interfaces.TransactionalEventPublisher

	drawRepo      interfaces.DrawRepository
	entryRepo     interfaces.EntryRepository
	requestRepo   interfaces.RandomnessRequestRepository
	bucketRepo    interfaces.ShareBucketRepository
	fundingRepo   interfaces.DrawFundingRepository
	affiliateRepo interfaces.AffiliateRepository
	accountRepo   interfaces.AccountRepository
	transferRepo  interfaces.TransferRecordRepository
	holdingRepo   interfaces.AssetHoldingRepository
	settingsRepo  interfaces.SettingsRepository
}

type unitOfWorkFactory struct {
	db *database.DB
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) *unitOfWorkFactory {
	return &unitOfWorkFactory{
		db: db,
	}
}

// CreateWithPublisher creates a new UnitOfWork with a specific transactional publisher
func (f *unitOfWorkFactory) CreateWithPublisher(transactionalPublisher interfaces.TransactionalEventPublisher) application.UnitOfWork {
	return &unitOfWork{
		db:                     f.db,
		transactionalPublisher: transactionalPublisher,
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.drawRepo = NewDrawRepository(tx)
	u.entryRepo = NewEntryRepository(tx)
	u.requestRepo = NewRandomnessRequestRepository(tx)
	u.bucketRepo = NewShareBucketRepository(tx)
	u.fundingRepo = NewDrawFundingRepository(tx)
	u.affiliateRepo = NewAffiliateRepository(tx)
	u.accountRepo = NewAccountRepository(tx)
	u.transferRepo = NewTransferRecordRepository(tx)
	u.holdingRepo = NewAssetHoldingRepository(tx)
	u.settingsRepo = NewSettingsRepository(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	err := u.tx.Commit(u.ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil

	// Flush pending events after successful commit
	if u.transactionalPublisher != nil {
		u.transactionalPublisher.Flush(u.ctx)
	}

	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil

	// Discard pending events on rollback
	if u.transactionalPublisher != nil {
		u.transactionalPublisher.Discard()
	}

	return nil
}

// DrawRepository returns the draw repository for this unit of work
func (u *unitOfWork) DrawRepository() interfaces.DrawRepository {
	if u.drawRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.drawRepo
}

// EntryRepository returns the entry repository for this unit of work
func (u *unitOfWork) EntryRepository() interfaces.EntryRepository {
	if u.entryRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.entryRepo
}

// RandomnessRequestRepository returns the request correlation repository for this unit of work
func (u *unitOfWork) RandomnessRequestRepository() interfaces.RandomnessRequestRepository {
	if u.requestRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.requestRepo
}

// ShareBucketRepository returns the settlement bucket repository for this unit of work
func (u *unitOfWork) ShareBucketRepository() interfaces.ShareBucketRepository {
	if u.bucketRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.bucketRepo
}

// DrawFundingRepository returns the funding repository for this unit of work
func (u *unitOfWork) DrawFundingRepository() interfaces.DrawFundingRepository {
	if u.fundingRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.fundingRepo
}

// AffiliateRepository returns the affiliate repository for this unit of work
func (u *unitOfWork) AffiliateRepository() interfaces.AffiliateRepository {
	if u.affiliateRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.affiliateRepo
}

// AccountRepository returns the account ledger repository for this unit of work
func (u *unitOfWork) AccountRepository() interfaces.AccountRepository {
	if u.accountRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.accountRepo
}

// TransferRecordRepository returns the transfer audit repository for this unit of work
func (u *unitOfWork) TransferRecordRepository() interfaces.TransferRecordRepository {
	if u.transferRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transferRepo
}

// AssetHoldingRepository returns the asset holding repository for this unit of work
func (u *unitOfWork) AssetHoldingRepository() interfaces.AssetHoldingRepository {
	if u.holdingRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.holdingRepo
}

// SettingsRepository returns the settings repository for this unit of work
func (u *unitOfWork) SettingsRepository() interfaces.SettingsRepository {
	if u.settingsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.settingsRepo
}

// EventBus returns the transactional event publisher for this unit of work
func (u *unitOfWork) EventBus() interfaces.EventPublisher {
	if u.transactionalPublisher == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionalPublisher
}
