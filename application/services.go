package application

import (
	"lotto/domain/interfaces"
	"lotto/domain/services"
)

// serviceSet is the full domain service graph bound to one unit of work
type serviceSet struct {
	lifecycle  interfaces.LifecycleService
	settlement interfaces.SettlementService
	affiliate  interfaces.AffiliateService
	settings   interfaces.SettingsService
}

// buildServices wires the domain services against a started unit of work so
// every repository call they make shares the same transaction.
func buildServices(uow UnitOfWork, oracle interfaces.RandomnessOracle, operatorIDs []int64) serviceSet {
	settlement := services.NewSettlementService(
		uow.ShareBucketRepository(),
		uow.DrawFundingRepository(),
		uow.AccountRepository(),
		uow.TransferRecordRepository(),
		uow.AssetHoldingRepository(),
		uow.SettingsRepository(),
		uow.EventBus(),
		operatorIDs,
	)

	affiliate := services.NewAffiliateService(
		uow.AffiliateRepository(),
		uow.AccountRepository(),
		uow.TransferRecordRepository(),
		uow.AssetHoldingRepository(),
		uow.SettingsRepository(),
		uow.EventBus(),
		operatorIDs,
	)

	lifecycle := services.NewLifecycleService(
		uow.DrawRepository(),
		uow.EntryRepository(),
		uow.RandomnessRequestRepository(),
		uow.AccountRepository(),
		uow.TransferRecordRepository(),
		uow.SettingsRepository(),
		settlement,
		affiliate,
		oracle,
		uow.EventBus(),
	)

	settings := services.NewSettingsService(
		uow.SettingsRepository(),
		uow.AccountRepository(),
		uow.EventBus(),
		operatorIDs,
	)

	return serviceSet{
		lifecycle:  lifecycle,
		settlement: settlement,
		affiliate:  affiliate,
		settings:   settings,
	}
}
