package services

import (
	"lotto/domain/entities"
	"lotto/domain/testhelpers"
)

// Test constants for consistent test data
const (
	TestOperatorID      = int64(999999)
	TestPlayerID        = int64(100)
	TestAffiliateID     = int64(200)
	TestWinnerID        = int64(300)
	TestSettlementID    = int64(1)
	TestGateID          = int64(2)
	TestEntryPrice      = int64(1000)
	TestDrawCapacity    = int64(10)
	TestPrizeAmount     = int64(900)
	TestRequiredFunding = int64(9250)
	TestPrizeBps        = int64(1000)
)

// testOperatorIDs is the operator allowlist used across service tests
var testOperatorIDs = []int64{TestOperatorID}

// createTestSettings builds a settings row with common defaults
func createTestSettings(opts ...func(*entities.LotterySettings)) *entities.LotterySettings {
	settings := &entities.LotterySettings{
		EntryPrice:          TestEntryPrice,
		DrawCapacity:        TestDrawCapacity,
		PrizeAmount:         TestPrizeAmount,
		RequiredFunding:     TestRequiredFunding,
		PrizeBps:            TestPrizeBps,
		Paused:              false,
		SettlementAccountID: TestSettlementID,
		GateAccountID:       TestGateID,

		OracleKeyHash:          "test-key-hash",
		OracleSubscriptionID:   1,
		OracleConfirmations:    3,
		OracleCallbackGasLimit: 500000,
	}
	for _, opt := range opts {
		opt(settings)
	}
	return settings
}

// createTestDraw builds an open draw with common defaults
func createTestDraw(id int64, opts ...func(*entities.Draw)) *entities.Draw {
	draw := &entities.Draw{
		ID:          id,
		State:       entities.DrawStateOpen,
		Capacity:    TestDrawCapacity,
		EntryPrice:  TestEntryPrice,
		PrizeAmount: TestPrizeAmount,
	}
	for _, opt := range opts {
		opt(draw)
	}
	return draw
}

// createTestAccount builds a ledger account with the given balance
func createTestAccount(id, balance int64) *entities.Account {
	return &entities.Account{
		ID:      id,
		Balance: balance,
	}
}

// setupLifecycleServiceMocks creates the full mock set for lifecycle tests
func setupLifecycleServiceMocks() (
	*testhelpers.MockDrawRepository,
	*testhelpers.MockEntryRepository,
	*testhelpers.MockRandomnessRequestRepository,
	*testhelpers.MockAccountRepository,
	*testhelpers.MockTransferRecordRepository,
	*testhelpers.MockSettingsRepository,
	*testhelpers.MockSettlementService,
	*testhelpers.MockAffiliateService,
	*testhelpers.MockRandomnessOracle,
	*testhelpers.MockEventPublisher,
) {
	return new(testhelpers.MockDrawRepository),
		new(testhelpers.MockEntryRepository),
		new(testhelpers.MockRandomnessRequestRepository),
		new(testhelpers.MockAccountRepository),
		new(testhelpers.MockTransferRecordRepository),
		new(testhelpers.MockSettingsRepository),
		new(testhelpers.MockSettlementService),
		new(testhelpers.MockAffiliateService),
		new(testhelpers.MockRandomnessOracle),
		new(testhelpers.MockEventPublisher)
}

// setupSettlementServiceMocks creates the full mock set for settlement tests
func setupSettlementServiceMocks() (
	*testhelpers.MockShareBucketRepository,
	*testhelpers.MockDrawFundingRepository,
	*testhelpers.MockAccountRepository,
	*testhelpers.MockTransferRecordRepository,
	*testhelpers.MockAssetHoldingRepository,
	*testhelpers.MockSettingsRepository,
	*testhelpers.MockEventPublisher,
) {
	return new(testhelpers.MockShareBucketRepository),
		new(testhelpers.MockDrawFundingRepository),
		new(testhelpers.MockAccountRepository),
		new(testhelpers.MockTransferRecordRepository),
		new(testhelpers.MockAssetHoldingRepository),
		new(testhelpers.MockSettingsRepository),
		new(testhelpers.MockEventPublisher)
}

// setupAffiliateServiceMocks creates the full mock set for affiliate tests
func setupAffiliateServiceMocks() (
	*testhelpers.MockAffiliateRepository,
	*testhelpers.MockAccountRepository,
	*testhelpers.MockTransferRecordRepository,
	*testhelpers.MockAssetHoldingRepository,
	*testhelpers.MockSettingsRepository,
	*testhelpers.MockEventPublisher,
) {
	return new(testhelpers.MockAffiliateRepository),
		new(testhelpers.MockAccountRepository),
		new(testhelpers.MockTransferRecordRepository),
		new(testhelpers.MockAssetHoldingRepository),
		new(testhelpers.MockSettingsRepository),
		new(testhelpers.MockEventPublisher)
}
