package testhelpers

import (
	"context"

	"lotto/domain/entities"
	"lotto/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockDrawRepository is a mock implementation of DrawRepository
type MockDrawRepository struct {
	mock.Mock
}

func (m *MockDrawRepository) GetByID(ctx context.Context, id int64) (*entities.Draw, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Draw), args.Error(1)
}

func (m *MockDrawRepository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Draw, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Draw), args.Error(1)
}

func (m *MockDrawRepository) GetCurrentOpen(ctx context.Context) (*entities.Draw, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Draw), args.Error(1)
}

func (m *MockDrawRepository) Create(ctx context.Context, draw *entities.Draw) error {
	args := m.Called(ctx, draw)
	return args.Error(0)
}

func (m *MockDrawRepository) Update(ctx context.Context, draw *entities.Draw) error {
	args := m.Called(ctx, draw)
	return args.Error(0)
}

func (m *MockDrawRepository) GetStuckInProgress(ctx context.Context, olderThanSeconds int64) ([]*entities.Draw, error) {
	args := m.Called(ctx, olderThanSeconds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Draw), args.Error(1)
}

// MockEntryRepository is a mock implementation of EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *entities.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) CountForDraw(ctx context.Context, drawID int64) (int64, error) {
	args := m.Called(ctx, drawID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) ExistsForDraw(ctx context.Context, drawID, accountID int64) (bool, error) {
	args := m.Called(ctx, drawID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntryRepository) GetByDrawOrdered(ctx context.Context, drawID int64) ([]*entities.Entry, error) {
	args := m.Called(ctx, drawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Entry), args.Error(1)
}

func (m *MockEntryRepository) GetByPosition(ctx context.Context, drawID, position int64) (*entities.Entry, error) {
	args := m.Called(ctx, drawID, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Entry), args.Error(1)
}

// MockRandomnessRequestRepository is a mock implementation of RandomnessRequestRepository
type MockRandomnessRequestRepository struct {
	mock.Mock
}

func (m *MockRandomnessRequestRepository) Create(ctx context.Context, request *entities.RandomnessRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRandomnessRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*entities.RandomnessRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RandomnessRequest), args.Error(1)
}

func (m *MockRandomnessRequestRepository) Delete(ctx context.Context, requestID string) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

// MockShareBucketRepository is a mock implementation of ShareBucketRepository
type MockShareBucketRepository struct {
	mock.Mock
}

func (m *MockShareBucketRepository) GetAll(ctx context.Context) ([]*entities.ShareBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ShareBucket), args.Error(1)
}

func (m *MockShareBucketRepository) GetByKey(ctx context.Context, key entities.BucketKey) (*entities.ShareBucket, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ShareBucket), args.Error(1)
}

func (m *MockShareBucketRepository) ReplaceShares(ctx context.Context, shares map[entities.BucketKey]int64) error {
	args := m.Called(ctx, shares)
	return args.Error(0)
}

func (m *MockShareBucketRepository) Accrue(ctx context.Context, key entities.BucketKey, amount int64) error {
	args := m.Called(ctx, key, amount)
	return args.Error(0)
}

func (m *MockShareBucketRepository) Deduct(ctx context.Context, key entities.BucketKey, amount int64) error {
	args := m.Called(ctx, key, amount)
	return args.Error(0)
}

func (m *MockShareBucketRepository) SetDestination(ctx context.Context, key entities.BucketKey, accountID int64) error {
	args := m.Called(ctx, key, accountID)
	return args.Error(0)
}

// MockDrawFundingRepository is a mock implementation of DrawFundingRepository
type MockDrawFundingRepository struct {
	mock.Mock
}

func (m *MockDrawFundingRepository) Add(ctx context.Context, drawID, amount int64) error {
	args := m.Called(ctx, drawID, amount)
	return args.Error(0)
}

func (m *MockDrawFundingRepository) GetTotal(ctx context.Context, drawID int64) (int64, error) {
	args := m.Called(ctx, drawID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAffiliateRepository is a mock implementation of AffiliateRepository
type MockAffiliateRepository struct {
	mock.Mock
}

func (m *MockAffiliateRepository) GetRecord(ctx context.Context, accountID int64) (*entities.AffiliateRecord, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AffiliateRecord), args.Error(1)
}

func (m *MockAffiliateRepository) UpsertRecord(ctx context.Context, record *entities.AffiliateRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAffiliateRepository) GetGateState(ctx context.Context) (*entities.GateState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GateState), args.Error(1)
}

func (m *MockAffiliateRepository) AddNomad(ctx context.Context, amount int64) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

func (m *MockAffiliateRepository) DeductNomad(ctx context.Context, amount int64) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*entities.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetOrCreate(ctx context.Context, id int64) (*entities.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) Credit(ctx context.Context, id, amount int64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockAccountRepository) Debit(ctx context.Context, id, amount int64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

// MockTransferRecordRepository is a mock implementation of TransferRecordRepository
type MockTransferRecordRepository struct {
	mock.Mock
}

func (m *MockTransferRecordRepository) Record(ctx context.Context, record *entities.TransferRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTransferRecordRepository) GetByAccount(ctx context.Context, accountID int64, limit int) ([]*entities.TransferRecord, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TransferRecord), args.Error(1)
}

// MockAssetHoldingRepository is a mock implementation of AssetHoldingRepository
type MockAssetHoldingRepository struct {
	mock.Mock
}

func (m *MockAssetHoldingRepository) Get(ctx context.Context, component, asset string) (int64, error) {
	args := m.Called(ctx, component, asset)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssetHoldingRepository) Add(ctx context.Context, component, asset string, amount int64) error {
	args := m.Called(ctx, component, asset, amount)
	return args.Error(0)
}

func (m *MockAssetHoldingRepository) Remove(ctx context.Context, component, asset string, amount int64) error {
	args := m.Called(ctx, component, asset, amount)
	return args.Error(0)
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*entities.LotterySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LotterySettings), args.Error(1)
}

func (m *MockSettingsRepository) Update(ctx context.Context, settings *entities.LotterySettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockRandomnessOracle is a mock implementation of RandomnessOracle
type MockRandomnessOracle struct {
	mock.Mock
}

func (m *MockRandomnessOracle) RequestRandomness(ctx context.Context, drawID int64, params entities.OracleParams) (string, error) {
	args := m.Called(ctx, drawID, params)
	return args.String(0), args.Error(1)
}

// MockSettlementService is a mock implementation of SettlementService
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) NotifyEntry(ctx context.Context, payerID, amount, drawID int64) error {
	args := m.Called(ctx, payerID, amount, drawID)
	return args.Error(0)
}

func (m *MockSettlementService) DispatchPayout(ctx context.Context, winnerID, amount, drawID int64) error {
	args := m.Called(ctx, winnerID, amount, drawID)
	return args.Error(0)
}

func (m *MockSettlementService) IsDrawFullyFunded(ctx context.Context, drawID int64) (bool, error) {
	args := m.Called(ctx, drawID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettlementService) SetBucketShares(ctx context.Context, operatorID int64, shares map[entities.BucketKey]int64) error {
	args := m.Called(ctx, operatorID, shares)
	return args.Error(0)
}

func (m *MockSettlementService) SetBucketDestination(ctx context.Context, operatorID int64, key entities.BucketKey, accountID int64) error {
	args := m.Called(ctx, operatorID, key, accountID)
	return args.Error(0)
}

func (m *MockSettlementService) WithdrawBucket(ctx context.Context, operatorID int64, key entities.BucketKey) (int64, error) {
	args := m.Called(ctx, operatorID, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettlementService) EmergencyWithdraw(ctx context.Context, operatorID, toAccountID, amount int64) error {
	args := m.Called(ctx, operatorID, toAccountID, amount)
	return args.Error(0)
}

func (m *MockSettlementService) RescueAsset(ctx context.Context, operatorID int64, asset string, toAccountID int64) (int64, error) {
	args := m.Called(ctx, operatorID, asset, toAccountID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAffiliateService is a mock implementation of AffiliateService
type MockAffiliateService struct {
	mock.Mock
}

func (m *MockAffiliateService) HandleEntry(ctx context.Context, playerID, affiliateID, amount, drawID int64) (bool, error) {
	args := m.Called(ctx, playerID, affiliateID, amount, drawID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAffiliateService) SetApproval(ctx context.Context, operatorID, accountID int64, approved bool) error {
	args := m.Called(ctx, operatorID, accountID, approved)
	return args.Error(0)
}

func (m *MockAffiliateService) SetBlacklist(ctx context.Context, operatorID, accountID int64, blacklisted bool) error {
	args := m.Called(ctx, operatorID, accountID, blacklisted)
	return args.Error(0)
}

func (m *MockAffiliateService) WithdrawNomad(ctx context.Context, operatorID, toAccountID int64) (int64, error) {
	args := m.Called(ctx, operatorID, toAccountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAffiliateService) RescueAsset(ctx context.Context, operatorID int64, asset string, toAccountID int64) (int64, error) {
	args := m.Called(ctx, operatorID, asset, toAccountID)
	return args.Get(0).(int64), args.Error(1)
}
