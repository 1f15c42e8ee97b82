package services

import (
	"context"
	"testing"

	"lotto/domain/entities"
	"lotto/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// createTestBuckets builds the fixed bucket set with the default split
func createTestBuckets() []*entities.ShareBucket {
	return []*entities.ShareBucket{
		{Key: entities.BucketOperations, BasisPoints: 5000},
		{Key: entities.BucketInfrastructure, BasisPoints: 2000},
		{Key: entities.BucketRandomness, BasisPoints: 1000},
		{Key: entities.BucketOverhead, BasisPoints: 1000},
	}
}

func TestSettlementService_NotifyEntry(t *testing.T) {
	t.Parallel()

	t.Run("zero amount rejected", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		err := service.NotifyEntry(ctx, TestPlayerID, 0, 1)

		assert.ErrorIs(t, err, entities.ErrZeroAmount)
		fundingRepo.AssertNotCalled(t, "Add")
	})

	t.Run("accrues each bucket's share", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		amount := int64(925)
		fundingRepo.On("Add", mock.Anything, int64(1), amount).Return(nil)
		bucketRepo.On("GetAll", mock.Anything).Return(createTestBuckets(), nil)

		// 925 split at 5000/2000/1000/1000 bps, integer division
		bucketRepo.On("Accrue", mock.Anything, entities.BucketOperations, int64(462)).Return(nil)
		bucketRepo.On("Accrue", mock.Anything, entities.BucketInfrastructure, int64(185)).Return(nil)
		bucketRepo.On("Accrue", mock.Anything, entities.BucketRandomness, int64(92)).Return(nil)
		bucketRepo.On("Accrue", mock.Anything, entities.BucketOverhead, int64(92)).Return(nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		err := service.NotifyEntry(ctx, TestPlayerID, amount, 1)

		assert.NoError(t, err)
		fundingRepo.AssertExpectations(t)
		bucketRepo.AssertExpectations(t)
	})

	t.Run("skips zero shares", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		// An amount small enough that the low buckets round to zero
		amount := int64(9)
		fundingRepo.On("Add", mock.Anything, int64(1), amount).Return(nil)
		bucketRepo.On("GetAll", mock.Anything).Return(createTestBuckets(), nil)
		bucketRepo.On("Accrue", mock.Anything, entities.BucketOperations, int64(4)).Return(nil)
		bucketRepo.On("Accrue", mock.Anything, entities.BucketInfrastructure, int64(1)).Return(nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		err := service.NotifyEntry(ctx, TestPlayerID, amount, 1)

		assert.NoError(t, err)
		bucketRepo.AssertExpectations(t)
		bucketRepo.AssertNotCalled(t, "Accrue", mock.Anything, entities.BucketRandomness, mock.Anything)
		bucketRepo.AssertNotCalled(t, "Accrue", mock.Anything, entities.BucketOverhead, mock.Anything)
	})
}

func TestSettlementService_DispatchPayout(t *testing.T) {
	t.Parallel()

	t.Run("insufficient custody", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		settingsRepo.On("Get", mock.Anything).Return(createTestSettings(), nil)
		accountRepo.On("GetByID", mock.Anything, TestSettlementID).Return(createTestAccount(TestSettlementID, TestPrizeAmount-1), nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		err := service.DispatchPayout(ctx, TestWinnerID, TestPrizeAmount, 1)

		assert.ErrorIs(t, err, entities.ErrInsufficientCustody)
		accountRepo.AssertNotCalled(t, "Debit")
		accountRepo.AssertNotCalled(t, "Credit")
	})

	t.Run("pays winner from custody", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		settingsRepo.On("Get", mock.Anything).Return(createTestSettings(), nil)
		accountRepo.On("GetByID", mock.Anything, TestSettlementID).Return(createTestAccount(TestSettlementID, 10000), nil)
		accountRepo.On("Debit", mock.Anything, TestSettlementID, TestPrizeAmount).Return(nil)
		accountRepo.On("GetOrCreate", mock.Anything, TestWinnerID).Return(createTestAccount(TestWinnerID, 0), nil)
		accountRepo.On("Credit", mock.Anything, TestWinnerID, TestPrizeAmount).Return(nil)

		transferRepo.On("Record", mock.Anything, mock.MatchedBy(func(r *entities.TransferRecord) bool {
			return r.FromAccountID == TestSettlementID &&
				r.ToAccountID == TestWinnerID &&
				r.Amount == TestPrizeAmount &&
				r.TransactionType == entities.TransactionTypePrizePayout
		})).Return(nil)

		eventPublisher.On("Publish", mock.MatchedBy(func(e events.Event) bool {
			p, ok := e.(events.PrizePaidEvent)
			return ok && p.DrawID == 1 && p.WinnerAccountID == TestWinnerID && p.Amount == TestPrizeAmount
		})).Return(nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		err := service.DispatchPayout(ctx, TestWinnerID, TestPrizeAmount, 1)

		assert.NoError(t, err)
		accountRepo.AssertExpectations(t)
		transferRepo.AssertExpectations(t)
		eventPublisher.AssertExpectations(t)
	})
}

func TestSettlementService_IsDrawFullyFunded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int64
		want  bool
	}{
		{"below requirement", TestRequiredFunding - 1, false},
		{"exactly at requirement", TestRequiredFunding, true},
		{"above requirement", TestRequiredFunding + 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

			settingsRepo.On("Get", mock.Anything).Return(createTestSettings(), nil)
			fundingRepo.On("GetTotal", mock.Anything, int64(1)).Return(tt.total, nil)

			service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

			funded, err := service.IsDrawFullyFunded(ctx, 1)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, funded)
		})
	}
}

func TestSettlementService_SetBucketShares(t *testing.T) {
	t.Parallel()

	t.Run("unauthorized caller", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		err := service.SetBucketShares(ctx, 12345, map[entities.BucketKey]int64{})

		assert.ErrorIs(t, err, entities.ErrUnauthorized)
		bucketRepo.AssertNotCalled(t, "ReplaceShares")
	})

	t.Run("broken sum rejected before any write", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		settingsRepo.On("Get", mock.Anything).Return(createTestSettings(), nil)

		// 5000+2000+1000+500 + prize 1000 = 9500, not 10000
		shares := map[entities.BucketKey]int64{
			entities.BucketOperations:     5000,
			entities.BucketInfrastructure: 2000,
			entities.BucketRandomness:     1000,
			entities.BucketOverhead:       500,
		}

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		err := service.SetBucketShares(ctx, TestOperatorID, shares)

		assert.ErrorIs(t, err, entities.ErrShareSumMismatch)
		bucketRepo.AssertNotCalled(t, "ReplaceShares")
	})

	t.Run("valid replacement", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		settingsRepo.On("Get", mock.Anything).Return(createTestSettings(), nil)

		shares := map[entities.BucketKey]int64{
			entities.BucketOperations:     4000,
			entities.BucketInfrastructure: 3000,
			entities.BucketRandomness:     1500,
			entities.BucketOverhead:       500,
		}
		bucketRepo.On("ReplaceShares", mock.Anything, shares).Return(nil)
		eventPublisher.On("Publish", mock.AnythingOfType("events.BucketSharesChangedEvent")).Return(nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		err := service.SetBucketShares(ctx, TestOperatorID, shares)

		assert.NoError(t, err)
		bucketRepo.AssertExpectations(t)
		eventPublisher.AssertExpectations(t)
	})
}

func TestSettlementService_WithdrawBucket(t *testing.T) {
	t.Parallel()

	t.Run("destination unset", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		bucketRepo.On("GetByKey", mock.Anything, entities.BucketOperations).Return(&entities.ShareBucket{
			Key:         entities.BucketOperations,
			BasisPoints: 5000,
			Balance:     400,
		}, nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		amount, err := service.WithdrawBucket(ctx, TestOperatorID, entities.BucketOperations)

		assert.ErrorIs(t, err, entities.ErrDestinationUnset)
		assert.Zero(t, amount)
	})

	t.Run("nothing accrued", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		destination := int64(777)
		bucketRepo.On("GetByKey", mock.Anything, entities.BucketOperations).Return(&entities.ShareBucket{
			Key:                  entities.BucketOperations,
			BasisPoints:          5000,
			Balance:              0,
			DestinationAccountID: &destination,
		}, nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		amount, err := service.WithdrawBucket(ctx, TestOperatorID, entities.BucketOperations)

		assert.ErrorIs(t, err, entities.ErrInsufficientBucket)
		assert.Zero(t, amount)
	})

	t.Run("full balance paid to destination", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		destination := int64(777)
		balance := int64(462)
		bucketRepo.On("GetByKey", mock.Anything, entities.BucketOperations).Return(&entities.ShareBucket{
			Key:                  entities.BucketOperations,
			BasisPoints:          5000,
			Balance:              balance,
			DestinationAccountID: &destination,
		}, nil)
		settingsRepo.On("Get", mock.Anything).Return(createTestSettings(), nil)
		accountRepo.On("GetByID", mock.Anything, TestSettlementID).Return(createTestAccount(TestSettlementID, 10000), nil)
		bucketRepo.On("Deduct", mock.Anything, entities.BucketOperations, balance).Return(nil)
		accountRepo.On("Debit", mock.Anything, TestSettlementID, balance).Return(nil)
		accountRepo.On("Credit", mock.Anything, destination, balance).Return(nil)
		transferRepo.On("Record", mock.Anything, mock.MatchedBy(func(r *entities.TransferRecord) bool {
			return r.TransactionType == entities.TransactionTypeBucketWithdrawal && r.Amount == balance
		})).Return(nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		amount, err := service.WithdrawBucket(ctx, TestOperatorID, entities.BucketOperations)

		assert.NoError(t, err)
		assert.Equal(t, balance, amount)
		bucketRepo.AssertExpectations(t)
		accountRepo.AssertExpectations(t)
		transferRepo.AssertExpectations(t)
	})
}

func TestSettlementService_EmergencyWithdraw(t *testing.T) {
	t.Parallel()

	t.Run("unauthorized caller", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		err := service.EmergencyWithdraw(ctx, 12345, 777, 100)

		assert.ErrorIs(t, err, entities.ErrUnauthorized)
	})

	t.Run("exceeds custody", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		settingsRepo.On("Get", mock.Anything).Return(createTestSettings(), nil)
		accountRepo.On("GetByID", mock.Anything, TestSettlementID).Return(createTestAccount(TestSettlementID, 50), nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		err := service.EmergencyWithdraw(ctx, TestOperatorID, 777, 100)

		assert.ErrorIs(t, err, entities.ErrInsufficientCustody)
		accountRepo.AssertNotCalled(t, "Debit")
	})

	t.Run("moves funds and records the transfer", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		settingsRepo.On("Get", mock.Anything).Return(createTestSettings(), nil)
		accountRepo.On("GetByID", mock.Anything, TestSettlementID).Return(createTestAccount(TestSettlementID, 5000), nil)
		accountRepo.On("Debit", mock.Anything, TestSettlementID, int64(100)).Return(nil)
		accountRepo.On("GetOrCreate", mock.Anything, int64(777)).Return(createTestAccount(777, 0), nil)
		accountRepo.On("Credit", mock.Anything, int64(777), int64(100)).Return(nil)
		transferRepo.On("Record", mock.Anything, mock.MatchedBy(func(r *entities.TransferRecord) bool {
			return r.TransactionType == entities.TransactionTypeEmergencyWithdrawal
		})).Return(nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		err := service.EmergencyWithdraw(ctx, TestOperatorID, 777, 100)

		assert.NoError(t, err)
		accountRepo.AssertExpectations(t)
		transferRepo.AssertExpectations(t)
	})
}

func TestSettlementService_RescueAsset(t *testing.T) {
	t.Parallel()

	t.Run("native asset refused", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		amount, err := service.RescueAsset(ctx, TestOperatorID, entities.NativeAsset, 777)

		assert.ErrorIs(t, err, entities.ErrNativeAssetRescue)
		assert.Zero(t, amount)
		holdingRepo.AssertNotCalled(t, "Get")
	})

	t.Run("nothing held", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		holdingRepo.On("Get", mock.Anything, entities.ComponentSettlement, "USDT").Return(int64(0), nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		amount, err := service.RescueAsset(ctx, TestOperatorID, "USDT", 777)

		assert.ErrorIs(t, err, entities.ErrNothingToRescue)
		assert.Zero(t, amount)
	})

	t.Run("full holding rescued", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher := setupSettlementServiceMocks()

		holdingRepo.On("Get", mock.Anything, entities.ComponentSettlement, "USDT").Return(int64(250), nil)
		holdingRepo.On("Remove", mock.Anything, entities.ComponentSettlement, "USDT", int64(250)).Return(nil)
		transferRepo.On("Record", mock.Anything, mock.MatchedBy(func(r *entities.TransferRecord) bool {
			return r.TransactionType == entities.TransactionTypeAssetRescue && r.Amount == 250
		})).Return(nil)

		service := NewSettlementService(bucketRepo, fundingRepo, accountRepo, transferRepo, holdingRepo, settingsRepo, eventPublisher, testOperatorIDs)

		amount, err := service.RescueAsset(ctx, TestOperatorID, "USDT", 777)

		assert.NoError(t, err)
		assert.Equal(t, int64(250), amount)
		holdingRepo.AssertExpectations(t)
		transferRepo.AssertExpectations(t)
	})
}
