package repository

import (
	"context"
	"testing"

	"lotto/domain/entities"
	"lotto/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareBucketRepository_Seeded(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewShareBucketRepository(testDB.DB)
	ctx := context.Background()

	t.Run("migration seeds all four buckets", func(t *testing.T) {
		buckets, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, buckets, 4)

		byKey := make(map[entities.BucketKey]*entities.ShareBucket)
		for _, bucket := range buckets {
			byKey[bucket.Key] = bucket
		}

		assert.Equal(t, int64(5000), byKey[entities.BucketOperations].BasisPoints)
		assert.Equal(t, int64(2000), byKey[entities.BucketInfrastructure].BasisPoints)
		assert.Equal(t, int64(1000), byKey[entities.BucketRandomness].BasisPoints)
		assert.Equal(t, int64(1000), byKey[entities.BucketOverhead].BasisPoints)

		for _, bucket := range buckets {
			assert.Zero(t, bucket.Balance)
			assert.Nil(t, bucket.DestinationAccountID)
		}
	})

	t.Run("unknown key returns nil", func(t *testing.T) {
		bucket, err := repo.GetByKey(ctx, entities.BucketKey("slush"))
		require.NoError(t, err)
		assert.Nil(t, bucket)
	})
}

func TestShareBucketRepository_AccrueDeduct(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewShareBucketRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Accrue(ctx, entities.BucketOperations, 462))

	t.Run("accrual is cumulative", func(t *testing.T) {
		require.NoError(t, repo.Accrue(ctx, entities.BucketOperations, 462))

		bucket, err := repo.GetByKey(ctx, entities.BucketOperations)
		require.NoError(t, err)
		assert.Equal(t, int64(924), bucket.Balance)
	})

	t.Run("deduct beyond balance is rejected", func(t *testing.T) {
		err := repo.Deduct(ctx, entities.BucketOperations, 925)
		assert.ErrorIs(t, err, entities.ErrInsufficientBucket)

		bucket, err := repo.GetByKey(ctx, entities.BucketOperations)
		require.NoError(t, err)
		assert.Equal(t, int64(924), bucket.Balance)
	})

	t.Run("deduct of the full balance succeeds", func(t *testing.T) {
		require.NoError(t, repo.Deduct(ctx, entities.BucketOperations, 924))

		bucket, err := repo.GetByKey(ctx, entities.BucketOperations)
		require.NoError(t, err)
		assert.Zero(t, bucket.Balance)
	})

	t.Run("accrue to unknown bucket fails", func(t *testing.T) {
		err := repo.Accrue(ctx, entities.BucketKey("slush"), 100)
		assert.ErrorContains(t, err, "not found")
	})
}

func TestShareBucketRepository_ReplaceShares(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewShareBucketRepository(testDB.DB)
	ctx := context.Background()

	t.Run("rewrites every bucket share", func(t *testing.T) {
		err := repo.ReplaceShares(ctx, map[entities.BucketKey]int64{
			entities.BucketOperations:     4000,
			entities.BucketInfrastructure: 3000,
			entities.BucketRandomness:     1500,
			entities.BucketOverhead:       500,
		})
		require.NoError(t, err)

		bucket, err := repo.GetByKey(ctx, entities.BucketInfrastructure)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), bucket.BasisPoints)
	})

	t.Run("unknown key fails", func(t *testing.T) {
		err := repo.ReplaceShares(ctx, map[entities.BucketKey]int64{
			entities.BucketKey("slush"): 1000,
		})
		assert.ErrorContains(t, err, "not found")
	})
}

func TestShareBucketRepository_SetDestination(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewShareBucketRepository(testDB.DB)
	accountRepo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	destination, err := accountRepo.GetOrCreate(ctx, 777)
	require.NoError(t, err)

	require.NoError(t, repo.SetDestination(ctx, entities.BucketOverhead, destination.ID))

	bucket, err := repo.GetByKey(ctx, entities.BucketOverhead)
	require.NoError(t, err)
	require.NotNil(t, bucket.DestinationAccountID)
	assert.Equal(t, int64(777), *bucket.DestinationAccountID)
	assert.True(t, bucket.HasDestination())
}
