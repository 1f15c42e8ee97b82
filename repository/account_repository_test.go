package repository

import (
	"context"
	"testing"

	"lotto/domain/entities"
	"lotto/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_GetOrCreate(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	t.Run("unknown account returns nil", func(t *testing.T) {
		account, err := repo.GetByID(ctx, 100)
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("creates with zero balance", func(t *testing.T) {
		account, err := repo.GetOrCreate(ctx, 100)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, int64(100), account.ID)
		assert.Zero(t, account.Balance)
		assert.False(t, account.CreatedAt.IsZero())
	})

	t.Run("second call preserves the balance", func(t *testing.T) {
		require.NoError(t, repo.Credit(ctx, 100, 5000))

		account, err := repo.GetOrCreate(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), account.Balance)
	})
}

func TestAccountRepository_CreditDebit(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.GetOrCreate(ctx, 100)
	require.NoError(t, err)
	require.NoError(t, repo.Credit(ctx, 100, 1000))

	t.Run("credit of unknown account fails", func(t *testing.T) {
		err := repo.Credit(ctx, 999, 100)
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("overdraft is rejected and balance untouched", func(t *testing.T) {
		err := repo.Debit(ctx, 100, 1001)
		assert.ErrorIs(t, err, entities.ErrInsufficientBalance)

		account, err := repo.GetByID(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), account.Balance)
	})

	t.Run("debit of the full balance succeeds", func(t *testing.T) {
		require.NoError(t, repo.Debit(ctx, 100, 1000))

		account, err := repo.GetByID(ctx, 100)
		require.NoError(t, err)
		assert.Zero(t, account.Balance)
	})

	t.Run("debit of an empty account fails", func(t *testing.T) {
		err := repo.Debit(ctx, 100, 1)
		assert.ErrorIs(t, err, entities.ErrInsufficientBalance)
	})
}
