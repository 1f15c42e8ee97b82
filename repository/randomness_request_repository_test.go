package repository

import (
	"context"
	"testing"

	"lotto/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomnessRequestRepository_Lifecycle(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRandomnessRequestRepository(testDB.DB)
	ctx := context.Background()

	request := testutil.CreateTestRandomnessRequest("req-abc-123", 1)

	t.Run("create and look up", func(t *testing.T) {
		err := repo.Create(ctx, request)
		require.NoError(t, err)
		assert.False(t, request.CreatedAt.IsZero())

		stored, err := repo.GetByRequestID(ctx, "req-abc-123")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, int64(1), stored.DrawID)
	})

	t.Run("a draw can hold only one pending request", func(t *testing.T) {
		second := testutil.CreateTestRandomnessRequest("req-def-456", 1)

		err := repo.Create(ctx, second)
		assert.Error(t, err)
	})

	t.Run("unknown request id returns nil", func(t *testing.T) {
		stored, err := repo.GetByRequestID(ctx, "req-unknown")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("delete consumes the correlation exactly once", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "req-abc-123"))

		stored, err := repo.GetByRequestID(ctx, "req-abc-123")
		require.NoError(t, err)
		assert.Nil(t, stored)

		err = repo.Delete(ctx, "req-abc-123")
		assert.ErrorContains(t, err, "not found")
	})
}
