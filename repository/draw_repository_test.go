package repository

import (
	"context"
	"testing"
	"time"

	"lotto/domain/entities"
	"lotto/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawRepository_GetCurrentOpen(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDrawRepository(testDB.DB)
	ctx := context.Background()

	t.Run("returns the seeded open draw", func(t *testing.T) {
		draw, err := repo.GetCurrentOpen(ctx)
		require.NoError(t, err)
		require.NotNil(t, draw)

		assert.Equal(t, int64(1), draw.ID)
		assert.Equal(t, entities.DrawStateOpen, draw.State)
		assert.Equal(t, int64(10), draw.Capacity)
		assert.Equal(t, int64(1000), draw.EntryPrice)
		assert.Equal(t, int64(900), draw.PrizeAmount)
		assert.Nil(t, draw.WinnerAccountID)
		assert.Nil(t, draw.ClosedAt)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		draw, err := repo.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, draw)
	})

	t.Run("for update returns the same draw", func(t *testing.T) {
		draw, err := repo.GetByIDForUpdate(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, draw)
		assert.Equal(t, int64(1), draw.ID)
	})
}

func TestDrawRepository_SingleOpenDraw(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDrawRepository(testDB.DB)
	ctx := context.Background()

	// Draw 1 is seeded open, so a second open draw must be rejected by the
	// partial unique index
	err := repo.Create(ctx, testutil.CreateTestDraw(2, entities.DrawStateOpen))
	assert.Error(t, err)

	draw, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, draw)
}

func TestDrawRepository_StateTransitions(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDrawRepository(testDB.DB)
	ctx := context.Background()

	draw, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, draw)

	t.Run("close persists state and timestamp", func(t *testing.T) {
		require.NoError(t, draw.BeginResolution())
		require.NoError(t, repo.Update(ctx, draw))

		reloaded, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, entities.DrawStateInProgress, reloaded.State)
		require.NotNil(t, reloaded.ClosedAt)
		assert.Nil(t, reloaded.FulfilledAt)
	})

	t.Run("successor can open once the current draw closed", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, testutil.CreateTestDraw(2, entities.DrawStateOpen)))

		open, err := repo.GetCurrentOpen(ctx)
		require.NoError(t, err)
		require.NotNil(t, open)
		assert.Equal(t, int64(2), open.ID)
	})

	t.Run("fulfill persists winner fields", func(t *testing.T) {
		require.NoError(t, draw.Fulfill(1, 7))
		require.NoError(t, repo.Update(ctx, draw))

		reloaded, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, entities.DrawStateFulfilled, reloaded.State)
		require.NotNil(t, reloaded.WinnerAccountID)
		assert.Equal(t, int64(1), *reloaded.WinnerAccountID)
		require.NotNil(t, reloaded.WinningIndex)
		assert.Equal(t, int64(7), *reloaded.WinningIndex)
		require.NotNil(t, reloaded.FulfilledAt)
	})

	t.Run("update of unknown draw fails", func(t *testing.T) {
		missing := testutil.CreateTestDraw(999, entities.DrawStateFulfilled)
		err := repo.Update(ctx, missing)
		assert.ErrorContains(t, err, "not found")
	})
}

func TestDrawRepository_GetStuckInProgress(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDrawRepository(testDB.DB)
	ctx := context.Background()

	draw, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, draw.BeginResolution())

	// Backdate the close so the draw counts as stuck
	staleClose := time.Now().UTC().Add(-2 * time.Hour)
	draw.ClosedAt = &staleClose
	require.NoError(t, repo.Update(ctx, draw))

	t.Run("stale draw is reported", func(t *testing.T) {
		stuck, err := repo.GetStuckInProgress(ctx, 3600)
		require.NoError(t, err)
		require.Len(t, stuck, 1)
		assert.Equal(t, int64(1), stuck[0].ID)
	})

	t.Run("recent close is not reported", func(t *testing.T) {
		stuck, err := repo.GetStuckInProgress(ctx, 3*60*60)
		require.NoError(t, err)
		assert.Empty(t, stuck)
	})
}
