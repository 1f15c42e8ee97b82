package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraw_BeginResolution(t *testing.T) {
	t.Parallel()

	t.Run("open draw closes", func(t *testing.T) {
		draw := &Draw{ID: 1, State: DrawStateOpen}

		err := draw.BeginResolution()

		assert.NoError(t, err)
		assert.Equal(t, DrawStateInProgress, draw.State)
		assert.NotNil(t, draw.ClosedAt)
	})

	t.Run("transitions only move forward", func(t *testing.T) {
		for _, state := range []DrawState{DrawStateInProgress, DrawStateFulfilled} {
			draw := &Draw{ID: 1, State: state}

			err := draw.BeginResolution()

			assert.ErrorIs(t, err, ErrInvalidDrawState)
			assert.Equal(t, state, draw.State)
		}
	})
}

func TestDraw_Fulfill(t *testing.T) {
	t.Parallel()

	t.Run("in progress draw resolves", func(t *testing.T) {
		draw := &Draw{ID: 1, State: DrawStateInProgress}

		err := draw.Fulfill(42, 3)

		assert.NoError(t, err)
		assert.Equal(t, DrawStateFulfilled, draw.State)
		assert.Equal(t, int64(42), *draw.WinnerAccountID)
		assert.Equal(t, int64(3), *draw.WinningIndex)
		assert.NotNil(t, draw.FulfilledAt)
	})

	t.Run("open draw cannot resolve", func(t *testing.T) {
		draw := &Draw{ID: 1, State: DrawStateOpen}

		err := draw.Fulfill(42, 3)

		assert.ErrorIs(t, err, ErrInvalidDrawState)
		assert.Nil(t, draw.WinnerAccountID)
	})

	t.Run("fulfilled draw cannot resolve twice", func(t *testing.T) {
		draw := &Draw{ID: 1, State: DrawStateInProgress}
		assert.NoError(t, draw.Fulfill(42, 3))

		err := draw.Fulfill(99, 0)

		assert.ErrorIs(t, err, ErrInvalidDrawState)
		assert.Equal(t, int64(42), *draw.WinnerAccountID)
	})
}

func TestDraw_IsFullAt(t *testing.T) {
	t.Parallel()

	draw := &Draw{ID: 1, State: DrawStateOpen, Capacity: 10}

	assert.False(t, draw.IsFullAt(0))
	assert.False(t, draw.IsFullAt(9))
	assert.True(t, draw.IsFullAt(10))
	assert.True(t, draw.IsFullAt(11))
}

func TestDraw_NextDraw(t *testing.T) {
	t.Parallel()

	// The successor captures current settings, not the parent's values
	draw := &Draw{ID: 5, State: DrawStateOpen, Capacity: 10, EntryPrice: 1000, PrizeAmount: 900}
	settings := &LotterySettings{DrawCapacity: 20, EntryPrice: 2000, PrizeAmount: 1800}

	next := draw.NextDraw(settings)

	assert.Equal(t, int64(6), next.ID)
	assert.Equal(t, DrawStateOpen, next.State)
	assert.Equal(t, int64(20), next.Capacity)
	assert.Equal(t, int64(2000), next.EntryPrice)
	assert.Equal(t, int64(1800), next.PrizeAmount)
	assert.False(t, next.CreatedAt.IsZero())
	assert.Nil(t, next.ClosedAt)
}
