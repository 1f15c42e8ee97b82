package entities

import (
	"fmt"
	"time"
)

// DrawState represents the lifecycle state of a draw
type DrawState string

const (
	// DrawStateOpen means the draw is accepting entries
	DrawStateOpen DrawState = "open"
	// DrawStateInProgress means the draw is full, funded, and waiting on randomness
	DrawStateInProgress DrawState = "in_progress"
	// DrawStateFulfilled means the winner has been resolved and paid
	DrawStateFulfilled DrawState = "fulfilled"
)

// Draw represents a single numbered lottery draw.
// Capacity, entry price and prize amount are captured from settings at
// creation so later configuration changes never affect a running draw.
type Draw struct {
	ID              int64      `db:"id"`
	State           DrawState  `db:"state"`
	Capacity        int64      `db:"capacity"`
	EntryPrice      int64      `db:"entry_price"`
	PrizeAmount     int64      `db:"prize_amount"`
	WinnerAccountID *int64     `db:"winner_account_id"` // NULL until fulfilled
	WinningIndex    *int64     `db:"winning_index"`     // NULL until fulfilled
	CreatedAt       time.Time  `db:"created_at"`
	ClosedAt        *time.Time `db:"closed_at"`
	FulfilledAt     *time.Time `db:"fulfilled_at"`
}

// IsOpen returns true if the draw is still accepting entries
func (d *Draw) IsOpen() bool {
	return d.State == DrawStateOpen
}

// IsFulfilled returns true if the winner has been resolved
func (d *Draw) IsFulfilled() bool {
	return d.State == DrawStateFulfilled
}

// IsFullAt returns true if entryCount has reached the captured capacity
func (d *Draw) IsFullAt(entryCount int64) bool {
	return entryCount >= d.Capacity
}

// BeginResolution transitions the draw from open to in_progress.
// Transitions only move forward; anything else is a state error.
func (d *Draw) BeginResolution() error {
	if d.State != DrawStateOpen {
		return fmt.Errorf("draw %d is %s, expected %s: %w", d.ID, d.State, DrawStateOpen, ErrInvalidDrawState)
	}
	d.State = DrawStateInProgress
	now := time.Now().UTC()
	d.ClosedAt = &now
	return nil
}

// Fulfill transitions the draw from in_progress to fulfilled and records
// the winning entry.
func (d *Draw) Fulfill(winnerAccountID, winningIndex int64) error {
	if d.State != DrawStateInProgress {
		return fmt.Errorf("draw %d is %s, expected %s: %w", d.ID, d.State, DrawStateInProgress, ErrInvalidDrawState)
	}
	d.State = DrawStateFulfilled
	d.WinnerAccountID = &winnerAccountID
	d.WinningIndex = &winningIndex
	now := time.Now().UTC()
	d.FulfilledAt = &now
	return nil
}

// NextDraw builds the successor draw, capturing the supplied settings
func (d *Draw) NextDraw(settings *LotterySettings) *Draw {
	return &Draw{
		ID:          d.ID + 1,
		State:       DrawStateOpen,
		Capacity:    settings.DrawCapacity,
		EntryPrice:  settings.EntryPrice,
		PrizeAmount: settings.PrizeAmount,
		CreatedAt:   time.Now().UTC(),
	}
}
