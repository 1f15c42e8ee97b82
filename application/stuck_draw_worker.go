package application

import (
	"context"
	"fmt"
	"time"

	"lotto/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// StuckDrawWorker periodically reports draws that closed but never received
// their randomness. It only surfaces them; recovery means the oracle
// redelivering the fulfillment, never a second request for the same draw.
type StuckDrawWorker struct {
	uowFactory       UnitOfWorkFactory
	thresholdSeconds int64
	checkInterval    time.Duration
	lastStuckCount   int64
}

// NewStuckDrawWorker creates a new stuck draw worker
func NewStuckDrawWorker(uowFactory UnitOfWorkFactory, thresholdSeconds int64) *StuckDrawWorker {
	return &StuckDrawWorker{
		uowFactory:       uowFactory,
		thresholdSeconds: thresholdSeconds,
		checkInterval:    10 * time.Minute,
	}
}

// Start begins the stuck draw worker
func (w *StuckDrawWorker) Start(ctx context.Context) func() {
	stopChan := make(chan struct{})

	go func() {
		log.Info("Stuck draw worker started")

		for {
			if err := w.checkOnce(ctx); err != nil {
				log.Errorf("Error checking for stuck draws: %v", err)
			}

			select {
			case <-ctx.Done():
				log.Info("Stuck draw worker shutting down (context cancelled)...")
				return
			case <-stopChan:
				log.Info("Stuck draw worker shutting down (stop requested)...")
				return
			case <-time.After(w.checkInterval):
			}
		}
	}()

	return func() {
		close(stopChan)
	}
}

// checkOnce reports all draws waiting on randomness past the threshold
func (w *StuckDrawWorker) checkOnce(ctx context.Context) error {
	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	stuck, err := uow.DrawRepository().GetStuckInProgress(ctx, w.thresholdSeconds)
	if err != nil {
		return fmt.Errorf("failed to get stuck draws: %w", err)
	}

	for _, draw := range stuck {
		log.WithFields(log.Fields{
			"drawId":   draw.ID,
			"closedAt": draw.ClosedAt,
		}).Warn("Draw still waiting on randomness fulfillment")
	}

	if metrics := observability.GetMetrics(); metrics != nil {
		metrics.UpdateStuckDraws(int64(len(stuck)) - w.lastStuckCount)
	}
	w.lastStuckCount = int64(len(stuck))

	return nil
}
