package application

import (
	"context"
	"fmt"

	"lotto/domain/interfaces"
	"lotto/domain/utils"
	"lotto/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// fulfillmentHandler resolves draws when the oracle answers
type fulfillmentHandler struct {
	uowFactory  UnitOfWorkFactory
	oracle      interfaces.RandomnessOracle
	operatorIDs []int64
	guard       utils.OpGuard
}

// NewFulfillmentHandler creates a new fulfillment handler
func NewFulfillmentHandler(uowFactory UnitOfWorkFactory, oracle interfaces.RandomnessOracle, operatorIDs []int64) FulfillmentHandler {
	return &fulfillmentHandler{
		uowFactory:  uowFactory,
		oracle:      oracle,
		operatorIDs: operatorIDs,
	}
}

// HandleFulfillment consumes a request correlation and pays the winner.
// Winner resolution and prize payout share one transaction; a payout failure
// leaves the draw unresolved and the correlation intact for redelivery.
func (h *fulfillmentHandler) HandleFulfillment(ctx context.Context, requestID string, randomValues []uint64) error {
	if err := h.guard.Acquire(); err != nil {
		return err
	}
	defer h.guard.Release()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	svc := buildServices(uow, h.oracle, h.operatorIDs)

	result, err := svc.lifecycle.Fulfill(ctx, requestID, randomValues)
	if err != nil {
		return fmt.Errorf("failed to fulfill draw: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if metrics := observability.GetMetrics(); metrics != nil {
		metrics.RecordDrawFulfilled(result.Draw.ID)
		metrics.RecordPayout(observability.PayoutTypePrize)
	}

	log.WithFields(log.Fields{
		"drawId":       result.Draw.ID,
		"requestId":    requestID,
		"winningIndex": result.WinningIndex,
		"winner":       result.WinnerAccountID,
		"prize":        result.PrizeAmount,
	}).Info("Draw fulfilled")

	return nil
}
