package application

import (
	"context"
	"fmt"

	"lotto/application/dto"
	"lotto/domain/interfaces"
	"lotto/domain/utils"
	"lotto/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// entryHandler admits players into the current draw, one request at a time
type entryHandler struct {
	uowFactory  UnitOfWorkFactory
	oracle      interfaces.RandomnessOracle
	operatorIDs []int64
	guard       utils.OpGuard
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(uowFactory UnitOfWorkFactory, oracle interfaces.RandomnessOracle, operatorIDs []int64) EntryHandler {
	return &entryHandler{
		uowFactory:  uowFactory,
		oracle:      oracle,
		operatorIDs: operatorIDs,
	}
}

// HandleEntryRequest processes a single entry request. The whole admission,
// fee split, referral routing and potential draw close run in one unit of
// work; if any step fails the transfers are rolled back with it.
func (h *entryHandler) HandleEntryRequest(ctx context.Context, request dto.EntryRequestDTO) error {
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

	result, err := svc.lifecycle.Enter(ctx, request.AccountID, request.AffiliateAccountID)
	if err != nil {
		return fmt.Errorf("failed to enter draw: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if metrics := observability.GetMetrics(); metrics != nil {
		metrics.RecordEntryAccepted(result.Draw.ID)
	}

	fields := log.Fields{
		"drawId":        result.Draw.ID,
		"accountId":     request.AccountID,
		"position":      result.Position,
		"affiliatePaid": result.AffiliatePaid,
	}
	if result.ClosedDraw != nil {
		fields["closedDrawId"] = result.ClosedDraw.ID
		fields["requestId"] = result.RequestID
		fields["nextDrawId"] = result.NextDraw.ID
	}
	log.WithFields(fields).Info("Entry accepted")

	return nil
}
