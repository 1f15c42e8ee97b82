package services

import (
	"context"
	"fmt"

	"lotto/domain/entities"
	"lotto/domain/events"
	"lotto/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// lifecycleService implements draw admission, closing and winner resolution
type lifecycleService struct {
	drawRepo       interfaces.DrawRepository
	entryRepo      interfaces.EntryRepository
	requestRepo    interfaces.RandomnessRequestRepository
	accountRepo    interfaces.AccountRepository
	transferRepo   interfaces.TransferRecordRepository
	settingsRepo   interfaces.SettingsRepository
	settlement     interfaces.SettlementService
	gate           interfaces.AffiliateService
	oracle         interfaces.RandomnessOracle
	eventPublisher interfaces.EventPublisher
}

// NewLifecycleService creates a new draw lifecycle service
func NewLifecycleService(
	drawRepo interfaces.DrawRepository,
	entryRepo interfaces.EntryRepository,
	requestRepo interfaces.RandomnessRequestRepository,
	accountRepo interfaces.AccountRepository,
	transferRepo interfaces.TransferRecordRepository,
	settingsRepo interfaces.SettingsRepository,
	settlement interfaces.SettlementService,
	gate interfaces.AffiliateService,
	oracle interfaces.RandomnessOracle,
	eventPublisher interfaces.EventPublisher,
) interfaces.LifecycleService {
	return &lifecycleService{
		drawRepo:       drawRepo,
		entryRepo:      entryRepo,
		requestRepo:    requestRepo,
		accountRepo:    accountRepo,
		transferRepo:   transferRepo,
		settingsRepo:   settingsRepo,
		settlement:     settlement,
		gate:           gate,
		oracle:         oracle,
		eventPublisher: eventPublisher,
	}
}

// Enter admits caller into the current open draw. The caller runs this inside
// a single unit of work; any error from any step rolls the whole entry back,
// including the token movements already made.
func (s *lifecycleService) Enter(ctx context.Context, callerID, affiliateID int64) (*interfaces.EnterResult, error) {
	if callerID <= 0 {
		return nil, fmt.Errorf("caller %d: %w", callerID, entities.ErrInvalidAccount)
	}
	if affiliateID < 0 {
		return nil, fmt.Errorf("affiliate %d: %w", affiliateID, entities.ErrInvalidAccount)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Paused {
		return nil, entities.ErrEntriesPaused
	}

	draw, err := s.drawRepo.GetCurrentOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current draw: %w", err)
	}
	if draw == nil {
		return nil, entities.ErrDrawNotOpen
	}

	count, err := s.entryRepo.CountForDraw(ctx, draw.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count entries for draw %d: %w", draw.ID, err)
	}
	if draw.IsFullAt(count) {
		return nil, fmt.Errorf("draw %d: %w", draw.ID, entities.ErrDrawFull)
	}

	entered, err := s.entryRepo.ExistsForDraw(ctx, draw.ID, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing entry: %w", err)
	}
	if entered {
		return nil, fmt.Errorf("account %d in draw %d: %w", callerID, draw.ID, entities.ErrAlreadyEntered)
	}

	price := draw.EntryPrice
	affiliateShare, remainder := entities.SplitEntryFee(price)

	account, err := s.accountRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", callerID, err)
	}
	if account == nil || !account.CanAfford(price) {
		return nil, fmt.Errorf("account %d needs %d: %w", callerID, price, entities.ErrInsufficientBalance)
	}

	// Move the fee out of the caller and into the two custody accounts
	// before the cross-component calls, mirroring transfer-then-notify.
	if err := s.accountRepo.Debit(ctx, callerID, price); err != nil {
		return nil, fmt.Errorf("failed to debit entry fee: %w", err)
	}
	if err := s.accountRepo.Credit(ctx, settings.GateAccountID, affiliateShare); err != nil {
		return nil, fmt.Errorf("failed to credit affiliate gate: %w", err)
	}
	if err := s.accountRepo.Credit(ctx, settings.SettlementAccountID, remainder); err != nil {
		return nil, fmt.Errorf("failed to credit settlement ledger: %w", err)
	}

	if err := s.transferRepo.Record(ctx, &entities.TransferRecord{
		FromAccountID:   callerID,
		ToAccountID:     settings.GateAccountID,
		Amount:          affiliateShare,
		TransactionType: entities.TransactionTypeReferralFee,
		Metadata:        map[string]any{"draw_id": draw.ID},
	}); err != nil {
		return nil, fmt.Errorf("failed to record referral fee transfer: %w", err)
	}
	if err := s.transferRepo.Record(ctx, &entities.TransferRecord{
		FromAccountID:   callerID,
		ToAccountID:     settings.SettlementAccountID,
		Amount:          remainder,
		TransactionType: entities.TransactionTypeEntryFee,
		Metadata:        map[string]any{"draw_id": draw.ID},
	}); err != nil {
		return nil, fmt.Errorf("failed to record entry fee transfer: %w", err)
	}

	entry := &entities.Entry{
		DrawID:     draw.ID,
		AccountID:  callerID,
		Position:   count,
		EntryPrice: price,
	}
	recordedAffiliate := int64(0)
	if affiliateID != 0 && affiliateID != callerID {
		recordedAffiliate = affiliateID
		entry.AffiliateAccountID = &recordedAffiliate
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	paid, err := s.gate.HandleEntry(ctx, callerID, affiliateID, affiliateShare, draw.ID)
	if err != nil {
		return nil, fmt.Errorf("affiliate gate rejected entry: %w", err)
	}
	if err := s.settlement.NotifyEntry(ctx, callerID, remainder, draw.ID); err != nil {
		return nil, fmt.Errorf("settlement ledger rejected entry: %w", err)
	}

	if err := s.eventPublisher.Publish(events.EntryAcceptedEvent{
		DrawID:             draw.ID,
		AccountID:          callerID,
		AffiliateAccountID: recordedAffiliate,
		Position:           entry.Position,
		EntryPrice:         price,
		AffiliateShare:     affiliateShare,
		SettlementShare:    remainder,
	}); err != nil {
		return nil, fmt.Errorf("failed to publish entry event: %w", err)
	}

	result := &interfaces.EnterResult{
		Draw:            draw,
		Position:        entry.Position,
		AffiliateShare:  affiliateShare,
		SettlementShare: remainder,
		AffiliatePaid:   paid,
	}

	// The entry that reaches capacity closes this draw and opens the
	// successor. The close runs first: the draws table allows only one open
	// draw at a time, so the successor cannot be inserted while the closing
	// draw still holds the open slot. A close that fails the funding check
	// fails the entry outright.
	if count+1 == draw.Capacity {
		requestID, err := s.closeAndRequestRandomness(ctx, draw, settings)
		if err != nil {
			return nil, err
		}

		next := draw.NextDraw(settings)
		if err := s.drawRepo.Create(ctx, next); err != nil {
			return nil, fmt.Errorf("failed to open draw %d: %w", next.ID, err)
		}
		if err := s.eventPublisher.Publish(events.DrawOpenedEvent{
			DrawID:      next.ID,
			Capacity:    next.Capacity,
			EntryPrice:  next.EntryPrice,
			PrizeAmount: next.PrizeAmount,
		}); err != nil {
			return nil, fmt.Errorf("failed to publish draw opened event: %w", err)
		}

		result.ClosedDraw = draw
		result.RequestID = requestID
		result.NextDraw = next
	}

	return result, nil
}

// closeAndRequestRandomness transitions a full, funded draw to in_progress
// and issues exactly one randomness request for it.
func (s *lifecycleService) closeAndRequestRandomness(ctx context.Context, draw *entities.Draw, settings *entities.LotterySettings) (string, error) {
	funded, err := s.settlement.IsDrawFullyFunded(ctx, draw.ID)
	if err != nil {
		return "", fmt.Errorf("failed funding check for draw %d: %w", draw.ID, err)
	}
	if !funded {
		return "", fmt.Errorf("draw %d: %w", draw.ID, entities.ErrDrawUnderfunded)
	}

	if err := draw.BeginResolution(); err != nil {
		return "", err
	}
	if err := s.drawRepo.Update(ctx, draw); err != nil {
		return "", fmt.Errorf("failed to close draw %d: %w", draw.ID, err)
	}

	params := settings.OracleParams()
	if err := params.Validate(); err != nil {
		return "", err
	}
	requestID, err := s.oracle.RequestRandomness(ctx, draw.ID, params)
	if err != nil {
		return "", fmt.Errorf("failed to request randomness for draw %d: %w", draw.ID, err)
	}

	if err := s.requestRepo.Create(ctx, &entities.RandomnessRequest{
		RequestID: requestID,
		DrawID:    draw.ID,
	}); err != nil {
		return "", fmt.Errorf("failed to store request correlation: %w", err)
	}

	if err := s.eventPublisher.Publish(events.RandomnessRequestedEvent{
		DrawID:    draw.ID,
		RequestID: requestID,
	}); err != nil {
		return "", fmt.Errorf("failed to publish randomness requested event: %w", err)
	}

	log.WithFields(log.Fields{
		"drawID":    draw.ID,
		"requestID": requestID,
	}).Info("Draw closed, randomness requested")

	return requestID, nil
}

// Fulfill resolves a draw from a delivered random value. The correlation is
// deleted in the same transaction, so a request id is consumed exactly once.
func (s *lifecycleService) Fulfill(ctx context.Context, requestID string, randomValues []uint64) (*interfaces.FulfillResult, error) {
	if len(randomValues) == 0 {
		return nil, fmt.Errorf("empty fulfillment: %w", entities.ErrInvalidOracleParams)
	}

	correlation, err := s.requestRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up request %s: %w", requestID, err)
	}
	if correlation == nil {
		return nil, fmt.Errorf("request %s: %w", requestID, entities.ErrUnknownRequest)
	}

	draw, err := s.drawRepo.GetByIDForUpdate(ctx, correlation.DrawID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock draw %d: %w", correlation.DrawID, err)
	}
	if draw == nil || draw.State != entities.DrawStateInProgress {
		return nil, fmt.Errorf("draw %d: %w", correlation.DrawID, entities.ErrInvalidDrawState)
	}

	if err := s.requestRepo.Delete(ctx, requestID); err != nil {
		return nil, fmt.Errorf("failed to consume request %s: %w", requestID, err)
	}

	entries, err := s.entryRepo.GetByDrawOrdered(ctx, draw.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for draw %d: %w", draw.ID, err)
	}
	// Unreachable given admission invariants, defended regardless.
	if len(entries) == 0 {
		return nil, fmt.Errorf("draw %d: %w", draw.ID, entities.ErrNoEntrants)
	}

	winningIndex := entities.WinnerIndex(randomValues[0], int64(len(entries)))
	winner := entries[winningIndex]

	if err := draw.Fulfill(winner.AccountID, winningIndex); err != nil {
		return nil, err
	}
	if err := s.drawRepo.Update(ctx, draw); err != nil {
		return nil, fmt.Errorf("failed to update fulfilled draw %d: %w", draw.ID, err)
	}

	if err := s.settlement.DispatchPayout(ctx, winner.AccountID, draw.PrizeAmount, draw.ID); err != nil {
		return nil, fmt.Errorf("failed to dispatch prize: %w", err)
	}

	if err := s.eventPublisher.Publish(events.DrawFulfilledEvent{
		DrawID:          draw.ID,
		RequestID:       requestID,
		RandomValue:     randomValues[0],
		WinningIndex:    winningIndex,
		WinnerAccountID: winner.AccountID,
	}); err != nil {
		return nil, fmt.Errorf("failed to publish fulfillment event: %w", err)
	}

	log.WithFields(log.Fields{
		"drawID":       draw.ID,
		"winningIndex": winningIndex,
		"winner":       winner.AccountID,
	}).Info("Draw fulfilled")

	return &interfaces.FulfillResult{
		Draw:            draw,
		RandomValue:     randomValues[0],
		WinningIndex:    winningIndex,
		WinnerAccountID: winner.AccountID,
		PrizeAmount:     draw.PrizeAmount,
	}, nil
}

// GetCurrentDraw returns the open draw
func (s *lifecycleService) GetCurrentDraw(ctx context.Context) (*entities.Draw, error) {
	draw, err := s.drawRepo.GetCurrentOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current draw: %w", err)
	}
	if draw == nil {
		return nil, entities.ErrDrawNotOpen
	}
	return draw, nil
}
