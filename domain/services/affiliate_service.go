package services

import (
	"context"
	"fmt"
	"time"

	"lotto/domain/entities"
	"lotto/domain/events"
	"lotto/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// affiliateService routes referral shares and owns the payout policy flags
type affiliateService struct {
	affiliateRepo  interfaces.AffiliateRepository
	accountRepo    interfaces.AccountRepository
	transferRepo   interfaces.TransferRecordRepository
	holdingRepo    interfaces.AssetHoldingRepository
	settingsRepo   interfaces.SettingsRepository
	eventPublisher interfaces.EventPublisher
	operatorIDs    []int64
}

// NewAffiliateService creates a new affiliate gate service
func NewAffiliateService(
	affiliateRepo interfaces.AffiliateRepository,
	accountRepo interfaces.AccountRepository,
	transferRepo interfaces.TransferRecordRepository,
	holdingRepo interfaces.AssetHoldingRepository,
	settingsRepo interfaces.SettingsRepository,
	eventPublisher interfaces.EventPublisher,
	operatorIDs []int64,
) interfaces.AffiliateService {
	return &affiliateService{
		affiliateRepo:  affiliateRepo,
		accountRepo:    accountRepo,
		transferRepo:   transferRepo,
		holdingRepo:    holdingRepo,
		settingsRepo:   settingsRepo,
		eventPublisher: eventPublisher,
		operatorIDs:    operatorIDs,
	}
}

// HandleEntry routes the referral-sized portion of an entry fee: paid to an
// approved, non-blacklisted, non-self referrer, otherwise retained as nomad
// funds. The portion is already in gate custody when this runs.
func (s *affiliateService) HandleEntry(ctx context.Context, playerID, affiliateID, amount, drawID int64) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("referral share of %d: %w", amount, entities.ErrZeroAmount)
	}

	var record *entities.AffiliateRecord
	if affiliateID > 0 {
		var err error
		record, err = s.affiliateRepo.GetRecord(ctx, affiliateID)
		if err != nil {
			return false, fmt.Errorf("failed to get affiliate record %d: %w", affiliateID, err)
		}
	}

	payable, reason := entities.ClassifyReferral(playerID, affiliateID, record)
	if !payable {
		return false, s.retainNomad(ctx, playerID, amount, drawID, reason)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load settings: %w", err)
	}

	if err := s.accountRepo.Debit(ctx, settings.GateAccountID, amount); err != nil {
		return false, fmt.Errorf("failed to debit gate custody: %w", err)
	}
	if _, err := s.accountRepo.GetOrCreate(ctx, affiliateID); err != nil {
		return false, fmt.Errorf("failed to ensure affiliate account: %w", err)
	}
	if err := s.accountRepo.Credit(ctx, affiliateID, amount); err != nil {
		return false, fmt.Errorf("failed to credit affiliate: %w", err)
	}

	if err := s.transferRepo.Record(ctx, &entities.TransferRecord{
		FromAccountID:   settings.GateAccountID,
		ToAccountID:     affiliateID,
		Amount:          amount,
		TransactionType: entities.TransactionTypeAffiliatePayout,
		Metadata:        map[string]any{"draw_id": drawID, "player_id": playerID},
	}); err != nil {
		return false, fmt.Errorf("failed to record affiliate payout: %w", err)
	}

	if err := s.eventPublisher.Publish(events.AffiliatePaidEvent{
		DrawID:             drawID,
		PlayerAccountID:    playerID,
		AffiliateAccountID: affiliateID,
		Amount:             amount,
	}); err != nil {
		return false, fmt.Errorf("failed to publish affiliate paid event: %w", err)
	}

	return true, nil
}

// retainNomad keeps the referral share in gate custody as unattributed funds.
// Routing is identical for every reason; the reason survives on the audit
// record so accounting can tell them apart later.
func (s *affiliateService) retainNomad(ctx context.Context, playerID, amount, drawID int64, reason entities.NomadReason) error {
	if err := s.affiliateRepo.AddNomad(ctx, amount); err != nil {
		return fmt.Errorf("failed to add nomad funds: %w", err)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := s.transferRepo.Record(ctx, &entities.TransferRecord{
		FromAccountID:   settings.GateAccountID,
		ToAccountID:     settings.GateAccountID,
		Amount:          amount,
		TransactionType: entities.TransactionTypeNomadRetained,
		Metadata:        map[string]any{"draw_id": drawID, "player_id": playerID, "reason": string(reason)},
	}); err != nil {
		return fmt.Errorf("failed to record nomad retention: %w", err)
	}

	if err := s.eventPublisher.Publish(events.NomadRetainedEvent{
		DrawID:          drawID,
		PlayerAccountID: playerID,
		Amount:          amount,
		Reason:          reason,
	}); err != nil {
		return fmt.Errorf("failed to publish nomad retained event: %w", err)
	}

	return nil
}

// SetApproval adds or removes an account from the approved list
func (s *affiliateService) SetApproval(ctx context.Context, operatorID, accountID int64, approved bool) error {
	return s.setFlags(ctx, operatorID, accountID, func(r *entities.AffiliateRecord) {
		r.Approved = approved
	})
}

// SetBlacklist sets or clears an account's blacklist flag
func (s *affiliateService) SetBlacklist(ctx context.Context, operatorID, accountID int64, blacklisted bool) error {
	return s.setFlags(ctx, operatorID, accountID, func(r *entities.AffiliateRecord) {
		r.Blacklisted = blacklisted
	})
}

func (s *affiliateService) setFlags(ctx context.Context, operatorID, accountID int64, mutate func(*entities.AffiliateRecord)) error {
	if !isOperator(s.operatorIDs, operatorID) {
		return fmt.Errorf("operator %d: %w", operatorID, entities.ErrUnauthorized)
	}
	if accountID <= 0 {
		return fmt.Errorf("account %d: %w", accountID, entities.ErrInvalidAccount)
	}

	record, err := s.affiliateRepo.GetRecord(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to get affiliate record %d: %w", accountID, err)
	}
	if record == nil {
		record = &entities.AffiliateRecord{AccountID: accountID}
	}
	mutate(record)
	record.UpdatedAt = time.Now().UTC()

	if err := s.affiliateRepo.UpsertRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to upsert affiliate record %d: %w", accountID, err)
	}

	if err := s.eventPublisher.Publish(events.AffiliateFlagChangedEvent{
		AccountID:   accountID,
		Approved:    record.Approved,
		Blacklisted: record.Blacklisted,
		OperatorID:  operatorID,
	}); err != nil {
		return fmt.Errorf("failed to publish flag change event: %w", err)
	}

	return nil
}

// WithdrawNomad pays the accumulated unattributed funds to an account
func (s *affiliateService) WithdrawNomad(ctx context.Context, operatorID, toAccountID int64) (int64, error) {
	if !isOperator(s.operatorIDs, operatorID) {
		return 0, fmt.Errorf("operator %d: %w", operatorID, entities.ErrUnauthorized)
	}
	if toAccountID <= 0 {
		return 0, fmt.Errorf("destination %d: %w", toAccountID, entities.ErrInvalidAccount)
	}

	state, err := s.affiliateRepo.GetGateState(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get gate state: %w", err)
	}
	if state.NomadBalance <= 0 {
		return 0, fmt.Errorf("nomad balance %d: %w", state.NomadBalance, entities.ErrInsufficientCustody)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}

	amount := state.NomadBalance
	if err := s.affiliateRepo.DeductNomad(ctx, amount); err != nil {
		return 0, fmt.Errorf("failed to deduct nomad balance: %w", err)
	}
	if err := s.accountRepo.Debit(ctx, settings.GateAccountID, amount); err != nil {
		return 0, fmt.Errorf("failed to debit gate custody: %w", err)
	}
	if _, err := s.accountRepo.GetOrCreate(ctx, toAccountID); err != nil {
		return 0, fmt.Errorf("failed to ensure destination account: %w", err)
	}
	if err := s.accountRepo.Credit(ctx, toAccountID, amount); err != nil {
		return 0, fmt.Errorf("failed to credit destination: %w", err)
	}

	if err := s.transferRepo.Record(ctx, &entities.TransferRecord{
		FromAccountID:   settings.GateAccountID,
		ToAccountID:     toAccountID,
		Amount:          amount,
		TransactionType: entities.TransactionTypeNomadWithdrawal,
		Metadata:        map[string]any{"operator_id": operatorID},
	}); err != nil {
		return 0, fmt.Errorf("failed to record nomad withdrawal: %w", err)
	}

	log.WithFields(log.Fields{
		"amount":    amount,
		"toAccount": toAccountID,
	}).Info("Nomad funds withdrawn")

	return amount, nil
}

// RescueAsset moves the full holding of a non-native token out of gate
// custody. The ledger's own token is refused unconditionally.
func (s *affiliateService) RescueAsset(ctx context.Context, operatorID int64, asset string, toAccountID int64) (int64, error) {
	return rescueAsset(ctx, s.holdingRepo, s.transferRepo, s.operatorIDs, entities.ComponentAffiliate, operatorID, asset, toAccountID)
}
