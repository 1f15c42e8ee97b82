package services

import (
	"context"
	"fmt"

	"lotto/domain/entities"
	"lotto/domain/events"
	"lotto/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// settlementService owns per-draw funding totals, bucket accrual and every
// payout leaving settlement custody
type settlementService struct {
	bucketRepo     interfaces.ShareBucketRepository
	fundingRepo    interfaces.DrawFundingRepository
	accountRepo    interfaces.AccountRepository
	transferRepo   interfaces.TransferRecordRepository
	holdingRepo    interfaces.AssetHoldingRepository
	settingsRepo   interfaces.SettingsRepository
	eventPublisher interfaces.EventPublisher
	operatorIDs    []int64
}

// NewSettlementService creates a new fund settlement service
func NewSettlementService(
	bucketRepo interfaces.ShareBucketRepository,
	fundingRepo interfaces.DrawFundingRepository,
	accountRepo interfaces.AccountRepository,
	transferRepo interfaces.TransferRecordRepository,
	holdingRepo interfaces.AssetHoldingRepository,
	settingsRepo interfaces.SettingsRepository,
	eventPublisher interfaces.EventPublisher,
	operatorIDs []int64,
) interfaces.SettlementService {
	return &settlementService{
		bucketRepo:     bucketRepo,
		fundingRepo:    fundingRepo,
		accountRepo:    accountRepo,
		transferRepo:   transferRepo,
		holdingRepo:    holdingRepo,
		settingsRepo:   settingsRepo,
		eventPublisher: eventPublisher,
		operatorIDs:    operatorIDs,
	}
}

// NotifyEntry records funding for a draw and accrues each bucket's share.
// The funds were transferred into custody by the caller; only bookkeeping
// happens here. Integer-division dust is left untracked in custody.
func (s *settlementService) NotifyEntry(ctx context.Context, payerID, amount, drawID int64) error {
	if amount <= 0 {
		return fmt.Errorf("entry notification of %d: %w", amount, entities.ErrZeroAmount)
	}

	if err := s.fundingRepo.Add(ctx, drawID, amount); err != nil {
		return fmt.Errorf("failed to add funding for draw %d: %w", drawID, err)
	}

	buckets, err := s.bucketRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load buckets: %w", err)
	}
	for _, bucket := range buckets {
		share := bucket.ShareOf(amount)
		if share == 0 {
			continue
		}
		if err := s.bucketRepo.Accrue(ctx, bucket.Key, share); err != nil {
			return fmt.Errorf("failed to accrue %d to bucket %s: %w", share, bucket.Key, err)
		}
	}

	return nil
}

// DispatchPayout pays the prize to the winner out of settlement custody
func (s *settlementService) DispatchPayout(ctx context.Context, winnerID, amount, drawID int64) error {
	if amount <= 0 {
		return fmt.Errorf("payout of %d: %w", amount, entities.ErrZeroAmount)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	custody, err := s.accountRepo.GetByID(ctx, settings.SettlementAccountID)
	if err != nil {
		return fmt.Errorf("failed to get custody account: %w", err)
	}
	if custody == nil || custody.Balance < amount {
		return fmt.Errorf("prize %d exceeds custody: %w", amount, entities.ErrInsufficientCustody)
	}

	if err := s.accountRepo.Debit(ctx, settings.SettlementAccountID, amount); err != nil {
		return fmt.Errorf("failed to debit custody: %w", err)
	}
	if _, err := s.accountRepo.GetOrCreate(ctx, winnerID); err != nil {
		return fmt.Errorf("failed to ensure winner account: %w", err)
	}
	if err := s.accountRepo.Credit(ctx, winnerID, amount); err != nil {
		return fmt.Errorf("failed to credit winner: %w", err)
	}

	if err := s.transferRepo.Record(ctx, &entities.TransferRecord{
		FromAccountID:   settings.SettlementAccountID,
		ToAccountID:     winnerID,
		Amount:          amount,
		TransactionType: entities.TransactionTypePrizePayout,
		Metadata:        map[string]any{"draw_id": drawID},
	}); err != nil {
		return fmt.Errorf("failed to record prize transfer: %w", err)
	}

	if err := s.eventPublisher.Publish(events.PrizePaidEvent{
		DrawID:          drawID,
		WinnerAccountID: winnerID,
		Amount:          amount,
	}); err != nil {
		return fmt.Errorf("failed to publish prize event: %w", err)
	}

	return nil
}

// IsDrawFullyFunded reports whether a draw's funding total has reached the
// configured per-draw requirement
func (s *settlementService) IsDrawFullyFunded(ctx context.Context, drawID int64) (bool, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load settings: %w", err)
	}
	total, err := s.fundingRepo.GetTotal(ctx, drawID)
	if err != nil {
		return false, fmt.Errorf("failed to get funding for draw %d: %w", drawID, err)
	}
	return total >= settings.RequiredFunding, nil
}

// SetBucketShares atomically replaces all bucket basis points. Validation
// runs against the unchanged prize share before anything is written.
func (s *settlementService) SetBucketShares(ctx context.Context, operatorID int64, shares map[entities.BucketKey]int64) error {
	if !isOperator(s.operatorIDs, operatorID) {
		return fmt.Errorf("operator %d: %w", operatorID, entities.ErrUnauthorized)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := entities.ValidateShareConfiguration(shares, settings.PrizeBps); err != nil {
		return err
	}

	if err := s.bucketRepo.ReplaceShares(ctx, shares); err != nil {
		return fmt.Errorf("failed to replace bucket shares: %w", err)
	}

	if err := s.eventPublisher.Publish(events.BucketSharesChangedEvent{
		Shares:     shares,
		PrizeBps:   settings.PrizeBps,
		OperatorID: operatorID,
	}); err != nil {
		return fmt.Errorf("failed to publish share change event: %w", err)
	}

	return nil
}

// SetBucketDestination assigns where a bucket's withdrawals are paid
func (s *settlementService) SetBucketDestination(ctx context.Context, operatorID int64, key entities.BucketKey, accountID int64) error {
	if !isOperator(s.operatorIDs, operatorID) {
		return fmt.Errorf("operator %d: %w", operatorID, entities.ErrUnauthorized)
	}
	if !entities.IsValidBucketKey(key) {
		return fmt.Errorf("bucket %q: %w", key, entities.ErrInvalidBucketKey)
	}
	if accountID <= 0 {
		return fmt.Errorf("destination %d: %w", accountID, entities.ErrInvalidAccount)
	}

	if err := s.bucketRepo.SetDestination(ctx, key, accountID); err != nil {
		return fmt.Errorf("failed to set destination for bucket %s: %w", key, err)
	}

	if err := s.eventPublisher.Publish(events.SettingChangedEvent{
		Setting:    fmt.Sprintf("bucket_destination.%s", key),
		NewValue:   fmt.Sprintf("%d", accountID),
		OperatorID: operatorID,
	}); err != nil {
		return fmt.Errorf("failed to publish destination change event: %w", err)
	}

	return nil
}

// WithdrawBucket pays out a bucket's full accrued balance to its destination
func (s *settlementService) WithdrawBucket(ctx context.Context, operatorID int64, key entities.BucketKey) (int64, error) {
	if !isOperator(s.operatorIDs, operatorID) {
		return 0, fmt.Errorf("operator %d: %w", operatorID, entities.ErrUnauthorized)
	}

	bucket, err := s.bucketRepo.GetByKey(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to get bucket %s: %w", key, err)
	}
	if bucket == nil {
		return 0, fmt.Errorf("bucket %q: %w", key, entities.ErrInvalidBucketKey)
	}
	if !bucket.HasDestination() {
		return 0, fmt.Errorf("bucket %s: %w", key, entities.ErrDestinationUnset)
	}
	if bucket.Balance <= 0 {
		return 0, fmt.Errorf("bucket %s: %w", key, entities.ErrInsufficientBucket)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}
	custody, err := s.accountRepo.GetByID(ctx, settings.SettlementAccountID)
	if err != nil {
		return 0, fmt.Errorf("failed to get custody account: %w", err)
	}
	if custody == nil || custody.Balance < bucket.Balance {
		return 0, fmt.Errorf("bucket %s withdrawal of %d: %w", key, bucket.Balance, entities.ErrInsufficientCustody)
	}

	amount := bucket.Balance
	if err := s.bucketRepo.Deduct(ctx, key, amount); err != nil {
		return 0, fmt.Errorf("failed to deduct bucket %s: %w", key, err)
	}
	if err := s.accountRepo.Debit(ctx, settings.SettlementAccountID, amount); err != nil {
		return 0, fmt.Errorf("failed to debit custody: %w", err)
	}
	if err := s.accountRepo.Credit(ctx, *bucket.DestinationAccountID, amount); err != nil {
		return 0, fmt.Errorf("failed to credit destination: %w", err)
	}

	if err := s.transferRepo.Record(ctx, &entities.TransferRecord{
		FromAccountID:   settings.SettlementAccountID,
		ToAccountID:     *bucket.DestinationAccountID,
		Amount:          amount,
		TransactionType: entities.TransactionTypeBucketWithdrawal,
		Metadata:        map[string]any{"bucket": string(key)},
	}); err != nil {
		return 0, fmt.Errorf("failed to record bucket withdrawal: %w", err)
	}

	log.WithFields(log.Fields{
		"bucket": key,
		"amount": amount,
	}).Info("Bucket balance withdrawn")

	return amount, nil
}

// EmergencyWithdraw moves amount from total custody to an account
func (s *settlementService) EmergencyWithdraw(ctx context.Context, operatorID, toAccountID, amount int64) error {
	if !isOperator(s.operatorIDs, operatorID) {
		return fmt.Errorf("operator %d: %w", operatorID, entities.ErrUnauthorized)
	}
	if amount <= 0 {
		return fmt.Errorf("emergency withdrawal of %d: %w", amount, entities.ErrZeroAmount)
	}
	if toAccountID <= 0 {
		return fmt.Errorf("destination %d: %w", toAccountID, entities.ErrInvalidAccount)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	custody, err := s.accountRepo.GetByID(ctx, settings.SettlementAccountID)
	if err != nil {
		return fmt.Errorf("failed to get custody account: %w", err)
	}
	if custody == nil || custody.Balance < amount {
		return fmt.Errorf("emergency withdrawal of %d: %w", amount, entities.ErrInsufficientCustody)
	}

	if err := s.accountRepo.Debit(ctx, settings.SettlementAccountID, amount); err != nil {
		return fmt.Errorf("failed to debit custody: %w", err)
	}
	if _, err := s.accountRepo.GetOrCreate(ctx, toAccountID); err != nil {
		return fmt.Errorf("failed to ensure destination account: %w", err)
	}
	if err := s.accountRepo.Credit(ctx, toAccountID, amount); err != nil {
		return fmt.Errorf("failed to credit destination: %w", err)
	}

	if err := s.transferRepo.Record(ctx, &entities.TransferRecord{
		FromAccountID:   settings.SettlementAccountID,
		ToAccountID:     toAccountID,
		Amount:          amount,
		TransactionType: entities.TransactionTypeEmergencyWithdrawal,
		Metadata:        map[string]any{"operator_id": operatorID},
	}); err != nil {
		return fmt.Errorf("failed to record emergency withdrawal: %w", err)
	}

	log.WithFields(log.Fields{
		"amount":     amount,
		"toAccount":  toAccountID,
		"operatorID": operatorID,
	}).Warn("Emergency withdrawal from settlement custody")

	return nil
}

// RescueAsset moves the full holding of a non-native token out of settlement
// custody. The ledger's own token is refused unconditionally.
func (s *settlementService) RescueAsset(ctx context.Context, operatorID int64, asset string, toAccountID int64) (int64, error) {
	return rescueAsset(ctx, s.holdingRepo, s.transferRepo, s.operatorIDs, entities.ComponentSettlement, operatorID, asset, toAccountID)
}

// rescueAsset is shared by settlement and the affiliate gate; holdings of
// foreign assets live outside the native ledger entirely.
func rescueAsset(
	ctx context.Context,
	holdingRepo interfaces.AssetHoldingRepository,
	transferRepo interfaces.TransferRecordRepository,
	operatorIDs []int64,
	component string,
	operatorID int64,
	asset string,
	toAccountID int64,
) (int64, error) {
	if !isOperator(operatorIDs, operatorID) {
		return 0, fmt.Errorf("operator %d: %w", operatorID, entities.ErrUnauthorized)
	}
	if asset == entities.NativeAsset {
		return 0, entities.ErrNativeAssetRescue
	}
	if toAccountID <= 0 {
		return 0, fmt.Errorf("destination %d: %w", toAccountID, entities.ErrInvalidAccount)
	}

	amount, err := holdingRepo.Get(ctx, component, asset)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s holding of %s: %w", component, asset, err)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%s holding of %s: %w", component, asset, entities.ErrNothingToRescue)
	}

	if err := holdingRepo.Remove(ctx, component, asset, amount); err != nil {
		return 0, fmt.Errorf("failed to remove holding: %w", err)
	}

	if err := transferRepo.Record(ctx, &entities.TransferRecord{
		FromAccountID:   0,
		ToAccountID:     toAccountID,
		Amount:          amount,
		TransactionType: entities.TransactionTypeAssetRescue,
		Metadata:        map[string]any{"asset": asset, "component": component, "operator_id": operatorID},
	}); err != nil {
		return 0, fmt.Errorf("failed to record rescue: %w", err)
	}

	return amount, nil
}
