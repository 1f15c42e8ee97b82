package services

import (
	"context"
	"fmt"

	"lotto/domain/entities"
	"lotto/domain/events"
	"lotto/domain/interfaces"
)

// settingsService implements the bounded administrative configuration surface
type settingsService struct {
	settingsRepo   interfaces.SettingsRepository
	accountRepo    interfaces.AccountRepository
	eventPublisher interfaces.EventPublisher
	operatorIDs    []int64
}

// NewSettingsService creates a new settings service
func NewSettingsService(
	settingsRepo interfaces.SettingsRepository,
	accountRepo interfaces.AccountRepository,
	eventPublisher interfaces.EventPublisher,
	operatorIDs []int64,
) interfaces.SettingsService {
	return &settingsService{
		settingsRepo:   settingsRepo,
		accountRepo:    accountRepo,
		eventPublisher: eventPublisher,
		operatorIDs:    operatorIDs,
	}
}

// Get returns the current settings
func (s *settingsService) Get(ctx context.Context) (*entities.LotterySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// apply loads settings, runs the mutation, persists, and emits the change
// record every setter must produce.
func (s *settingsService) apply(ctx context.Context, operatorID int64, setting string, mutate func(*entities.LotterySettings) (old, new string, err error)) error {
	if !isOperator(s.operatorIDs, operatorID) {
		return fmt.Errorf("operator %d: %w", operatorID, entities.ErrUnauthorized)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	oldValue, newValue, err := mutate(settings)
	if err != nil {
		return err
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	if err := s.eventPublisher.Publish(events.SettingChangedEvent{
		Setting:    setting,
		OldValue:   oldValue,
		NewValue:   newValue,
		OperatorID: operatorID,
	}); err != nil {
		return fmt.Errorf("failed to publish setting change: %w", err)
	}

	return nil
}

// UpdateEntryPrice sets the entry price for draws opened from now on
func (s *settingsService) UpdateEntryPrice(ctx context.Context, operatorID, price int64) error {
	return s.apply(ctx, operatorID, "entry_price", func(st *entities.LotterySettings) (string, string, error) {
		if err := entities.ValidateEntryPrice(price); err != nil {
			return "", "", err
		}
		old := fmt.Sprintf("%d", st.EntryPrice)
		st.EntryPrice = price
		return old, fmt.Sprintf("%d", price), nil
	})
}

// UpdateDrawCapacity sets the capacity for draws opened from now on
func (s *settingsService) UpdateDrawCapacity(ctx context.Context, operatorID, capacity int64) error {
	return s.apply(ctx, operatorID, "draw_capacity", func(st *entities.LotterySettings) (string, string, error) {
		if err := entities.ValidateDrawCapacity(capacity); err != nil {
			return "", "", err
		}
		old := fmt.Sprintf("%d", st.DrawCapacity)
		st.DrawCapacity = capacity
		return old, fmt.Sprintf("%d", capacity), nil
	})
}

// UpdatePrizeAmount sets the prize for draws opened from now on
func (s *settingsService) UpdatePrizeAmount(ctx context.Context, operatorID, amount int64) error {
	return s.apply(ctx, operatorID, "prize_amount", func(st *entities.LotterySettings) (string, string, error) {
		if err := entities.ValidatePrizeAmount(amount); err != nil {
			return "", "", err
		}
		old := fmt.Sprintf("%d", st.PrizeAmount)
		st.PrizeAmount = amount
		return old, fmt.Sprintf("%d", amount), nil
	})
}

// UpdateRequiredFunding sets the per-draw funding threshold for closing
func (s *settingsService) UpdateRequiredFunding(ctx context.Context, operatorID, amount int64) error {
	return s.apply(ctx, operatorID, "required_funding", func(st *entities.LotterySettings) (string, string, error) {
		if amount <= 0 {
			return "", "", fmt.Errorf("required funding %d: %w", amount, entities.ErrZeroAmount)
		}
		old := fmt.Sprintf("%d", st.RequiredFunding)
		st.RequiredFunding = amount
		return old, fmt.Sprintf("%d", amount), nil
	})
}

// UpdateOracleParams replaces the randomness-request parameters
func (s *settingsService) UpdateOracleParams(ctx context.Context, operatorID int64, params entities.OracleParams) error {
	return s.apply(ctx, operatorID, "oracle_params", func(st *entities.LotterySettings) (string, string, error) {
		if err := params.Validate(); err != nil {
			return "", "", err
		}
		old := fmt.Sprintf("%s/%d/%d/%d", st.OracleKeyHash, st.OracleSubscriptionID, st.OracleConfirmations, st.OracleCallbackGasLimit)
		st.OracleKeyHash = params.KeyHash
		st.OracleSubscriptionID = params.SubscriptionID
		st.OracleConfirmations = params.Confirmations
		st.OracleCallbackGasLimit = params.CallbackGasLimit
		return old, fmt.Sprintf("%s/%d/%d/%d", params.KeyHash, params.SubscriptionID, params.Confirmations, params.CallbackGasLimit), nil
	})
}

// UpdateCustodyAccounts repoints the settlement and gate custody accounts
func (s *settingsService) UpdateCustodyAccounts(ctx context.Context, operatorID, settlementAccountID, gateAccountID int64) error {
	return s.apply(ctx, operatorID, "custody_accounts", func(st *entities.LotterySettings) (string, string, error) {
		if settlementAccountID <= 0 || gateAccountID <= 0 {
			return "", "", entities.ErrInvalidAccount
		}
		if _, err := s.accountRepo.GetOrCreate(ctx, settlementAccountID); err != nil {
			return "", "", fmt.Errorf("failed to ensure settlement account: %w", err)
		}
		if _, err := s.accountRepo.GetOrCreate(ctx, gateAccountID); err != nil {
			return "", "", fmt.Errorf("failed to ensure gate account: %w", err)
		}
		old := fmt.Sprintf("%d/%d", st.SettlementAccountID, st.GateAccountID)
		st.SettlementAccountID = settlementAccountID
		st.GateAccountID = gateAccountID
		return old, fmt.Sprintf("%d/%d", settlementAccountID, gateAccountID), nil
	})
}

// SetPaused pauses or resumes entry-accepting operations
func (s *settingsService) SetPaused(ctx context.Context, operatorID int64, paused bool) error {
	return s.apply(ctx, operatorID, "paused", func(st *entities.LotterySettings) (string, string, error) {
		old := fmt.Sprintf("%t", st.Paused)
		st.Paused = paused
		return old, fmt.Sprintf("%t", paused), nil
	})
}
