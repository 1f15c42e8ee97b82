package application

import (
	"context"
	"fmt"

	"lotto/application/dto"
	"lotto/domain/entities"
	"lotto/domain/interfaces"
	"lotto/domain/utils"
	"lotto/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// adminHandler dispatches operator commands to the domain services
type adminHandler struct {
	uowFactory  UnitOfWorkFactory
	oracle      interfaces.RandomnessOracle
	operatorIDs []int64
	guard       utils.OpGuard
}

// NewAdminHandler creates a new admin command handler
func NewAdminHandler(uowFactory UnitOfWorkFactory, oracle interfaces.RandomnessOracle, operatorIDs []int64) AdminHandler {
	return &adminHandler{
		uowFactory:  uowFactory,
		oracle:      oracle,
		operatorIDs: operatorIDs,
	}
}

// HandleAdminCommand runs one operator command in its own unit of work
func (h *adminHandler) HandleAdminCommand(ctx context.Context, command dto.AdminCommandDTO) error {
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

	if err := h.dispatch(ctx, svc, command); err != nil {
		return fmt.Errorf("admin command %s: %w", command.Command, err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"command":    command.Command,
		"operatorId": command.OperatorID,
	}).Info("Admin command applied")

	return nil
}

func (h *adminHandler) dispatch(ctx context.Context, svc serviceSet, cmd dto.AdminCommandDTO) error {
	switch cmd.Command {
	case dto.AdminSetBucketShares:
		shares := make(map[entities.BucketKey]int64, len(cmd.Shares))
		for key, bps := range cmd.Shares {
			shares[entities.BucketKey(key)] = bps
		}
		return svc.settlement.SetBucketShares(ctx, cmd.OperatorID, shares)

	case dto.AdminSetBucketDestination:
		return svc.settlement.SetBucketDestination(ctx, cmd.OperatorID, entities.BucketKey(cmd.Bucket), cmd.ToAccountID)

	case dto.AdminWithdrawBucket:
		amount, err := svc.settlement.WithdrawBucket(ctx, cmd.OperatorID, entities.BucketKey(cmd.Bucket))
		if err != nil {
			return err
		}
		recordPayout(observability.PayoutTypeBucket)
		log.WithFields(log.Fields{"bucket": cmd.Bucket, "amount": amount}).Info("Bucket withdrawn")
		return nil

	case dto.AdminEmergencyWithdraw:
		return svc.settlement.EmergencyWithdraw(ctx, cmd.OperatorID, cmd.ToAccountID, cmd.Amount)

	case dto.AdminWithdrawNomad:
		amount, err := svc.affiliate.WithdrawNomad(ctx, cmd.OperatorID, cmd.ToAccountID)
		if err != nil {
			return err
		}
		recordPayout(observability.PayoutTypeNomad)
		log.WithField("amount", amount).Info("Nomad balance withdrawn")
		return nil

	case dto.AdminRescueSettlementAsset:
		_, err := svc.settlement.RescueAsset(ctx, cmd.OperatorID, cmd.Asset, cmd.ToAccountID)
		return err

	case dto.AdminRescueGateAsset:
		_, err := svc.affiliate.RescueAsset(ctx, cmd.OperatorID, cmd.Asset, cmd.ToAccountID)
		return err

	case dto.AdminSetApproval:
		return svc.affiliate.SetApproval(ctx, cmd.OperatorID, cmd.AccountID, cmd.Flag)

	case dto.AdminSetBlacklist:
		return svc.affiliate.SetBlacklist(ctx, cmd.OperatorID, cmd.AccountID, cmd.Flag)

	case dto.AdminSetPaused:
		return svc.settings.SetPaused(ctx, cmd.OperatorID, cmd.Flag)

	case dto.AdminUpdateEntryPrice:
		return svc.settings.UpdateEntryPrice(ctx, cmd.OperatorID, cmd.Value)

	case dto.AdminUpdateDrawCapacity:
		return svc.settings.UpdateDrawCapacity(ctx, cmd.OperatorID, cmd.Value)

	case dto.AdminUpdatePrizeAmount:
		return svc.settings.UpdatePrizeAmount(ctx, cmd.OperatorID, cmd.Value)

	case dto.AdminUpdateRequiredFunding:
		return svc.settings.UpdateRequiredFunding(ctx, cmd.OperatorID, cmd.Value)

	case dto.AdminUpdateOracleParams:
		if cmd.OracleParams == nil {
			return entities.ErrInvalidOracleParams
		}
		return svc.settings.UpdateOracleParams(ctx, cmd.OperatorID, entities.OracleParams{
			KeyHash:          cmd.OracleParams.KeyHash,
			SubscriptionID:   cmd.OracleParams.SubscriptionID,
			Confirmations:    cmd.OracleParams.Confirmations,
			CallbackGasLimit: cmd.OracleParams.CallbackGasLimit,
			NumValues:        1,
		})

	case dto.AdminUpdateCustodyAccounts:
		return svc.settings.UpdateCustodyAccounts(ctx, cmd.OperatorID, cmd.SettlementAccountID, cmd.GateAccountID)

	default:
		return fmt.Errorf("unknown admin command: %s", cmd.Command)
	}
}

func recordPayout(payoutType string) {
	if metrics := observability.GetMetrics(); metrics != nil {
		metrics.RecordPayout(payoutType)
	}
}
