package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"

	"lotto/application"
	"lotto/application/dto"
	"lotto/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// Subjects the lottery service accepts requests on
const (
	EntryRequestSubject  = "lottery.entries.request"
	AdminCommandSubject  = "lottery.admin.command"
	DirectPaymentSubject = "lottery.payments.direct"
)

// LotteryEventListener handles inbound lottery requests and converts them to
// application DTOs
type LotteryEventListener struct {
	entryHandler application.EntryHandler
	adminHandler application.AdminHandler
}

// NewLotteryEventListener creates a new lottery event listener
func NewLotteryEventListener(entryHandler application.EntryHandler, adminHandler application.AdminHandler) *LotteryEventListener {
	return &LotteryEventListener{
		entryHandler: entryHandler,
		adminHandler: adminHandler,
	}
}

// HandleEntryRequest processes entry request messages from NATS
func (l *LotteryEventListener) HandleEntryRequest(ctx context.Context, data []byte) error {
	var envelope EventEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal entry request envelope: %w", err)
	}

	if metrics := observability.GetMetrics(); metrics != nil {
		metrics.RecordNATSMessageReceived(envelope.EventType)
	}

	var request dto.EntryRequestDTO
	if err := json.Unmarshal(envelope.Payload, &request); err != nil {
		return fmt.Errorf("failed to unmarshal entry request payload: %w", err)
	}

	log.WithFields(log.Fields{
		"accountId":   request.AccountID,
		"affiliateId": request.AffiliateAccountID,
	}).Debug("Processing entry request")

	return l.entryHandler.HandleEntryRequest(ctx, request)
}

// HandleAdminCommand processes operator command messages from NATS
func (l *LotteryEventListener) HandleAdminCommand(ctx context.Context, data []byte) error {
	var envelope EventEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal admin command envelope: %w", err)
	}

	if metrics := observability.GetMetrics(); metrics != nil {
		metrics.RecordNATSMessageReceived(envelope.EventType)
	}

	var command dto.AdminCommandDTO
	if err := json.Unmarshal(envelope.Payload, &command); err != nil {
		return fmt.Errorf("failed to unmarshal admin command payload: %w", err)
	}

	return l.adminHandler.HandleAdminCommand(ctx, command)
}

// HandleDirectPayment refuses funds sent outside the entry flow. The message
// is consumed so it is not redelivered, but no account is ever credited.
func (l *LotteryEventListener) HandleDirectPayment(ctx context.Context, data []byte) error {
	var envelope EventEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal direct payment envelope: %w", err)
	}

	log.WithFields(log.Fields{
		"eventId":       envelope.EventId,
		"sourceService": envelope.SourceService,
	}).Warn("Refusing direct payment outside the entry flow")

	return nil
}
