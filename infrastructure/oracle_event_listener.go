package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"

	"lotto/application"
	"lotto/domain/entities"
	"lotto/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// OracleEventListener handles randomness fulfillment messages from NATS
type OracleEventListener struct {
	fulfillmentHandler application.FulfillmentHandler
	oracleServiceName  string
}

// NewOracleEventListener creates a new oracle event listener
func NewOracleEventListener(fulfillmentHandler application.FulfillmentHandler, oracleServiceName string) *OracleEventListener {
	return &OracleEventListener{
		fulfillmentHandler: fulfillmentHandler,
		oracleServiceName:  oracleServiceName,
	}
}

// HandleRandomnessFulfilled processes oracle fulfillment messages from NATS.
// Messages whose envelope does not name the configured oracle service are
// rejected before any state is touched.
func (l *OracleEventListener) HandleRandomnessFulfilled(ctx context.Context, data []byte) error {
	var envelope EventEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal fulfillment envelope: %w", err)
	}

	if metrics := observability.GetMetrics(); metrics != nil {
		metrics.RecordNATSMessageReceived(envelope.EventType)
	}

	if envelope.SourceService != l.oracleServiceName {
		log.WithFields(log.Fields{
			"sourceService": envelope.SourceService,
			"eventId":       envelope.EventId,
		}).Warn("Rejecting fulfillment from untrusted source")
		return fmt.Errorf("source %s: %w", envelope.SourceService, entities.ErrUntrustedOracle)
	}

	var msg RandomnessFulfilledMessage
	if err := json.Unmarshal(envelope.Payload, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal fulfillment payload: %w", err)
	}

	log.WithFields(log.Fields{
		"requestId":  msg.RequestID,
		"valueCount": len(msg.RandomValues),
	}).Debug("Processing randomness fulfillment")

	return l.fulfillmentHandler.HandleFulfillment(ctx, msg.RequestID, msg.RandomValues)
}
