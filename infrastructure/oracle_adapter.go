package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"

	"lotto/domain/entities"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Subjects the oracle round-trip travels on
const (
	OracleRequestSubject   = "oracle.randomness.request"
	OracleFulfilledSubject = "oracle.randomness.fulfilled"
)

// RandomnessRequestMessage is the payload published to the oracle service
type RandomnessRequestMessage struct {
	RequestID        string `json:"request_id"`
	DrawID           int64  `json:"draw_id"`
	KeyHash          string `json:"key_hash"`
	SubscriptionID   int64  `json:"subscription_id"`
	Confirmations    int64  `json:"confirmations"`
	CallbackGasLimit int64  `json:"callback_gas_limit"`
	NumValues        int64  `json:"num_values"`
}

// RandomnessFulfilledMessage is the payload the oracle service publishes back
type RandomnessFulfilledMessage struct {
	RequestID    string   `json:"request_id"`
	RandomValues []uint64 `json:"random_values"`
}

// OracleAdapter implements the RandomnessOracle interface over NATS.
// A request id is minted locally and returned immediately; the oracle
// answers later on the fulfillment subject carrying the same id.
type OracleAdapter struct {
	natsClient *NATSClient
}

// NewOracleAdapter creates a new oracle adapter
func NewOracleAdapter(natsClient *NATSClient) *OracleAdapter {
	return &OracleAdapter{natsClient: natsClient}
}

// RequestRandomness publishes a randomness request and returns its request id
func (a *OracleAdapter) RequestRandomness(ctx context.Context, drawID int64, params entities.OracleParams) (string, error) {
	requestID := uuid.New().String()

	payload, err := json.Marshal(RandomnessRequestMessage{
		RequestID:        requestID,
		DrawID:           drawID,
		KeyHash:          params.KeyHash,
		SubscriptionID:   params.SubscriptionID,
		Confirmations:    params.Confirmations,
		CallbackGasLimit: params.CallbackGasLimit,
		NumValues:        params.NumValues,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal randomness request: %w", err)
	}

	envelope := &EventEnvelope{
		EventId:       uuid.New().String(),
		EventType:     "randomness_request",
		Timestamp:     timestamppb.Now(),
		SourceService: ServiceName,
		Payload:       payload,
	}

	envelopeData, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request envelope: %w", err)
	}

	if err := a.natsClient.Publish(ctx, OracleRequestSubject, envelopeData); err != nil {
		return "", fmt.Errorf("failed to publish randomness request: %w", err)
	}

	log.WithFields(log.Fields{
		"requestId": requestID,
		"drawId":    drawID,
	}).Info("Randomness requested from oracle")

	return requestID, nil
}
