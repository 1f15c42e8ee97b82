package infrastructure

import (
	"context"
	"encoding/json"
	"testing"

	"lotto/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFulfillmentHandler records the fulfillment it receives
type stubFulfillmentHandler struct {
	called       bool
	requestID    string
	randomValues []uint64
	err          error
}

func (s *stubFulfillmentHandler) HandleFulfillment(ctx context.Context, requestID string, randomValues []uint64) error {
	s.called = true
	s.requestID = requestID
	s.randomValues = randomValues
	return s.err
}

func makeFulfillmentEnvelope(t *testing.T, sourceService, requestID string, values []uint64) []byte {
	t.Helper()

	payload, err := json.Marshal(RandomnessFulfilledMessage{
		RequestID:    requestID,
		RandomValues: values,
	})
	require.NoError(t, err)

	data, err := json.Marshal(EventEnvelope{
		EventId:       "evt-1",
		EventType:     "randomness_fulfilled",
		SourceService: sourceService,
		Payload:       payload,
	})
	require.NoError(t, err)
	return data
}

func TestOracleEventListener_HandleRandomnessFulfilled(t *testing.T) {
	t.Parallel()

	t.Run("trusted source delegates to handler", func(t *testing.T) {
		t.Parallel()

		handler := &stubFulfillmentHandler{}
		listener := NewOracleEventListener(handler, "randomness-oracle")

		data := makeFulfillmentEnvelope(t, "randomness-oracle", "req-1", []uint64{17, 99})

		err := listener.HandleRandomnessFulfilled(context.Background(), data)

		assert.NoError(t, err)
		assert.True(t, handler.called)
		assert.Equal(t, "req-1", handler.requestID)
		assert.Equal(t, []uint64{17, 99}, handler.randomValues)
	})

	t.Run("untrusted source rejected before any state change", func(t *testing.T) {
		t.Parallel()

		handler := &stubFulfillmentHandler{}
		listener := NewOracleEventListener(handler, "randomness-oracle")

		data := makeFulfillmentEnvelope(t, "impostor-service", "req-1", []uint64{17})

		err := listener.HandleRandomnessFulfilled(context.Background(), data)

		assert.ErrorIs(t, err, entities.ErrUntrustedOracle)
		assert.False(t, handler.called)
	})

	t.Run("malformed envelope rejected", func(t *testing.T) {
		t.Parallel()

		handler := &stubFulfillmentHandler{}
		listener := NewOracleEventListener(handler, "randomness-oracle")

		err := listener.HandleRandomnessFulfilled(context.Background(), []byte("not json"))

		assert.Error(t, err)
		assert.False(t, handler.called)
	})
}
