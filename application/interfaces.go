package application

import (
	"context"

	"lotto/application/dto"
)

// EntryHandler processes entry requests arriving on the message bus
// This is implemented by the application layer and called by the infrastructure layer
type EntryHandler interface {
	// HandleEntryRequest admits a player into the current draw
	HandleEntryRequest(ctx context.Context, request dto.EntryRequestDTO) error
}

// FulfillmentHandler processes randomness fulfillments from the oracle
type FulfillmentHandler interface {
	// HandleFulfillment resolves the draw correlated with the request id
	HandleFulfillment(ctx context.Context, requestID string, randomValues []uint64) error
}

// AdminHandler processes operator commands
type AdminHandler interface {
	// HandleAdminCommand dispatches a single operator command
	HandleAdminCommand(ctx context.Context, command dto.AdminCommandDTO) error
}
