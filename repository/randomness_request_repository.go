package repository

import (
	"context"
	"fmt"

	"lotto/domain/entities"

	"github.com/jackc/pgx/v5"
)

// RandomnessRequestRepository implements request correlation data access
type RandomnessRequestRepository struct {
	q Queryable
}

// NewRandomnessRequestRepository creates a new request repository bound to a transaction
func NewRandomnessRequestRepository(tx Queryable) *RandomnessRequestRepository {
	return &RandomnessRequestRepository{q: tx}
}

// Create stores a new request-to-draw correlation
func (r *RandomnessRequestRepository) Create(ctx context.Context, request *entities.RandomnessRequest) error {
	query := `
		INSERT INTO randomness_requests (request_id, draw_id)
		VALUES ($1, $2)
		RETURNING created_at
	`

	err := r.q.QueryRow(ctx, query, request.RequestID, request.DrawID).Scan(&request.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create randomness request for draw %d: %w", request.DrawID, err)
	}

	return nil
}

// GetByRequestID returns the correlation for a request id, nil if unknown
func (r *RandomnessRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*entities.RandomnessRequest, error) {
	query := `
		SELECT request_id, draw_id, created_at
		FROM randomness_requests
		WHERE request_id = $1
	`

	var request entities.RandomnessRequest
	err := r.q.QueryRow(ctx, query, requestID).Scan(
		&request.RequestID,
		&request.DrawID,
		&request.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get randomness request %s: %w", requestID, err)
	}

	return &request, nil
}

// Delete removes a correlation so a request id can never be consumed twice
func (r *RandomnessRequestRepository) Delete(ctx context.Context, requestID string) error {
	query := `DELETE FROM randomness_requests WHERE request_id = $1`

	result, err := r.q.Exec(ctx, query, requestID)
	if err != nil {
		return fmt.Errorf("failed to delete randomness request %s: %w", requestID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("randomness request %s not found", requestID)
	}

	return nil
}
