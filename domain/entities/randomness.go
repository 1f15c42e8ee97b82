package entities

import "time"

// RandomnessRequest is the one-to-one correlation between an oracle request
// identifier and the draw awaiting its random value. The row is deleted the
// moment fulfillment is processed, so a request id can never be consumed twice.
type RandomnessRequest struct {
	RequestID string    `db:"request_id"`
	DrawID    int64     `db:"draw_id"`
	CreatedAt time.Time `db:"created_at"`
}

// OracleParams carries the randomness-request parameters captured from
// settings when a draw closes. All fields must be non-zero/non-empty.
type OracleParams struct {
	KeyHash          string
	SubscriptionID   int64
	Confirmations    int64
	CallbackGasLimit int64
	NumValues        int64
}

// Validate rejects malformed oracle parameters
func (p OracleParams) Validate() error {
	if p.KeyHash == "" || p.SubscriptionID == 0 || p.Confirmations == 0 || p.CallbackGasLimit == 0 {
		return ErrInvalidOracleParams
	}
	return nil
}

// WinnerIndex maps a random value onto an entrant position
func WinnerIndex(randomValue uint64, entrantCount int64) int64 {
	return int64(randomValue % uint64(entrantCount))
}
