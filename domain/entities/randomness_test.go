package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinnerIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		randomValue  uint64
		entrantCount int64
		want         int64
	}{
		{"wraps around entrants", 17, 5, 2},
		{"zero value picks first", 0, 5, 0},
		{"exact multiple picks first", 10, 5, 0},
		{"single entrant always wins", 982451653, 1, 0},
		{"large value stays in range", ^uint64(0), 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := WinnerIndex(tt.randomValue, tt.entrantCount)

			assert.Equal(t, tt.want, index)
			assert.GreaterOrEqual(t, index, int64(0))
			assert.Less(t, index, tt.entrantCount)
		})
	}
}

func TestOracleParams_Validate(t *testing.T) {
	t.Parallel()

	valid := OracleParams{
		KeyHash:          "key-hash",
		SubscriptionID:   1,
		Confirmations:    3,
		CallbackGasLimit: 500000,
		NumValues:        1,
	}

	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*OracleParams)
	}{
		{"empty key hash", func(p *OracleParams) { p.KeyHash = "" }},
		{"zero subscription", func(p *OracleParams) { p.SubscriptionID = 0 }},
		{"zero confirmations", func(p *OracleParams) { p.Confirmations = 0 }},
		{"zero gas limit", func(p *OracleParams) { p.CallbackGasLimit = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)

			assert.ErrorIs(t, params.Validate(), ErrInvalidOracleParams)
		})
	}
}
