package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShareBucket_ShareOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		basisPoints int64
		amount      int64
		want        int64
	}{
		{"half share", 5000, 1000, 500},
		{"fifth share", 2000, 925, 185},
		{"integer division truncates", 1000, 925, 92},
		{"small amount rounds to zero", 1000, 9, 0},
		{"zero share", 0, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket := &ShareBucket{Key: BucketOperations, BasisPoints: tt.basisPoints}
			assert.Equal(t, tt.want, bucket.ShareOf(tt.amount))
		})
	}
}

func TestValidateShareConfiguration(t *testing.T) {
	t.Parallel()

	fullSet := func(ops, infra, rand, overhead int64) map[BucketKey]int64 {
		return map[BucketKey]int64{
			BucketOperations:     ops,
			BucketInfrastructure: infra,
			BucketRandomness:     rand,
			BucketOverhead:       overhead,
		}
	}

	tests := []struct {
		name     string
		shares   map[BucketKey]int64
		prizeBps int64
		wantErr  error
	}{
		{
			name:     "default split accepted",
			shares:   fullSet(5000, 2000, 1000, 1000),
			prizeBps: 1000,
			wantErr:  nil,
		},
		{
			name:     "sum below 10000 rejected",
			shares:   fullSet(5000, 2000, 1000, 500),
			prizeBps: 1000,
			wantErr:  ErrShareSumMismatch,
		},
		{
			name:     "sum above 10000 rejected",
			shares:   fullSet(5000, 3000, 1000, 1000),
			prizeBps: 1000,
			wantErr:  ErrShareSumMismatch,
		},
		{
			name:     "negative share rejected",
			shares:   fullSet(5000, 2000, 3000, -1000),
			prizeBps: 1000,
			wantErr:  ErrShareSumMismatch,
		},
		{
			name: "missing bucket rejected",
			shares: map[BucketKey]int64{
				BucketOperations:     5000,
				BucketInfrastructure: 2000,
				BucketRandomness:     2000,
			},
			prizeBps: 1000,
			wantErr:  ErrInvalidBucketKey,
		},
		{
			name: "unknown bucket rejected",
			shares: map[BucketKey]int64{
				BucketOperations:     5000,
				BucketInfrastructure: 2000,
				BucketRandomness:     1000,
				BucketKey("slush"):   1000,
			},
			prizeBps: 1000,
			wantErr:  ErrInvalidBucketKey,
		},
		{
			name:     "zero prize share accepted when buckets cover everything",
			shares:   fullSet(5000, 3000, 1000, 1000),
			prizeBps: 0,
			wantErr:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShareConfiguration(tt.shares, tt.prizeBps)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidBucketKey(t *testing.T) {
	t.Parallel()

	for _, key := range AllBucketKeys() {
		assert.True(t, IsValidBucketKey(key))
	}
	assert.False(t, IsValidBucketKey(BucketKey("slush")))
	assert.False(t, IsValidBucketKey(BucketKey("")))
}
