package entities

import "fmt"

// BucketKey identifies one of the fixed operating-cost buckets
type BucketKey string

const (
	BucketOperations     BucketKey = "operations"
	BucketInfrastructure BucketKey = "infrastructure"
	BucketRandomness     BucketKey = "randomness"
	BucketOverhead       BucketKey = "overhead"
)

// TotalBasisPoints is the denominator for all share math: parts per 10,000.
const TotalBasisPoints = 10000

// AllBucketKeys returns the fixed bucket set in a stable order
func AllBucketKeys() []BucketKey {
	return []BucketKey{BucketOperations, BucketInfrastructure, BucketRandomness, BucketOverhead}
}

// IsValidBucketKey reports whether key names one of the fixed buckets
func IsValidBucketKey(key BucketKey) bool {
	switch key {
	case BucketOperations, BucketInfrastructure, BucketRandomness, BucketOverhead:
		return true
	}
	return false
}

// ShareBucket is a named portion of non-prize funds with its own accrued
// withdrawable balance and optional payout destination.
type ShareBucket struct {
	Key                  BucketKey `db:"key"`
	BasisPoints          int64     `db:"basis_points"`
	Balance              int64     `db:"balance"`
	DestinationAccountID *int64    `db:"destination_account_id"` // must be set before withdrawal
}

// ShareOf computes this bucket's portion of amount. Integer division; the
// remainder across all buckets is never allocated and stays in custody.
func (b *ShareBucket) ShareOf(amount int64) int64 {
	return amount * b.BasisPoints / TotalBasisPoints
}

// HasDestination returns true if a payout destination has been assigned
func (b *ShareBucket) HasDestination() bool {
	return b.DestinationAccountID != nil
}

// ValidateShareConfiguration checks a full replacement share set against the
// prize share. Every fixed bucket must be present, no extras, and the sum of
// bucket basis points plus prizeBps must equal exactly 10,000.
func ValidateShareConfiguration(shares map[BucketKey]int64, prizeBps int64) error {
	if len(shares) != len(AllBucketKeys()) {
		return fmt.Errorf("expected %d buckets, got %d: %w", len(AllBucketKeys()), len(shares), ErrInvalidBucketKey)
	}
	var sum int64
	for _, key := range AllBucketKeys() {
		bps, ok := shares[key]
		if !ok {
			return fmt.Errorf("missing bucket %q: %w", key, ErrInvalidBucketKey)
		}
		if bps < 0 {
			return fmt.Errorf("bucket %q has negative basis points %d: %w", key, bps, ErrShareSumMismatch)
		}
		sum += bps
	}
	if sum+prizeBps != TotalBasisPoints {
		return fmt.Errorf("bucket shares %d + prize share %d != %d: %w", sum, prizeBps, TotalBasisPoints, ErrShareSumMismatch)
	}
	return nil
}
