package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEntryFee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		price         int64
		wantAffiliate int64
		wantRemainder int64
	}{
		{"default price", 1000, 75, 925},
		{"larger price", 10000, 750, 9250},
		{"truncates toward settlement", 999, 74, 925},
		{"tiny price keeps everything in settlement", 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			affiliateShare, remainder := SplitEntryFee(tt.price)

			assert.Equal(t, tt.wantAffiliate, affiliateShare)
			assert.Equal(t, tt.wantRemainder, remainder)

			// The split never creates or destroys funds
			assert.Equal(t, tt.price, affiliateShare+remainder)
		})
	}
}

func TestEntry_HasAffiliate(t *testing.T) {
	t.Parallel()

	affiliate := int64(200)

	assert.True(t, (&Entry{AffiliateAccountID: &affiliate}).HasAffiliate())
	assert.False(t, (&Entry{}).HasAffiliate())
}
