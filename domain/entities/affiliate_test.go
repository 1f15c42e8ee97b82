package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyReferral(t *testing.T) {
	t.Parallel()

	playerID := int64(100)
	affiliateID := int64(200)

	tests := []struct {
		name        string
		affiliateID int64
		record      *AffiliateRecord
		wantPayable bool
		wantReason  NomadReason
	}{
		{
			name:        "no affiliate",
			affiliateID: 0,
			record:      nil,
			wantPayable: false,
			wantReason:  NomadReasonNoAffiliate,
		},
		{
			name:        "self referral",
			affiliateID: playerID,
			record:      &AffiliateRecord{AccountID: playerID, Approved: true},
			wantPayable: false,
			wantReason:  NomadReasonSelfReferral,
		},
		{
			name:        "no record",
			affiliateID: affiliateID,
			record:      nil,
			wantPayable: false,
			wantReason:  NomadReasonNotApproved,
		},
		{
			name:        "not approved",
			affiliateID: affiliateID,
			record:      &AffiliateRecord{AccountID: affiliateID},
			wantPayable: false,
			wantReason:  NomadReasonNotApproved,
		},
		{
			name:        "blacklisted trumps approval",
			affiliateID: affiliateID,
			record:      &AffiliateRecord{AccountID: affiliateID, Approved: true, Blacklisted: true},
			wantPayable: false,
			wantReason:  NomadReasonBlacklisted,
		},
		{
			name:        "approved affiliate is payable",
			affiliateID: affiliateID,
			record:      &AffiliateRecord{AccountID: affiliateID, Approved: true},
			wantPayable: true,
			wantReason:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payable, reason := ClassifyReferral(playerID, tt.affiliateID, tt.record)

			assert.Equal(t, tt.wantPayable, payable)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestAffiliateRecord_CanReceivePayout(t *testing.T) {
	t.Parallel()

	assert.True(t, (&AffiliateRecord{Approved: true}).CanReceivePayout())
	assert.False(t, (&AffiliateRecord{Approved: true, Blacklisted: true}).CanReceivePayout())
	assert.False(t, (&AffiliateRecord{}).CanReceivePayout())
}
