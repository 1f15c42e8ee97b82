package entities

import "time"

// AffiliateRecord holds the payout policy flags for one account.
// Independent of draw state; mutated only by administrative action.
type AffiliateRecord struct {
	AccountID   int64     `db:"account_id"`
	Approved    bool      `db:"approved"`
	Blacklisted bool      `db:"blacklisted"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// CanReceivePayout returns true if the record permits a referral payout
func (r *AffiliateRecord) CanReceivePayout() bool {
	return r.Approved && !r.Blacklisted
}

// NomadReason distinguishes why a referral share was retained unattributed.
// Routing is identical for all reasons; only the audit record differs.
type NomadReason string

const (
	NomadReasonNoAffiliate  NomadReason = "no_affiliate"
	NomadReasonSelfReferral NomadReason = "self_referral"
	NomadReasonNotApproved  NomadReason = "not_approved"
	NomadReasonBlacklisted  NomadReason = "blacklisted"
)

// ClassifyReferral decides whether the referral share is payable to the
// affiliate, and if not, why it is retained as nomad funds.
func ClassifyReferral(playerID, affiliateID int64, record *AffiliateRecord) (payable bool, reason NomadReason) {
	switch {
	case affiliateID == 0:
		return false, NomadReasonNoAffiliate
	case affiliateID == playerID:
		return false, NomadReasonSelfReferral
	case record == nil || !record.Approved:
		return false, NomadReasonNotApproved
	case record.Blacklisted:
		return false, NomadReasonBlacklisted
	}
	return true, ""
}

// GateState is the affiliate gate's own bookkeeping: the running balance of
// unattributed referral funds held in its custody.
type GateState struct {
	NomadBalance int64 `db:"nomad_balance"`
}
