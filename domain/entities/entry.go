package entities

import "time"

// Entry represents one purchased entry into a specific draw
type Entry struct {
	ID                 int64     `db:"id"`
	DrawID             int64     `db:"draw_id"`
	AccountID          int64     `db:"account_id"`
	AffiliateAccountID *int64    `db:"affiliate_account_id"` // NULL when entered without a referrer
	Position           int64     `db:"position"`             // insertion order within the draw, 0-based
	EntryPrice         int64     `db:"entry_price"`
	CreatedAt          time.Time `db:"created_at"`
}

// HasAffiliate returns true if the entry carries a recorded referrer
func (e *Entry) HasAffiliate() bool {
	return e.AffiliateAccountID != nil
}

// AffiliateShareMilli is the referral share of the entry price in parts per thousand.
const AffiliateShareMilli = 75

// SplitEntryFee divides an entry price into the referral-sized portion and
// the settlement remainder. The two always sum back to price.
func SplitEntryFee(price int64) (affiliateShare, remainder int64) {
	affiliateShare = price * AffiliateShareMilli / 1000
	return affiliateShare, price - affiliateShare
}
