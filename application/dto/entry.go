package dto

// EntryRequestDTO carries a player's request to join the current draw
type EntryRequestDTO struct {
	AccountID          int64 `json:"account_id"`
	AffiliateAccountID int64 `json:"affiliate_account_id"`
}

// EntryResultDTO summarizes an admitted entry for downstream consumers
type EntryResultDTO struct {
	DrawID          int64  `json:"draw_id"`
	Position        int64  `json:"position"`
	AffiliateShare  int64  `json:"affiliate_share"`
	SettlementShare int64  `json:"settlement_share"`
	AffiliatePaid   bool   `json:"affiliate_paid"`
	ClosedDrawID    int64  `json:"closed_draw_id,omitempty"`
	RequestID       string `json:"request_id,omitempty"`
	NextDrawID      int64  `json:"next_draw_id,omitempty"`
}
