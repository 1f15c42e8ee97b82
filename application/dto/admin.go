package dto

// OracleParamsDTO carries replacement randomness-request parameters
type OracleParamsDTO struct {
	KeyHash          string `json:"key_hash"`
	SubscriptionID   int64  `json:"subscription_id"`
	Confirmations    int64  `json:"confirmations"`
	CallbackGasLimit int64  `json:"callback_gas_limit"`
}

// Admin command names accepted on the admin subject
const (
	AdminSetBucketShares       = "set_bucket_shares"
	AdminSetBucketDestination  = "set_bucket_destination"
	AdminWithdrawBucket        = "withdraw_bucket"
	AdminEmergencyWithdraw     = "emergency_withdraw"
	AdminWithdrawNomad         = "withdraw_nomad"
	AdminRescueSettlementAsset = "rescue_settlement_asset"
	AdminRescueGateAsset       = "rescue_gate_asset"
	AdminSetApproval           = "set_approval"
	AdminSetBlacklist          = "set_blacklist"
	AdminSetPaused             = "set_paused"
	AdminUpdateEntryPrice      = "update_entry_price"
	AdminUpdateDrawCapacity    = "update_draw_capacity"
	AdminUpdatePrizeAmount     = "update_prize_amount"
	AdminUpdateRequiredFunding = "update_required_funding"
	AdminUpdateOracleParams    = "update_oracle_params"
	AdminUpdateCustodyAccounts = "update_custody_accounts"
)

// AdminCommandDTO is the envelope payload for operator commands. Only the
// fields relevant to the named command are read.
type AdminCommandDTO struct {
	OperatorID int64  `json:"operator_id"`
	Command    string `json:"command"`

	AccountID   int64            `json:"account_id,omitempty"`
	ToAccountID int64            `json:"to_account_id,omitempty"`
	Amount      int64            `json:"amount,omitempty"`
	Value       int64            `json:"value,omitempty"`
	Flag        bool             `json:"flag,omitempty"`
	Bucket      string           `json:"bucket,omitempty"`
	Asset       string           `json:"asset,omitempty"`
	Shares      map[string]int64 `json:"shares,omitempty"`

	SettlementAccountID int64 `json:"settlement_account_id,omitempty"`
	GateAccountID       int64 `json:"gate_account_id,omitempty"`

	OracleParams *OracleParamsDTO `json:"oracle_params,omitempty"`
}
