package entities

import "time"

// Account is a row in the fungible-token ledger. The lottery components hold
// custody through ordinary accounts referenced from settings.
type Account struct {
	ID        int64     `db:"id"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}

// CanAfford returns true if the account balance covers amount
func (a *Account) CanAfford(amount int64) bool {
	return a.Balance >= amount
}

// NativeAsset is the symbol of the ledger's own token. Rescue operations
// refuse to move it.
const NativeAsset = "CHIP"

// AssetHolding tracks a non-native token accidentally held by a component,
// pending administrative rescue.
type AssetHolding struct {
	Component string `db:"component"`
	Asset     string `db:"asset"`
	Amount    int64  `db:"amount"`
}

// Custody component names used for asset holdings
const (
	ComponentSettlement = "settlement"
	ComponentAffiliate  = "affiliate_gate"
)
