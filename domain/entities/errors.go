package entities

import "errors"

// Validation errors
var (
	ErrInvalidAccount      = errors.New("invalid account id")
	ErrZeroAmount          = errors.New("amount must be positive")
	ErrPriceOutOfRange     = errors.New("entry price out of configured range")
	ErrCapacityOutOfRange  = errors.New("draw capacity out of configured range")
	ErrInvalidOracleParams = errors.New("randomness parameters must be non-zero")
	ErrInvalidBucketKey    = errors.New("unknown share bucket")
	ErrShareSumMismatch    = errors.New("bucket shares plus prize share must sum to 10000 basis points")
)

// State errors
var (
	ErrDrawNotOpen       = errors.New("draw is not open")
	ErrDrawFull          = errors.New("draw has reached capacity")
	ErrAlreadyEntered    = errors.New("account already entered this draw")
	ErrInvalidDrawState  = errors.New("draw is not in the expected state")
	ErrUnknownRequest    = errors.New("unknown randomness request correlation")
	ErrNoEntrants        = errors.New("draw has no entrants")
	ErrDrawUnderfunded   = errors.New("draw is not fully funded")
	ErrEntriesPaused     = errors.New("entry operations are paused")
	ErrOperationInFlight = errors.New("operation already in flight for this resource")
)

// Resource errors
var (
	ErrInsufficientBalance = errors.New("insufficient account balance")
	ErrInsufficientCustody = errors.New("insufficient custody balance")
	ErrInsufficientBucket  = errors.New("insufficient bucket balance")
	ErrDestinationUnset    = errors.New("bucket destination wallet not set")
	ErrNothingToRescue     = errors.New("no holdings of the requested asset")
)

// Authorization errors
var (
	ErrUnauthorized         = errors.New("caller is not authorized for this operation")
	ErrUntrustedOracle      = errors.New("fulfillment from unrecognized oracle source")
	ErrNativeAssetRescue    = errors.New("rescue refuses the ledger's own token")
	ErrDirectPaymentRefused = errors.New("direct payments to custody accounts are refused")
)
