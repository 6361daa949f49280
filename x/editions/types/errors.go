package types

import errorsmod "cosmossdk.io/errors"

// Configuration errors.
var (
	ErrNoPhasesAdded         = errorsmod.Register(ModuleName, 2, "no phases have been added, cannot mint")
	ErrInvalidPhaseIndex     = errorsmod.Register(ModuleName, 3, "invalid phase index")
	ErrInvalidFeeShares      = errorsmod.Register(ModuleName, 4, "total fee shares must equal 100")
	ErrTooManyRecipients     = errorsmod.Register(ModuleName, 5, "too many platform fee recipients")
	ErrMerkleRootNotSet      = errorsmod.Register(ModuleName, 6, "merkle root not set for allow list mint")
	ErrUnsupportedPriceToken = errorsmod.Register(ModuleName, 7, "only the native price token is supported")
)

// Eligibility errors.
var (
	ErrPhaseNotActive                      = errorsmod.Register(ModuleName, 10, "phase not active")
	ErrPhaseNotStarted                     = errorsmod.Register(ModuleName, 11, "phase not yet started")
	ErrPhaseAlreadyFinished                = errorsmod.Register(ModuleName, 12, "phase already finished")
	ErrExceededMaxMintsForPhase            = errorsmod.Register(ModuleName, 13, "exceeded max mints for this phase")
	ErrExceededWalletMaxMintsForPhase      = errorsmod.Register(ModuleName, 14, "exceeded wallet max mints for this phase")
	ErrExceededWalletMaxMintsForCollection = errorsmod.Register(ModuleName, 15, "exceeded wallet max mints for the collection")
	ErrExceededAllowListMaxClaims          = errorsmod.Register(ModuleName, 16, "wallet has exceeded allow list max claims in the current phase")
	ErrPrivatePhaseNoProof                 = errorsmod.Register(ModuleName, 17, "private phase but no merkle proof provided")
)

// Proof errors.
var (
	ErrMerkleProofRequired                = errorsmod.Register(ModuleName, 20, "merkle proof required for allow list mint")
	ErrAllowListPriceAndMaxClaimsRequired = errorsmod.Register(ModuleName, 21, "allow list price and max claims are required for allow list mint")
	ErrInvalidMerkleProof                 = errorsmod.Register(ModuleName, 22, "invalid merkle proof")
)

var (
	ErrFeeCalculationError = errorsmod.Register(ModuleName, 30, "platform fee calculation failed")
	ErrRecipientMismatch   = errorsmod.Register(ModuleName, 31, "recipient account does not match the expected address")
)

var (
	ErrInvalidRequest = errorsmod.Register(ModuleName, 40, "invalid request")
	ErrUnauthorized   = errorsmod.Register(ModuleName, 41, "unauthorized")
	ErrNotFound       = errorsmod.Register(ModuleName, 42, "not found")
	ErrAlreadyExists  = errorsmod.Register(ModuleName, 43, "already exists")
)
