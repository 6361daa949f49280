package types

const (
	// MaxPlatformFeeRecipients is the hard cap on configured fee recipients.
	MaxPlatformFeeRecipients = 5
	// TotalFeeShares is the only accepted sum of recipient shares.
	TotalFeeShares = 100
	// BasisPointsDenominator converts proportional fee values (10_000 bp = 100%).
	BasisPointsDenominator uint64 = 10_000
	// DeploymentMaxLen bounds the collection deployment reference.
	DeploymentMaxLen = 128
	// PriceTokenMaxLen bounds the price token slot of the fixed-size phase record.
	PriceTokenMaxLen = 64
	// PhasePaddingLen is reserved for future phase fields.
	PhasePaddingLen = 200
	// DefaultMaxProofLength covers allow lists far beyond 2^32 entries.
	DefaultMaxProofLength uint32 = 40
)
