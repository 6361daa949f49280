package types

// EditionsControls is the per-deployment configuration guarding mints.
// Phases are stored separately; PhaseCount is the length of the phase
// registry.
type EditionsControls struct {
	Id         uint64 `json:"id"`
	Deployment string `json:"deployment"`
	Creator    string `json:"creator"`
	Treasury   string `json:"treasury"`
	// MaxMintsPerWallet applies across all phases; 0 means unlimited.
	MaxMintsPerWallet uint64 `json:"max_mints_per_wallet"`
	// Cosigner, when set, requires the deployment creator to sign every mint.
	Cosigner                  string    `json:"cosigner,omitempty"`
	PlatformFeePrimaryAdmin   string    `json:"platform_fee_primary_admin"`
	PlatformFeeSecondaryAdmin string    `json:"platform_fee_secondary_admin"`
	PlatformFee               FeeConfig `json:"platform_fee"`
	PhaseCount                uint32    `json:"phase_count"`
}

// IsPlatformFeeAdmin reports whether addr may change the platform fee.
func (c EditionsControls) IsPlatformFeeAdmin(addr string) bool {
	return addr != "" && (addr == c.PlatformFeePrimaryAdmin || addr == c.PlatformFeeSecondaryAdmin)
}

// RequiresCreatorCosign reports whether mints must be signed by the creator.
func (c EditionsControls) RequiresCreatorCosign() bool {
	return c.Cosigner != ""
}
