package types

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const defaultNativeDenom = "uedition"

type Params struct {
	// NativeDenom is the only price token phases may be priced in.
	NativeDenom string `json:"native_denom"`
	// MaxProofLength caps the number of siblings accepted in one proof.
	MaxProofLength uint32 `json:"max_proof_length"`
	// DefaultPlatformFeePrimaryAdmin and DefaultPlatformFeeSecondaryAdmin are
	// copied into every newly initialised deployment. Empty means the
	// deployment creator.
	DefaultPlatformFeePrimaryAdmin   string `json:"default_platform_fee_primary_admin"`
	DefaultPlatformFeeSecondaryAdmin string `json:"default_platform_fee_secondary_admin"`
}

func NewParams(nativeDenom string, maxProofLength uint32, primaryAdmin, secondaryAdmin string) Params {
	return Params{
		NativeDenom:                      nativeDenom,
		MaxProofLength:                   maxProofLength,
		DefaultPlatformFeePrimaryAdmin:   primaryAdmin,
		DefaultPlatformFeeSecondaryAdmin: secondaryAdmin,
	}
}

func DefaultParams() Params {
	return NewParams(defaultNativeDenom, DefaultMaxProofLength, "", "")
}

func ValidateParams(p Params) error {
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return fmt.Errorf("native_denom: %w", err)
	}
	if len(p.NativeDenom) > PriceTokenMaxLen {
		return fmt.Errorf("native_denom must be at most %d bytes", PriceTokenMaxLen)
	}
	if p.MaxProofLength == 0 {
		return fmt.Errorf("max_proof_length must be > 0")
	}
	if p.MaxProofLength > 256 {
		return fmt.Errorf("max_proof_length must be <= 256")
	}
	if err := validateOptionalAddress("default_platform_fee_primary_admin", p.DefaultPlatformFeePrimaryAdmin); err != nil {
		return err
	}
	if err := validateOptionalAddress("default_platform_fee_secondary_admin", p.DefaultPlatformFeeSecondaryAdmin); err != nil {
		return err
	}
	return nil
}

func validateOptionalAddress(name, addr string) error {
	if strings.TrimSpace(addr) == "" {
		return nil
	}
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
