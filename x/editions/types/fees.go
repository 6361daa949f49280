package types

import (
	"math/bits"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PlatformFeeRecipient receives Share percent of the platform fee.
type PlatformFeeRecipient struct {
	Address string `json:"address"`
	Share   uint8  `json:"share"`
}

// FeeConfig is the platform fee configuration of a deployment. When
// IsFeeFlat is set PlatformFeeValue is an absolute amount, otherwise it is
// expressed in basis points of the mint price.
type FeeConfig struct {
	PlatformFeeValue uint64                 `json:"platform_fee_value"`
	Recipients       []PlatformFeeRecipient `json:"recipients"`
	IsFeeFlat        bool                   `json:"is_fee_flat"`
}

// UpdatePlatformFeeArgs is the admin input replacing a deployment's fee config.
type UpdatePlatformFeeArgs = FeeConfig

// ValidateRecipients enforces the recipient cap and the share-sum invariant.
func ValidateRecipients(recipients []PlatformFeeRecipient) error {
	if len(recipients) > MaxPlatformFeeRecipients {
		return errorsmod.Wrapf(ErrTooManyRecipients, "got %d, maximum allowed is %d", len(recipients), MaxPlatformFeeRecipients)
	}
	var total uint64
	for _, r := range recipients {
		total += uint64(r.Share)
	}
	if total != TotalFeeShares {
		return errorsmod.Wrapf(ErrInvalidFeeShares, "shares sum to %d", total)
	}
	return nil
}

// Validate checks recipients and their addresses.
func (c FeeConfig) Validate() error {
	if err := ValidateRecipients(c.Recipients); err != nil {
		return err
	}
	for i, r := range c.Recipients {
		if r.Share == 0 && strings.TrimSpace(r.Address) == "" {
			continue
		}
		if _, err := sdk.AccAddressFromBech32(r.Address); err != nil {
			return errorsmod.Wrapf(ErrInvalidRequest, "recipient %d: invalid address (%s)", i, err)
		}
	}
	return nil
}

type RecipientAmount struct {
	Address string `json:"address"`
	Share   uint8  `json:"share"`
	Amount  uint64 `json:"amount"`
}

// FeeSplit is the outcome of splitting one mint price.
type FeeSplit struct {
	Price      uint64            `json:"price"`
	IsFeeFlat  bool              `json:"is_fee_flat"`
	TotalFee   uint64            `json:"total_fee"`
	Recipients []RecipientAmount `json:"recipients"`
	// Remainder is what the treasury receives.
	Remainder uint64 `json:"remainder"`
}

// SplitPlatformFee computes the platform fee for price and the amount owed
// to every recipient with a non-zero share. Amounts are floored; the
// rounding residue is not redistributed.
//
// On the flat path the remainder is the full price, not price minus fee.
// That mirrors the deployed behavior and is pending product clarification.
func SplitPlatformFee(price uint64, cfg FeeConfig) (FeeSplit, error) {
	if err := ValidateRecipients(cfg.Recipients); err != nil {
		return FeeSplit{}, err
	}

	split := FeeSplit{Price: price, IsFeeFlat: cfg.IsFeeFlat}
	if cfg.IsFeeFlat {
		split.TotalFee = cfg.PlatformFeeValue
		split.Remainder = price
	} else {
		fee, err := mulDiv(price, cfg.PlatformFeeValue, BasisPointsDenominator)
		if err != nil {
			return FeeSplit{}, err
		}
		if fee > price {
			return FeeSplit{}, errorsmod.Wrapf(ErrFeeCalculationError, "fee %d exceeds price %d", fee, price)
		}
		split.TotalFee = fee
		split.Remainder = price - fee
	}

	for _, r := range cfg.Recipients {
		if r.Share == 0 {
			continue
		}
		amount, err := mulDiv(split.TotalFee, uint64(r.Share), TotalFeeShares)
		if err != nil {
			return FeeSplit{}, err
		}
		split.Recipients = append(split.Recipients, RecipientAmount{
			Address: r.Address,
			Share:   r.Share,
			Amount:  amount,
		})
	}
	return split, nil
}

func mulDiv(a, b, denom uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, errorsmod.Wrapf(ErrFeeCalculationError, "%d * %d overflows", a, b)
	}
	return lo / denom, nil
}
