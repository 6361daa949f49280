package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"editions/x/editions/allowlist"
)

// Phase is one sales window of a deployment. The window is
// [StartTime, EndTime) in unix seconds; zero caps mean uncapped.
type Phase struct {
	PriceAmount       uint64          `json:"price_amount"`
	PriceToken        string          `json:"price_token"`
	StartTime         int64           `json:"start_time"`
	EndTime           int64           `json:"end_time"`
	Active            bool            `json:"active"`
	MaxMintsPerWallet uint64          `json:"max_mints_per_wallet"`
	MaxMintsTotal     uint64          `json:"max_mints_total"`
	CurrentMints      uint64          `json:"current_mints"`
	IsPrivate         bool            `json:"is_private"`
	MerkleRoot        *allowlist.Hash `json:"merkle_root,omitempty"`
}

// InitialisePhaseInput is the admin supplied description of a new phase.
type InitialisePhaseInput struct {
	PriceAmount       uint64          `json:"price_amount"`
	PriceToken        string          `json:"price_token"`
	StartTime         int64           `json:"start_time"`
	EndTime           int64           `json:"end_time"`
	MaxMintsPerWallet uint64          `json:"max_mints_per_wallet"`
	MaxMintsTotal     uint64          `json:"max_mints_total"`
	IsPrivate         bool            `json:"is_private"`
	MerkleRoot        *allowlist.Hash `json:"merkle_root,omitempty"`
}

// Validate checks the input against the native denom of the chain.
func (in InitialisePhaseInput) Validate(nativeDenom string) error {
	if in.PriceToken != nativeDenom {
		return errorsmod.Wrapf(ErrUnsupportedPriceToken, "got %q, expected %q", in.PriceToken, nativeDenom)
	}
	if in.IsPrivate && in.MerkleRoot == nil {
		return errorsmod.Wrap(ErrMerkleRootNotSet, "merkle root must be provided for private phases")
	}
	return nil
}

// NewPhase builds the stored phase. Every phase starts out active with no mints.
func NewPhase(in InitialisePhaseInput) Phase {
	var root *allowlist.Hash
	if in.MerkleRoot != nil {
		r := *in.MerkleRoot
		root = &r
	}
	return Phase{
		PriceAmount:       in.PriceAmount,
		PriceToken:        in.PriceToken,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		Active:            true,
		MaxMintsPerWallet: in.MaxMintsPerWallet,
		MaxMintsTotal:     in.MaxMintsTotal,
		CurrentMints:      0,
		IsPrivate:         in.IsPrivate,
		MerkleRoot:        root,
	}
}

// ValidateStored checks a phase loaded from genesis.
func (p Phase) ValidateStored() error {
	if len(p.PriceToken) > PriceTokenMaxLen {
		return fmt.Errorf("price_token exceeds %d bytes", PriceTokenMaxLen)
	}
	if p.IsPrivate && p.MerkleRoot == nil {
		return fmt.Errorf("private phase without merkle root")
	}
	if p.MaxMintsTotal != 0 && p.CurrentMints > p.MaxMintsTotal {
		return fmt.Errorf("current_mints %d exceeds max_mints_total %d", p.CurrentMints, p.MaxMintsTotal)
	}
	return nil
}

// ResolvePhase returns the phase at index.
func ResolvePhase(phases []Phase, index uint32) (Phase, error) {
	if len(phases) == 0 {
		return Phase{}, ErrNoPhasesAdded
	}
	if uint64(index) >= uint64(len(phases)) {
		return Phase{}, errorsmod.Wrapf(ErrInvalidPhaseIndex, "index %d, phases %d", index, len(phases))
	}
	return phases[index], nil
}
