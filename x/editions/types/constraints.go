package types

import (
	errorsmod "cosmossdk.io/errors"

	"editions/x/editions/allowlist"
)

// CheckPhaseConstraints decides whether a wallet may mint in phase at now.
// Checks run in a fixed order and the first failure is returned. Zero caps
// are uncapped.
func CheckPhaseConstraints(phase Phase, now int64, walletStats, walletPhaseStats MinterStats, collectionCap uint64) error {
	if !phase.Active {
		return ErrPhaseNotActive
	}
	if now < phase.StartTime {
		return errorsmod.Wrapf(ErrPhaseNotStarted, "starts at %d, now %d", phase.StartTime, now)
	}
	if now >= phase.EndTime {
		return errorsmod.Wrapf(ErrPhaseAlreadyFinished, "ended at %d, now %d", phase.EndTime, now)
	}
	if phase.MaxMintsTotal != 0 && phase.CurrentMints >= phase.MaxMintsTotal {
		return errorsmod.Wrapf(ErrExceededMaxMintsForPhase, "%d of %d minted", phase.CurrentMints, phase.MaxMintsTotal)
	}
	if collectionCap != 0 && walletStats.MintCount >= collectionCap {
		return errorsmod.Wrapf(ErrExceededWalletMaxMintsForCollection, "%d of %d minted", walletStats.MintCount, collectionCap)
	}
	if phase.MaxMintsPerWallet != 0 && walletPhaseStats.MintCount >= phase.MaxMintsPerWallet {
		return errorsmod.Wrapf(ErrExceededWalletMaxMintsForPhase, "%d of %d minted", walletPhaseStats.MintCount, phase.MaxMintsPerWallet)
	}
	return nil
}

// CheckAllowListConstraints verifies a wallet's allow-list claim against the
// phase root. A claimed quota of 0 is unlimited for that entry.
func CheckAllowListConstraints(
	phase Phase,
	wallet []byte,
	proof []allowlist.Hash,
	price, maxClaims *uint64,
	walletPhaseStats MinterStats,
) error {
	if phase.MerkleRoot == nil {
		return ErrMerkleRootNotSet
	}
	if proof == nil {
		return ErrMerkleProofRequired
	}
	if price == nil || maxClaims == nil {
		return ErrAllowListPriceAndMaxClaimsRequired
	}
	if *maxClaims != 0 && walletPhaseStats.MintCount >= *maxClaims {
		return errorsmod.Wrapf(ErrExceededAllowListMaxClaims, "%d of %d claimed", walletPhaseStats.MintCount, *maxClaims)
	}
	node := allowlist.EntryNode(wallet, *price, *maxClaims)
	if !allowlist.Verify(proof, *phase.MerkleRoot, node) {
		return ErrInvalidMerkleProof
	}
	return nil
}
