package keeper

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"editions/app/metrics"
	"editions/x/editions/types"
)

// AuthorizeMint decides whether msg may mint, at what price, and pays the
// platform fee and treasury. All state changes happen on a cached context
// that is only written once the mint is fully authorized; a rejected
// request leaves counters, phase and balances untouched.
func (k Keeper) AuthorizeMint(ctx context.Context, msg *types.MsgMintWithControls) (types.MintAuthorization, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	auth, err := k.authorizeMint(cacheCtx, msg)
	if err != nil {
		codespace, code, _ := errorsmod.ABCIInfo(err, false)
		metrics.AuthorizationsCounter().WithLabelValues(fmt.Sprintf("%s:%d", codespace, code)).Inc()
		k.Logger(ctx).Debug("mint rejected",
			"controls_id", msg.ControlsId,
			"phase_index", msg.PhaseIndex,
			"minter", msg.Minter,
			"state", auth.State.String(),
			"err", err,
		)
		auth.State = types.MintStateRejected
		return auth, err
	}
	write()

	metrics.AuthorizationsCounter().WithLabelValues(types.MintStateAuthorized.String()).Inc()
	if auth.Fees.TotalFee > 0 {
		kind := "bps"
		if auth.Fees.IsFeeFlat {
			kind = "flat"
		}
		metrics.PlatformFeesCounter().WithLabelValues(auth.PriceToken, kind).Add(float64(auth.Fees.TotalFee))
	}
	k.Logger(ctx).Debug("mint authorized",
		"controls_id", auth.ControlsId,
		"phase_index", auth.PhaseIndex,
		"minter", auth.Minter,
		"price", auth.Price,
		"allow_list", auth.AllowList,
	)
	return auth, nil
}

func (k Keeper) authorizeMint(ctx sdk.Context, msg *types.MsgMintWithControls) (types.MintAuthorization, error) {
	auth := types.MintAuthorization{
		ControlsId: msg.ControlsId,
		PhaseIndex: msg.PhaseIndex,
		Minter:     msg.Minter,
		State:      types.MintStateRequested,
	}

	controls, err := k.controlsByID(ctx, msg.ControlsId)
	if err != nil {
		return auth, err
	}
	payer, err := k.parseAddress("payer", msg.Payer)
	if err != nil {
		return auth, err
	}
	minter, err := k.parseAddress("minter", msg.Minter)
	if err != nil {
		return auth, err
	}
	if controls.RequiresCreatorCosign() {
		signer, err := k.parseAddress("signer", msg.SignerOrPayer())
		if err != nil {
			return auth, err
		}
		creator, err := k.parseAddress("creator", controls.Creator)
		if err != nil {
			return auth, err
		}
		if !bytes.Equal(signer, creator) {
			return auth, errorsmod.Wrap(types.ErrUnauthorized, "deployment requires creator cosign")
		}
	}

	phase, err := k.ResolvePhase(ctx, controls, msg.PhaseIndex)
	if err != nil {
		return auth, err
	}
	walletStats, err := k.walletStats(ctx, controls.Id, minter)
	if err != nil {
		return auth, err
	}
	walletPhaseStats, err := k.walletPhaseStats(ctx, controls.Id, minter, msg.PhaseIndex)
	if err != nil {
		return auth, err
	}
	if err := types.CheckPhaseConstraints(phase, k.nowUnix(ctx), walletStats, walletPhaseStats, controls.MaxMintsPerWallet); err != nil {
		return auth, err
	}
	auth.State = types.MintStatePhaseValidated

	price := phase.PriceAmount
	if msg.MerkleProof != nil {
		if maxLen := k.GetParams(ctx).MaxProofLength; uint64(len(msg.MerkleProof)) > uint64(maxLen) {
			return auth, errorsmod.Wrapf(types.ErrInvalidMerkleProof, "proof has %d siblings, maximum %d", len(msg.MerkleProof), maxLen)
		}
		if err := types.CheckAllowListConstraints(
			phase,
			minter,
			msg.MerkleProof,
			msg.AllowListPrice,
			msg.AllowListMaxClaims,
			walletPhaseStats,
		); err != nil {
			return auth, err
		}
		price = *msg.AllowListPrice
		auth.AllowList = true
	} else if phase.IsPrivate {
		return auth, types.ErrPrivatePhaseNoProof
	}
	auth.Price = price
	auth.PriceToken = phase.PriceToken
	auth.State = types.MintStatePriceResolved

	walletStats = walletStats.Incremented()
	walletPhaseStats = walletPhaseStats.Incremented()
	phase.CurrentMints = types.SaturatingInc(phase.CurrentMints)
	if err := k.MinterStats.Set(ctx, collections.Join(controls.Id, minter), walletStats.MintCount); err != nil {
		return auth, err
	}
	if err := k.MinterPhaseStats.Set(ctx, collections.Join3(controls.Id, minter, msg.PhaseIndex), walletPhaseStats.MintCount); err != nil {
		return auth, err
	}
	if err := k.Phases.Set(ctx, collections.Join(controls.Id, msg.PhaseIndex), phase); err != nil {
		return auth, err
	}
	auth.WalletMints = walletStats.MintCount
	auth.WalletPhaseMints = walletPhaseStats.MintCount
	auth.PhaseCurrentMints = phase.CurrentMints
	auth.State = types.MintStateCountersAdvanced

	split, err := types.SplitPlatformFee(price, controls.PlatformFee)
	if err != nil {
		return auth, err
	}
	auth.Fees = split
	transfers, err := k.processPlatformFees(ctx, controls, payer, msg.PlatformFeeRecipient, phase.PriceToken, split)
	if err != nil {
		return auth, err
	}
	auth.Transfers = transfers
	auth.State = types.MintStateFeesSplit

	if k.minter != nil {
		if err := k.minter.MintEdition(ctx, controls.Deployment, minter); err != nil {
			return auth, errorsmod.Wrap(err, "mint edition")
		}
	}
	auth.State = types.MintStateAuthorized

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMintAuthorized,
		sdk.NewAttribute(types.AttributeKeyControlsID, strconv.FormatUint(controls.Id, 10)),
		sdk.NewAttribute(types.AttributeKeyDeployment, controls.Deployment),
		sdk.NewAttribute(types.AttributeKeyPhaseIndex, strconv.FormatUint(uint64(msg.PhaseIndex), 10)),
		sdk.NewAttribute(types.AttributeKeyMinter, msg.Minter),
		sdk.NewAttribute(types.AttributeKeyPrice, strconv.FormatUint(price, 10)+phase.PriceToken),
		sdk.NewAttribute(types.AttributeKeyAllowList, strconv.FormatBool(auth.AllowList)),
		sdk.NewAttribute(types.AttributeKeyTotalFee, strconv.FormatUint(split.TotalFee, 10)),
		sdk.NewAttribute(types.AttributeKeyRemainder, strconv.FormatUint(split.Remainder, 10)),
		sdk.NewAttribute(types.AttributeKeyWalletMints, strconv.FormatUint(auth.WalletMints, 10)),
		sdk.NewAttribute(types.AttributeKeyPhaseMints, strconv.FormatUint(auth.PhaseCurrentMints, 10)),
	))

	return auth, nil
}

// processPlatformFees pays the platform fee and routes the remainder to the
// treasury. A mint carries a single fee recipient account: the first
// configured recipient with a non-zero share must match it and is the only
// one paid.
func (k Keeper) processPlatformFees(
	ctx context.Context,
	controls types.EditionsControls,
	payer sdk.AccAddress,
	feeRecipient string,
	denom string,
	split types.FeeSplit,
) ([]types.Transfer, error) {
	payerStr := k.walletString(payer)
	planned := make([]types.Transfer, 0, 2)

	for _, r := range split.Recipients {
		expected, err := k.parseAddress("platform fee recipient", r.Address)
		if err != nil {
			return nil, err
		}
		supplied, err := k.addressCodec.StringToBytes(feeRecipient)
		if err != nil || !bytes.Equal(expected, supplied) {
			return nil, errorsmod.Wrapf(types.ErrRecipientMismatch, "expected %s, got %q", r.Address, feeRecipient)
		}
		planned = append(planned, types.Transfer{From: payerStr, To: r.Address, Denom: denom, Amount: r.Amount})
		break
	}
	planned = append(planned, types.Transfer{From: payerStr, To: controls.Treasury, Denom: denom, Amount: split.Remainder})

	if err := k.ensureSpendable(ctx, payer, denom, planned); err != nil {
		return nil, err
	}

	transfers := make([]types.Transfer, 0, len(planned))
	for _, t := range planned {
		if t.Amount == 0 {
			continue
		}
		to, err := k.parseAddress("transfer destination", t.To)
		if err != nil {
			return nil, err
		}
		if err := k.send(ctx, payer, to, denom, t.Amount); err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, nil
}

func (k Keeper) ensureSpendable(ctx context.Context, payer sdk.AccAddress, denom string, planned []types.Transfer) error {
	if k.bank == nil {
		return fmt.Errorf("bank keeper not set")
	}
	need := sdkmath.ZeroInt()
	for _, t := range planned {
		need = need.Add(sdkmath.NewIntFromUint64(t.Amount))
	}
	if need.IsZero() {
		return nil
	}
	if have := k.bank.SpendableCoins(ctx, payer).AmountOf(denom); have.LT(need) {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "payer has %s%s, mint requires %s%s", have, denom, need, denom)
	}
	return nil
}

func (k Keeper) send(ctx context.Context, from, to sdk.AccAddress, denom string, amount uint64) error {
	if k.bank == nil {
		return fmt.Errorf("bank keeper not set")
	}
	coins := sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
	return k.bank.SendCoins(ctx, from, to, coins)
}
