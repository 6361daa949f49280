package keeper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"editions/x/editions/types"
)

type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec
	authority    []byte

	Schema       collections.Schema
	Params       collections.Item[types.Params]
	Controls     collections.Map[uint64, types.EditionsControls]
	ControlsSeq  collections.Sequence
	ByDeployment collections.Map[string, uint64]
	Phases       collections.Map[collections.Pair[uint64, uint32], types.Phase]
	// MinterStats counts mints per (controls id, wallet); MinterPhaseStats
	// per (controls id, wallet, phase index). Missing entries read as zero.
	MinterStats      collections.Map[collections.Pair[uint64, sdk.AccAddress], uint64]
	MinterPhaseStats collections.Map[collections.Triple[uint64, sdk.AccAddress, uint32], uint64]

	bank   types.BankKeeper
	minter types.EditionMinter
}

func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %s: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		authority:    authority,

		Params:       collections.NewItem(sb, types.ParamsKey, "params", types.JSONValue[types.Params]("editions.Params")),
		Controls:     collections.NewMap(sb, types.ControlsKey, "controls", collections.Uint64Key, types.JSONValue[types.EditionsControls]("editions.EditionsControls")),
		ControlsSeq:  collections.NewSequence(sb, types.ControlsSeqKey, "controls_seq"),
		ByDeployment: collections.NewMap(sb, types.ByDeploymentKey, "by_deployment", collections.StringKey, collections.Uint64Value),
		Phases: collections.NewMap(sb, types.PhaseKey, "phase",
			collections.PairKeyCodec(collections.Uint64Key, collections.Uint32Key), types.PhaseValueCodec),
		MinterStats: collections.NewMap(sb, types.MinterStatsKey, "minter_stats",
			collections.PairKeyCodec(collections.Uint64Key, sdk.AccAddressKey), collections.Uint64Value),
		MinterPhaseStats: collections.NewMap(sb, types.MinterPhaseStatsKey, "minter_stats_phase",
			collections.TripleKeyCodec(collections.Uint64Key, sdk.AccAddressKey, collections.Uint32Key), collections.Uint64Value),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

func (k *Keeper) SetBankKeeper(b types.BankKeeper)       { k.bank = b }
func (k *Keeper) SetEditionMinter(m types.EditionMinter) { k.minter = m }

func (k Keeper) GetAuthority() []byte { return k.authority }

func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) GetParams(ctx context.Context) types.Params {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.DefaultParams()
	}
	return params
}

func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	return k.Params.Set(ctx, params)
}

func (k Keeper) nowUnix(ctx context.Context) int64 {
	return sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
}

func (k Keeper) nextControlsID(ctx context.Context) (uint64, error) {
	n, err := k.ControlsSeq.Next(ctx)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

func (k Keeper) parseAddress(field, bech32 string) (sdk.AccAddress, error) {
	bz, err := k.addressCodec.StringToBytes(strings.TrimSpace(bech32))
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "invalid %s address %q: %s", field, bech32, err)
	}
	return sdk.AccAddress(bz), nil
}

func (k Keeper) controlsByID(ctx context.Context, id uint64) (types.EditionsControls, error) {
	controls, err := k.Controls.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.EditionsControls{}, errorsmod.Wrapf(types.ErrNotFound, "controls %d not found", id)
		}
		return types.EditionsControls{}, err
	}
	return controls, nil
}

func (k Keeper) controlsByDeployment(ctx context.Context, deployment string) (types.EditionsControls, error) {
	id, err := k.ByDeployment.Get(ctx, deployment)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.EditionsControls{}, errorsmod.Wrapf(types.ErrNotFound, "deployment %s not found", deployment)
		}
		return types.EditionsControls{}, err
	}
	return k.controlsByID(ctx, id)
}

func (k Keeper) setControls(ctx context.Context, controls types.EditionsControls) error {
	return k.Controls.Set(ctx, controls.Id, controls)
}

// walletStats returns the deployment-wide counter of wallet, zero if unseen.
func (k Keeper) walletStats(ctx context.Context, controlsID uint64, wallet sdk.AccAddress) (types.MinterStats, error) {
	count, err := k.MinterStats.Get(ctx, collections.Join(controlsID, wallet))
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return types.MinterStats{}, err
	}
	return types.MinterStats{Wallet: k.walletString(wallet), MintCount: count}, nil
}

// walletPhaseStats returns the per-phase counter of wallet, zero if unseen.
func (k Keeper) walletPhaseStats(ctx context.Context, controlsID uint64, wallet sdk.AccAddress, phaseIndex uint32) (types.MinterStats, error) {
	count, err := k.MinterPhaseStats.Get(ctx, collections.Join3(controlsID, wallet, phaseIndex))
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return types.MinterStats{}, err
	}
	return types.MinterStats{Wallet: k.walletString(wallet), MintCount: count}, nil
}

func (k Keeper) walletString(wallet sdk.AccAddress) string {
	s, err := k.addressCodec.BytesToString(wallet)
	if err != nil {
		return wallet.String()
	}
	return s
}
