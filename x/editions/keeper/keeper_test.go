package keeper_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"editions/x/editions/keeper"
	"editions/x/editions/types"
)

const testDenom = "uedition"

type editionsFixture struct {
	t            *testing.T
	ctx          sdk.Context
	keeper       keeper.Keeper
	srv          types.MsgServer
	queries      types.QueryServer
	addressCodec address.Codec
	bank         *storeBankKeeper
	minter       *mockEditionMinter

	creator     string
	treasury    string
	platform    string
	deployments int
}

func initEditionsFixture(t *testing.T) *editionsFixture {
	t.Helper()

	addressCodec := addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx
	ctx = ctx.WithBlockTime(time.Unix(0, 0)).WithEventManager(sdk.NewEventManager())

	authority := authtypes.NewModuleAddress(types.GovModuleName)

	k := keeper.NewKeeper(storeService, addressCodec, authority)

	bank := newStoreBankKeeper(storeService)
	minter := &mockEditionMinter{}
	k.SetBankKeeper(bank)
	k.SetEditionMinter(minter)

	if err := k.Params.Set(ctx, types.DefaultParams()); err != nil {
		t.Fatalf("failed to set default params: %v", err)
	}

	return &editionsFixture{
		t:            t,
		ctx:          ctx,
		keeper:       k,
		srv:          keeper.NewMsgServerImpl(k),
		queries:      keeper.NewQueryServerImpl(k),
		addressCodec: addressCodec,
		bank:         bank,
		minter:       minter,
		creator:      randomAccAddress(),
		treasury:     randomAccAddress(),
		platform:     randomAccAddress(),
	}
}

func randomAccAddress() string {
	pk := ed25519.GenPrivKey().PubKey()
	return sdk.AccAddress(pk.Address()).String()
}

func (f *editionsFixture) resetEvents() {
	f.ctx = f.ctx.WithEventManager(sdk.NewEventManager())
}

func (f *editionsFixture) withBlockTime(unix int64) {
	f.ctx = f.ctx.WithBlockTime(time.Unix(unix, 0))
}

func (f *editionsFixture) mustAccAddress(addr string) sdk.AccAddress {
	bz, err := f.addressCodec.StringToBytes(addr)
	require.NoError(f.t, err, "invalid address %s", addr)
	return sdk.AccAddress(bz)
}

// bpsFee pays bp basis points of every mint to the fixture's platform account.
func (f *editionsFixture) bpsFee(bp uint64) types.FeeConfig {
	return types.FeeConfig{
		PlatformFeeValue: bp,
		Recipients:       []types.PlatformFeeRecipient{{Address: f.platform, Share: 100}},
	}
}

func (f *editionsFixture) initControls(maxMintsPerWallet uint64, fee types.FeeConfig) uint64 {
	f.t.Helper()
	f.deployments++
	resp, err := f.srv.InitialiseControls(f.ctx, &types.MsgInitialiseControls{
		Creator:           f.creator,
		Deployment:        fmt.Sprintf("deployment-%d", f.deployments),
		Treasury:          f.treasury,
		MaxMintsPerWallet: maxMintsPerWallet,
		PlatformFee:       fee,
	})
	require.NoError(f.t, err)
	return resp.ControlsId
}

func (f *editionsFixture) addPhase(controlsID uint64, in types.InitialisePhaseInput) uint32 {
	f.t.Helper()
	if in.PriceToken == "" {
		in.PriceToken = testDenom
	}
	resp, err := f.srv.AddPhase(f.ctx, &types.MsgAddPhase{Creator: f.creator, ControlsId: controlsID, Phase: in})
	require.NoError(f.t, err)
	return resp.PhaseIndex
}

func (f *editionsFixture) fund(addr string, amount uint64) {
	f.t.Helper()
	require.NoError(f.t, f.bank.mint(f.ctx, f.mustAccAddress(addr), sdk.NewCoins(sdk.NewCoin(testDenom, sdkmath.NewIntFromUint64(amount)))))
}

func (f *editionsFixture) balance(addr string) uint64 {
	return f.bank.SpendableCoins(f.ctx, f.mustAccAddress(addr)).AmountOf(testDenom).Uint64()
}

func (f *editionsFixture) mintMsg(controlsID uint64, phaseIndex uint32, minter string) *types.MsgMintWithControls {
	return &types.MsgMintWithControls{
		Payer:                minter,
		Minter:               minter,
		ControlsId:           controlsID,
		PlatformFeeRecipient: f.platform,
		MintRequest:          types.MintRequest{PhaseIndex: phaseIndex},
	}
}

func (f *editionsFixture) walletMints(controlsID uint64, wallet string) uint64 {
	n, err := f.keeper.MinterStats.Get(f.ctx, collections.Join(controlsID, f.mustAccAddress(wallet)))
	if err != nil {
		return 0
	}
	return n
}

func (f *editionsFixture) walletPhaseMints(controlsID uint64, wallet string, phaseIndex uint32) uint64 {
	n, err := f.keeper.MinterPhaseStats.Get(f.ctx, collections.Join3(controlsID, f.mustAccAddress(wallet), phaseIndex))
	if err != nil {
		return 0
	}
	return n
}

func (f *editionsFixture) phase(controlsID uint64, phaseIndex uint32) types.Phase {
	p, err := f.keeper.Phases.Get(f.ctx, collections.Join(controlsID, phaseIndex))
	require.NoError(f.t, err)
	return p
}

// storeBankKeeper keeps balances in the module's KV store so that cached
// contexts roll transfers back exactly like the real bank module.
type storeBankKeeper struct {
	balances collections.Map[collections.Pair[sdk.AccAddress, string], sdkmath.Int]
}

func newStoreBankKeeper(storeService corestore.KVStoreService) *storeBankKeeper {
	sb := collections.NewSchemaBuilder(storeService)
	b := &storeBankKeeper{
		balances: collections.NewMap(sb, collections.NewPrefix("test_bank/"), "balances",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return b
}

func (b *storeBankKeeper) amount(ctx context.Context, addr sdk.AccAddress, denom string) sdkmath.Int {
	v, err := b.balances.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		return sdkmath.ZeroInt()
	}
	return v
}

func (b *storeBankKeeper) mint(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) error {
	for _, c := range coins {
		if err := b.balances.Set(ctx, collections.Join(addr, c.Denom), b.amount(ctx, addr, c.Denom).Add(c.Amount)); err != nil {
			return err
		}
	}
	return nil
}

func (b *storeBankKeeper) SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	coins := sdk.NewCoins()
	_ = b.balances.Walk(ctx, collections.NewPrefixedPairRange[sdk.AccAddress, string](addr), func(key collections.Pair[sdk.AccAddress, string], amt sdkmath.Int) (bool, error) {
		coins = coins.Add(sdk.NewCoin(key.K2(), amt))
		return false, nil
	})
	return coins
}

func (b *storeBankKeeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	if !amt.IsValid() {
		return fmt.Errorf("invalid coins")
	}
	for _, c := range amt {
		have := b.amount(ctx, from, c.Denom)
		if have.LT(c.Amount) {
			return fmt.Errorf("insufficient funds in %s", from)
		}
		if err := b.balances.Set(ctx, collections.Join(from, c.Denom), have.Sub(c.Amount)); err != nil {
			return err
		}
		if err := b.balances.Set(ctx, collections.Join(to, c.Denom), b.amount(ctx, to, c.Denom).Add(c.Amount)); err != nil {
			return err
		}
	}
	return nil
}

type mintedEdition struct {
	deployment string
	minter     sdk.AccAddress
}

type mockEditionMinter struct {
	fail   error
	minted []mintedEdition
}

func (m *mockEditionMinter) MintEdition(_ context.Context, deployment string, minter sdk.AccAddress) error {
	if m.fail != nil {
		return m.fail
	}
	m.minted = append(m.minted, mintedEdition{deployment: deployment, minter: minter})
	return nil
}
