package keeper_test

import (
	"testing"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"editions/x/editions/allowlist"
	"editions/x/editions/types"
)

func TestInitialiseControls(t *testing.T) {
	f := initEditionsFixture(t)

	first := f.initControls(5, f.bpsFee(250))
	second := f.initControls(0, f.bpsFee(250))
	require.Equal(t, uint64(1), first)
	require.Equal(t, uint64(2), second)

	controls, err := f.keeper.Controls.Get(f.ctx, first)
	require.NoError(t, err)
	require.Equal(t, "deployment-1", controls.Deployment)
	require.Equal(t, uint64(5), controls.MaxMintsPerWallet)
	require.Equal(t, f.creator, controls.PlatformFeePrimaryAdmin)
	require.Equal(t, f.creator, controls.PlatformFeeSecondaryAdmin)
	require.Zero(t, controls.PhaseCount)

	id, err := f.keeper.ByDeployment.Get(f.ctx, "deployment-2")
	require.NoError(t, err)
	require.Equal(t, second, id)

	_, err = f.srv.InitialiseControls(f.ctx, &types.MsgInitialiseControls{
		Creator:     randomAccAddress(),
		Deployment:  "deployment-1",
		Treasury:    f.treasury,
		PlatformFee: f.bpsFee(0),
	})
	require.ErrorIs(t, err, types.ErrAlreadyExists)
}

func TestInitialiseControlsUsesDefaultAdmins(t *testing.T) {
	f := initEditionsFixture(t)
	primary, secondary := randomAccAddress(), randomAccAddress()
	params := types.DefaultParams()
	params.DefaultPlatformFeePrimaryAdmin = primary
	params.DefaultPlatformFeeSecondaryAdmin = secondary
	require.NoError(t, f.keeper.SetParams(f.ctx, params))

	id := f.initControls(0, f.bpsFee(0))
	controls, err := f.keeper.Controls.Get(f.ctx, id)
	require.NoError(t, err)
	require.Equal(t, primary, controls.PlatformFeePrimaryAdmin)
	require.Equal(t, secondary, controls.PlatformFeeSecondaryAdmin)
}

func TestInitialiseControlsRejectsBadFeeConfig(t *testing.T) {
	f := initEditionsFixture(t)

	fee := f.bpsFee(100)
	fee.Recipients[0].Share = 99
	_, err := f.srv.InitialiseControls(f.ctx, &types.MsgInitialiseControls{
		Creator: f.creator, Deployment: "d", Treasury: f.treasury, PlatformFee: fee,
	})
	require.ErrorIs(t, err, types.ErrInvalidFeeShares)

	six := make([]types.PlatformFeeRecipient, 6)
	for i := range six {
		six[i] = types.PlatformFeeRecipient{Address: randomAccAddress()}
	}
	six[0].Share = 100
	_, err = f.srv.InitialiseControls(f.ctx, &types.MsgInitialiseControls{
		Creator: f.creator, Deployment: "d", Treasury: f.treasury,
		PlatformFee: types.FeeConfig{PlatformFeeValue: 100, Recipients: six},
	})
	require.ErrorIs(t, err, types.ErrTooManyRecipients)

	_, err = f.keeper.ByDeployment.Get(f.ctx, "d")
	require.Error(t, err)
}

func TestAddPhase(t *testing.T) {
	f := initEditionsFixture(t)
	id := f.initControls(0, f.bpsFee(0))

	first := f.addPhase(id, publicPhase(10))
	before := f.phase(id, first)
	require.True(t, before.Active)
	require.Zero(t, before.CurrentMints)

	root := allowlist.EntryNode([]byte("wallet"), 1, 1)
	in := publicPhase(20)
	in.IsPrivate = true
	in.MerkleRoot = &root
	second := f.addPhase(id, in)

	require.Equal(t, uint32(0), first)
	require.Equal(t, uint32(1), second)
	require.Equal(t, before, f.phase(id, first))

	controls, err := f.keeper.Controls.Get(f.ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint32(2), controls.PhaseCount)

	phases, err := f.keeper.PhasesOf(f.ctx, id)
	require.NoError(t, err)
	require.Len(t, phases, 2)
	require.Equal(t, root, *phases[1].MerkleRoot)
}

func TestAddPhaseRejections(t *testing.T) {
	f := initEditionsFixture(t)
	id := f.initControls(0, f.bpsFee(0))

	_, err := f.srv.AddPhase(f.ctx, &types.MsgAddPhase{Creator: randomAccAddress(), ControlsId: id, Phase: publicPhase(1)})
	require.Error(t, err)

	in := publicPhase(1)
	in.PriceToken = testDenom
	_, err = f.srv.AddPhase(f.ctx, &types.MsgAddPhase{Creator: randomAccAddress(), ControlsId: id, Phase: in})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	in.PriceToken = "uatom"
	_, err = f.srv.AddPhase(f.ctx, &types.MsgAddPhase{Creator: f.creator, ControlsId: id, Phase: in})
	require.ErrorIs(t, err, types.ErrUnsupportedPriceToken)

	in.PriceToken = testDenom
	in.IsPrivate = true
	_, err = f.srv.AddPhase(f.ctx, &types.MsgAddPhase{Creator: f.creator, ControlsId: id, Phase: in})
	require.ErrorIs(t, err, types.ErrMerkleRootNotSet)

	in.IsPrivate = false
	_, err = f.srv.AddPhase(f.ctx, &types.MsgAddPhase{Creator: f.creator, ControlsId: id + 1, Phase: in})
	require.ErrorIs(t, err, types.ErrNotFound)

	phases, err := f.keeper.PhasesOf(f.ctx, id)
	require.NoError(t, err)
	require.Empty(t, phases)
}

func TestUpdatePlatformFee(t *testing.T) {
	f := initEditionsFixture(t)
	id := f.initControls(0, f.bpsFee(500))

	update := types.FeeConfig{
		PlatformFeeValue: 2_000,
		IsFeeFlat:        true,
		Recipients:       []types.PlatformFeeRecipient{{Address: f.platform, Share: 100}},
	}
	_, err := f.srv.UpdatePlatformFee(f.ctx, &types.MsgUpdatePlatformFee{Signer: randomAccAddress(), ControlsId: id, PlatformFee: update})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	bad := update
	bad.Recipients = []types.PlatformFeeRecipient{{Address: f.platform, Share: 101}}
	_, err = f.srv.UpdatePlatformFee(f.ctx, &types.MsgUpdatePlatformFee{Signer: f.creator, ControlsId: id, PlatformFee: bad})
	require.ErrorIs(t, err, types.ErrInvalidFeeShares)

	_, err = f.srv.UpdatePlatformFee(f.ctx, &types.MsgUpdatePlatformFee{Signer: f.creator, ControlsId: id, PlatformFee: update})
	require.NoError(t, err)

	controls, err := f.keeper.Controls.Get(f.ctx, id)
	require.NoError(t, err)
	require.Equal(t, update, controls.PlatformFee)
}

func TestUpdatePlatformFeeSecondaryAdmin(t *testing.T) {
	f := initEditionsFixture(t)
	id := f.initControls(0, f.bpsFee(500))
	admin := randomAccAddress()

	_, err := f.srv.UpdatePlatformFeeSecondaryAdmin(f.ctx, &types.MsgUpdatePlatformFeeSecondaryAdmin{
		Signer: randomAccAddress(), ControlsId: id, NewAdmin: admin,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = f.srv.UpdatePlatformFeeSecondaryAdmin(f.ctx, &types.MsgUpdatePlatformFeeSecondaryAdmin{
		Signer: f.creator, ControlsId: id, NewAdmin: admin,
	})
	require.NoError(t, err)

	// The new secondary admin may now change the fee.
	_, err = f.srv.UpdatePlatformFee(f.ctx, &types.MsgUpdatePlatformFee{Signer: admin, ControlsId: id, PlatformFee: f.bpsFee(100)})
	require.NoError(t, err)

	controls, err := f.keeper.Controls.Get(f.ctx, id)
	require.NoError(t, err)
	require.Equal(t, admin, controls.PlatformFeeSecondaryAdmin)
	require.Equal(t, f.creator, controls.PlatformFeePrimaryAdmin)
	require.Equal(t, uint64(100), controls.PlatformFee.PlatformFeeValue)
}

func TestUpdateParams(t *testing.T) {
	f := initEditionsFixture(t)
	params := types.DefaultParams()
	params.MaxProofLength = 12

	_, err := f.srv.UpdateParams(f.ctx, &types.MsgUpdateParams{Authority: randomAccAddress(), Params: params})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	gov := authtypes.NewModuleAddress(types.GovModuleName).String()
	invalid := params
	invalid.NativeDenom = ""
	_, err = f.srv.UpdateParams(f.ctx, &types.MsgUpdateParams{Authority: gov, Params: invalid})
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	_, err = f.srv.UpdateParams(f.ctx, &types.MsgUpdateParams{Authority: gov, Params: params})
	require.NoError(t, err)
	require.Equal(t, uint32(12), f.keeper.GetParams(f.ctx).MaxProofLength)
}
