package keeper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"editions/x/editions/types"
)

type msgServer struct {
	Keeper
}

func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) InitialiseControls(ctx context.Context, msg *types.MsgInitialiseControls) (*types.MsgInitialiseControlsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	deployment := strings.TrimSpace(msg.Deployment)
	if _, err := m.ByDeployment.Get(ctx, deployment); err == nil {
		return nil, errorsmod.Wrapf(types.ErrAlreadyExists, "deployment %s already has controls", deployment)
	} else if !errors.Is(err, collections.ErrNotFound) {
		return nil, err
	}

	params := m.GetParams(ctx)
	primary := params.DefaultPlatformFeePrimaryAdmin
	if primary == "" {
		primary = msg.Creator
	}
	secondary := params.DefaultPlatformFeeSecondaryAdmin
	if secondary == "" {
		secondary = msg.Creator
	}

	id, err := m.nextControlsID(ctx)
	if err != nil {
		return nil, err
	}
	controls := types.EditionsControls{
		Id:                        id,
		Deployment:                deployment,
		Creator:                   msg.Creator,
		Treasury:                  msg.Treasury,
		MaxMintsPerWallet:         msg.MaxMintsPerWallet,
		Cosigner:                  msg.Cosigner,
		PlatformFeePrimaryAdmin:   primary,
		PlatformFeeSecondaryAdmin: secondary,
		PlatformFee:               msg.PlatformFee,
	}
	if err := m.setControls(ctx, controls); err != nil {
		return nil, err
	}
	if err := m.ByDeployment.Set(ctx, deployment, id); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeControlsInitialised,
		sdk.NewAttribute(types.AttributeKeyControlsID, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(types.AttributeKeyDeployment, deployment),
		sdk.NewAttribute(types.AttributeKeyCreator, msg.Creator),
	))
	m.Logger(ctx).Info("controls initialised", "controls_id", id, "deployment", deployment, "creator", msg.Creator)

	return &types.MsgInitialiseControlsResponse{ControlsId: id}, nil
}

func (m msgServer) AddPhase(ctx context.Context, msg *types.MsgAddPhase) (*types.MsgAddPhaseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	controls, err := m.controlsByID(ctx, msg.ControlsId)
	if err != nil {
		return nil, err
	}
	if err := m.assertAccount(controls.Creator, msg.Creator, "creator"); err != nil {
		return nil, err
	}
	if err := msg.Phase.Validate(m.GetParams(ctx).NativeDenom); err != nil {
		return nil, err
	}

	index, err := m.appendPhase(ctx, &controls, types.NewPhase(msg.Phase))
	if err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePhaseAdded,
		sdk.NewAttribute(types.AttributeKeyControlsID, strconv.FormatUint(controls.Id, 10)),
		sdk.NewAttribute(types.AttributeKeyPhaseIndex, strconv.FormatUint(uint64(index), 10)),
		sdk.NewAttribute(types.AttributeKeyPrice, strconv.FormatUint(msg.Phase.PriceAmount, 10)+msg.Phase.PriceToken),
	))
	m.Logger(ctx).Info("phase added", "controls_id", controls.Id, "phase_index", index, "private", msg.Phase.IsPrivate)

	return &types.MsgAddPhaseResponse{PhaseIndex: index}, nil
}

func (m msgServer) MintWithControls(ctx context.Context, msg *types.MsgMintWithControls) (*types.MsgMintWithControlsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	auth, err := m.AuthorizeMint(ctx, msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgMintWithControlsResponse{Authorization: auth}, nil
}

func (m msgServer) UpdatePlatformFee(ctx context.Context, msg *types.MsgUpdatePlatformFee) (*types.MsgUpdatePlatformFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	controls, err := m.controlsByID(ctx, msg.ControlsId)
	if err != nil {
		return nil, err
	}
	if err := m.assertPlatformFeeAdmin(controls, msg.Signer); err != nil {
		return nil, err
	}

	controls.PlatformFee = msg.PlatformFee
	if err := m.setControls(ctx, controls); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePlatformFeeUpdated,
		sdk.NewAttribute(types.AttributeKeyControlsID, strconv.FormatUint(controls.Id, 10)),
		sdk.NewAttribute(types.AttributeKeyFeeValue, strconv.FormatUint(msg.PlatformFee.PlatformFeeValue, 10)),
		sdk.NewAttribute(types.AttributeKeyFeeFlat, strconv.FormatBool(msg.PlatformFee.IsFeeFlat)),
		sdk.NewAttribute(types.AttributeKeyAdmin, msg.Signer),
	))
	m.Logger(ctx).Info("platform fee updated", "controls_id", controls.Id, "value", msg.PlatformFee.PlatformFeeValue, "flat", msg.PlatformFee.IsFeeFlat)

	return &types.MsgUpdatePlatformFeeResponse{}, nil
}

func (m msgServer) UpdatePlatformFeeSecondaryAdmin(ctx context.Context, msg *types.MsgUpdatePlatformFeeSecondaryAdmin) (*types.MsgUpdatePlatformFeeSecondaryAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	controls, err := m.controlsByID(ctx, msg.ControlsId)
	if err != nil {
		return nil, err
	}
	if err := m.assertPlatformFeeAdmin(controls, msg.Signer); err != nil {
		return nil, err
	}

	controls.PlatformFeeSecondaryAdmin = msg.NewAdmin
	if err := m.setControls(ctx, controls); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSecondaryAdminUpdated,
		sdk.NewAttribute(types.AttributeKeyControlsID, strconv.FormatUint(controls.Id, 10)),
		sdk.NewAttribute(types.AttributeKeyAdmin, msg.NewAdmin),
	))
	m.Logger(ctx).Info("platform fee secondary admin updated", "controls_id", controls.Id, "admin", msg.NewAdmin)

	return &types.MsgUpdatePlatformFeeSecondaryAdminResponse{}, nil
}

func (m msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := m.assertAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := types.ValidateParams(msg.Params); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
	}
	if err := m.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}

func (m msgServer) assertAuthority(authority string) error {
	addr, err := m.addressCodec.StringToBytes(authority)
	if err != nil {
		return errorsmod.Wrap(err, "invalid authority address")
	}
	if !bytes.Equal(m.GetAuthority(), addr) {
		expected, _ := m.addressCodec.BytesToString(m.GetAuthority())
		return errorsmod.Wrapf(types.ErrUnauthorized, "invalid authority; expected %s, got %s", expected, authority)
	}
	return nil
}

// assertAccount checks that signer is the same account as expected.
func (m msgServer) assertAccount(expected, signer, role string) error {
	want, err := m.parseAddress(role, expected)
	if err != nil {
		return err
	}
	got, err := m.parseAddress("signer", signer)
	if err != nil {
		return err
	}
	if !bytes.Equal(want, got) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "signer %s is not the %s", signer, role)
	}
	return nil
}

func (m msgServer) assertPlatformFeeAdmin(controls types.EditionsControls, signer string) error {
	if controls.IsPlatformFeeAdmin(signer) {
		return nil
	}
	for _, admin := range []string{controls.PlatformFeePrimaryAdmin, controls.PlatformFeeSecondaryAdmin} {
		if admin == "" {
			continue
		}
		if err := m.assertAccount(admin, signer, "platform fee admin"); err == nil {
			return nil
		}
	}
	return errorsmod.Wrap(types.ErrUnauthorized, fmt.Sprintf("signer %s is not a platform fee admin of controls %d", signer, controls.Id))
}
