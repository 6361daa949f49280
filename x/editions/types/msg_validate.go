package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

func (m *MsgInitialiseControls) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid creator address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Treasury); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid treasury address (%s)", err)
	}
	deployment := strings.TrimSpace(m.Deployment)
	if deployment == "" {
		return sdkerrors.ErrInvalidRequest.Wrap("deployment required")
	}
	if len(deployment) > DeploymentMaxLen {
		return sdkerrors.ErrInvalidRequest.Wrapf("deployment exceeds %d bytes", DeploymentMaxLen)
	}
	if m.Cosigner != "" {
		if _, err := sdk.AccAddressFromBech32(m.Cosigner); err != nil {
			return sdkerrors.ErrInvalidAddress.Wrapf("invalid cosigner address (%s)", err)
		}
	}
	return m.PlatformFee.Validate()
}

func (m *MsgAddPhase) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid creator address (%s)", err)
	}
	if m.ControlsId == 0 {
		return sdkerrors.ErrInvalidRequest.Wrap("controls_id required")
	}
	if m.Phase.PriceToken == "" {
		return sdkerrors.ErrInvalidRequest.Wrap("price_token required")
	}
	if len(m.Phase.PriceToken) > PriceTokenMaxLen {
		return sdkerrors.ErrInvalidRequest.Wrapf("price_token exceeds %d bytes", PriceTokenMaxLen)
	}
	if m.Phase.IsPrivate && m.Phase.MerkleRoot == nil {
		return ErrMerkleRootNotSet.Wrap("merkle root must be provided for private phases")
	}
	return nil
}

func (m *MsgMintWithControls) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Payer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid payer address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Minter); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid minter address (%s)", err)
	}
	if m.Signer != "" {
		if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
			return sdkerrors.ErrInvalidAddress.Wrapf("invalid signer address (%s)", err)
		}
	}
	if m.PlatformFeeRecipient != "" {
		if _, err := sdk.AccAddressFromBech32(m.PlatformFeeRecipient); err != nil {
			return sdkerrors.ErrInvalidAddress.Wrapf("invalid platform fee recipient address (%s)", err)
		}
	}
	if m.ControlsId == 0 {
		return sdkerrors.ErrInvalidRequest.Wrap("controls_id required")
	}
	return nil
}

func (m *MsgUpdatePlatformFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid signer address (%s)", err)
	}
	if m.ControlsId == 0 {
		return sdkerrors.ErrInvalidRequest.Wrap("controls_id required")
	}
	return m.PlatformFee.Validate()
}

func (m *MsgUpdatePlatformFeeSecondaryAdmin) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid signer address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.NewAdmin); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid new admin address (%s)", err)
	}
	if m.ControlsId == 0 {
		return sdkerrors.ErrInvalidRequest.Wrap("controls_id required")
	}
	return nil
}

func (m *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	return ValidateParams(m.Params)
}
