package types

import (
	"context"

	"editions/x/editions/allowlist"
)

type MsgInitialiseControls struct {
	Creator           string    `json:"creator"`
	Deployment        string    `json:"deployment"`
	Treasury          string    `json:"treasury"`
	MaxMintsPerWallet uint64    `json:"max_mints_per_wallet"`
	Cosigner          string    `json:"cosigner,omitempty"`
	PlatformFee       FeeConfig `json:"platform_fee"`
}

type MsgInitialiseControlsResponse struct {
	ControlsId uint64 `json:"controls_id"`
}

type MsgAddPhase struct {
	Creator    string               `json:"creator"`
	ControlsId uint64               `json:"controls_id"`
	Phase      InitialisePhaseInput `json:"phase"`
}

type MsgAddPhaseResponse struct {
	PhaseIndex uint32 `json:"phase_index"`
}

// MintRequest is the eligibility part of a mint. A nil MerkleProof means no
// proof was supplied; an empty one is a valid proof for a single-entry list.
type MintRequest struct {
	PhaseIndex         uint32           `json:"phase_index"`
	MerkleProof        []allowlist.Hash `json:"merkle_proof"`
	AllowListPrice     *uint64          `json:"allow_list_price,omitempty"`
	AllowListMaxClaims *uint64          `json:"allow_list_max_claims,omitempty"`
}

type MsgMintWithControls struct {
	// Payer funds the mint price.
	Payer string `json:"payer"`
	// Signer co-signs the mint; empty means Payer.
	Signer string `json:"signer,omitempty"`
	// Minter receives the item and is the wallet the quotas apply to.
	Minter     string `json:"minter"`
	ControlsId uint64 `json:"controls_id"`
	// PlatformFeeRecipient is the account the platform fee is paid to.
	PlatformFeeRecipient string `json:"platform_fee_recipient"`
	MintRequest
}

func (m *MsgMintWithControls) SignerOrPayer() string {
	if m.Signer != "" {
		return m.Signer
	}
	return m.Payer
}

type MsgMintWithControlsResponse struct {
	Authorization MintAuthorization `json:"authorization"`
}

type MsgUpdatePlatformFee struct {
	Signer      string                `json:"signer"`
	ControlsId  uint64                `json:"controls_id"`
	PlatformFee UpdatePlatformFeeArgs `json:"platform_fee"`
}

type MsgUpdatePlatformFeeResponse struct{}

type MsgUpdatePlatformFeeSecondaryAdmin struct {
	Signer     string `json:"signer"`
	ControlsId uint64 `json:"controls_id"`
	NewAdmin   string `json:"new_admin"`
}

type MsgUpdatePlatformFeeSecondaryAdminResponse struct{}

type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgServer executes editions messages. The account fields named by each
// message's Signers method are trusted as given: the host must have checked
// them against the transaction signatures before dispatching here.
type MsgServer interface {
	InitialiseControls(context.Context, *MsgInitialiseControls) (*MsgInitialiseControlsResponse, error)
	AddPhase(context.Context, *MsgAddPhase) (*MsgAddPhaseResponse, error)
	MintWithControls(context.Context, *MsgMintWithControls) (*MsgMintWithControlsResponse, error)
	UpdatePlatformFee(context.Context, *MsgUpdatePlatformFee) (*MsgUpdatePlatformFeeResponse, error)
	UpdatePlatformFeeSecondaryAdmin(context.Context, *MsgUpdatePlatformFeeSecondaryAdmin) (*MsgUpdatePlatformFeeSecondaryAdminResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// Signers lists the accounts that must have signed the message.
func (m *MsgInitialiseControls) Signers() []string { return []string{m.Creator} }

func (m *MsgAddPhase) Signers() []string { return []string{m.Creator} }

// Signers of a mint are the payer, whose funds move, and the co-signer when
// it differs from the payer.
func (m *MsgMintWithControls) Signers() []string {
	if signer := m.SignerOrPayer(); signer != m.Payer {
		return []string{m.Payer, signer}
	}
	return []string{m.Payer}
}

func (m *MsgUpdatePlatformFee) Signers() []string { return []string{m.Signer} }

func (m *MsgUpdatePlatformFeeSecondaryAdmin) Signers() []string { return []string{m.Signer} }

func (m *MsgUpdateParams) Signers() []string { return []string{m.Authority} }
