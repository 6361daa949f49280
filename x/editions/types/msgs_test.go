package types_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"editions/x/editions/allowlist"
	"editions/x/editions/types"
)

func TestMintRequestKeepsEmptyProof(t *testing.T) {
	in := types.MsgMintWithControls{
		Payer:      randomAccAddress(),
		Minter:     randomAccAddress(),
		ControlsId: 1,
		MintRequest: types.MintRequest{
			MerkleProof: []allowlist.Hash{},
		},
	}
	bz, err := json.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(bz), `"merkle_proof":[]`)

	var out types.MsgMintWithControls
	require.NoError(t, json.Unmarshal(bz, &out))
	require.NotNil(t, out.MerkleProof)
	require.Empty(t, out.MerkleProof)

	// No proof stays distinct from an empty one.
	in.MerkleProof = nil
	bz, err = json.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(bz), `"merkle_proof":null`)

	out = types.MsgMintWithControls{}
	require.NoError(t, json.Unmarshal(bz, &out))
	require.Nil(t, out.MerkleProof)
}

func TestMsgSigners(t *testing.T) {
	creator, payer, cosigner := randomAccAddress(), randomAccAddress(), randomAccAddress()

	require.Equal(t, []string{creator}, (&types.MsgInitialiseControls{Creator: creator}).Signers())
	require.Equal(t, []string{creator}, (&types.MsgAddPhase{Creator: creator}).Signers())
	require.Equal(t, []string{creator}, (&types.MsgUpdatePlatformFee{Signer: creator}).Signers())
	require.Equal(t, []string{creator}, (&types.MsgUpdatePlatformFeeSecondaryAdmin{Signer: creator}).Signers())
	require.Equal(t, []string{creator}, (&types.MsgUpdateParams{Authority: creator}).Signers())

	mint := &types.MsgMintWithControls{Payer: payer}
	require.Equal(t, []string{payer}, mint.Signers())
	mint.Signer = payer
	require.Equal(t, []string{payer}, mint.Signers())
	mint.Signer = cosigner
	require.Equal(t, []string{payer, cosigner}, mint.Signers())
}
