package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type BankKeeper interface {
	SpendableCoins(context.Context, sdk.AccAddress) sdk.Coins
	SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error
}

// EditionMinter creates the underlying item once a mint is authorized. It
// runs inside the authorization, so an error rolls the whole mint back.
type EditionMinter interface {
	MintEdition(ctx context.Context, deployment string, minter sdk.AccAddress) error
}
