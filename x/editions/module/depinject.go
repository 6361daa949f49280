package editions

import (
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"editions/x/editions/keeper"
	"editions/x/editions/types"
)

var _ depinject.OnePerModuleType = AppModule{}

func (AppModule) IsOnePerModuleType() {}

type ModuleInputs struct {
	depinject.In

	StoreService store.KVStoreService
	AddressCodec address.Codec

	BankKeeper    types.BankKeeper
	EditionMinter types.EditionMinter `optional:"true"`
}

type ModuleOutputs struct {
	depinject.Out

	EditionsKeeper keeper.Keeper
	Module         appmodule.AppModule
}

func ProvideModule(in ModuleInputs) ModuleOutputs {
	k := keeper.NewKeeper(
		in.StoreService,
		in.AddressCodec,
		authtypes.NewModuleAddress(types.GovModuleName),
	)
	k.SetBankKeeper(in.BankKeeper)
	if in.EditionMinter != nil {
		k.SetEditionMinter(in.EditionMinter)
	}
	m := NewAppModule(k)

	return ModuleOutputs{EditionsKeeper: k, Module: m}
}
