package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"editions/x/editions/types"
)

func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.Params.Set(ctx, genState.Params); err != nil {
		return err
	}

	var maxID uint64
	for _, gc := range genState.Controls {
		c := gc.Controls
		if err := k.setControls(ctx, c); err != nil {
			return err
		}
		if err := k.ByDeployment.Set(ctx, c.Deployment, c.Id); err != nil {
			return err
		}
		for i, p := range gc.Phases {
			if err := k.Phases.Set(ctx, collections.Join(c.Id, uint32(i)), p); err != nil {
				return err
			}
		}
		if c.Id > maxID {
			maxID = c.Id
		}
	}

	for _, s := range genState.MinterStats {
		wallet, err := k.parseAddress("wallet", s.Wallet)
		if err != nil {
			return err
		}
		if s.PhaseIndex == nil {
			err = k.MinterStats.Set(ctx, collections.Join(s.ControlsId, wallet), s.MintCount)
		} else {
			err = k.MinterPhaseStats.Set(ctx, collections.Join3(s.ControlsId, wallet, *s.PhaseIndex), s.MintCount)
		}
		if err != nil {
			return err
		}
	}

	// ControlsSeq holds the number of ids handed out; the next id is seq+1.
	count := genState.ControlsCount
	if count < maxID {
		count = maxID
	}
	return k.ControlsSeq.Set(ctx, count)
}

func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	err := k.Controls.Walk(ctx, nil, func(_ uint64, c types.EditionsControls) (bool, error) {
		phases, err := k.PhasesOf(ctx, c.Id)
		if err != nil {
			return true, err
		}
		genesis.Controls = append(genesis.Controls, types.GenesisControls{Controls: c, Phases: phases})
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("export controls: %w", err)
	}

	err = k.MinterStats.Walk(ctx, nil, func(key collections.Pair[uint64, sdk.AccAddress], count uint64) (bool, error) {
		genesis.MinterStats = append(genesis.MinterStats, types.GenesisMinterStats{
			ControlsId: key.K1(),
			Wallet:     k.walletString(key.K2()),
			MintCount:  count,
		})
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("export minter stats: %w", err)
	}

	err = k.MinterPhaseStats.Walk(ctx, nil, func(key collections.Triple[uint64, sdk.AccAddress, uint32], count uint64) (bool, error) {
		phase := key.K3()
		genesis.MinterStats = append(genesis.MinterStats, types.GenesisMinterStats{
			ControlsId: key.K1(),
			Wallet:     k.walletString(key.K2()),
			PhaseIndex: &phase,
			MintCount:  count,
		})
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("export phase minter stats: %w", err)
	}

	last, err := k.ControlsSeq.Peek(ctx)
	if err != nil {
		return nil, err
	}
	genesis.ControlsCount = last

	return genesis, nil
}
