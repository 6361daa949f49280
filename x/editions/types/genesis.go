package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type GenesisControls struct {
	Controls EditionsControls `json:"controls"`
	Phases   []Phase          `json:"phases"`
}

type GenesisMinterStats struct {
	ControlsId uint64 `json:"controls_id"`
	Wallet     string `json:"wallet"`
	// PhaseIndex is nil for the deployment-wide counter.
	PhaseIndex *uint32 `json:"phase_index,omitempty"`
	MintCount  uint64  `json:"mint_count"`
}

type GenesisState struct {
	Params        Params               `json:"params"`
	Controls      []GenesisControls    `json:"controls"`
	MinterStats   []GenesisMinterStats `json:"minter_stats"`
	ControlsCount uint64               `json:"controls_count"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		Controls:      []GenesisControls{},
		MinterStats:   []GenesisMinterStats{},
		ControlsCount: 0,
	}
}

func ValidateGenesis(gs *GenesisState) error {
	if gs == nil {
		return fmt.Errorf("genesis state cannot be nil")
	}
	if err := ValidateParams(gs.Params); err != nil {
		return err
	}

	ids := make(map[uint64]struct{})
	deployments := make(map[string]struct{})
	for _, gc := range gs.Controls {
		c := gc.Controls
		if c.Id == 0 {
			return fmt.Errorf("controls id must be > 0")
		}
		if c.Id > gs.ControlsCount {
			return fmt.Errorf("controls id %d exceeds controls_count %d", c.Id, gs.ControlsCount)
		}
		if _, ok := ids[c.Id]; ok {
			return fmt.Errorf("duplicate controls id %d", c.Id)
		}
		ids[c.Id] = struct{}{}
		if _, ok := deployments[c.Deployment]; ok {
			return fmt.Errorf("duplicate deployment %s", c.Deployment)
		}
		deployments[c.Deployment] = struct{}{}
		if _, err := sdk.AccAddressFromBech32(c.Treasury); err != nil {
			return fmt.Errorf("controls %d: invalid treasury: %w", c.Id, err)
		}
		if err := c.PlatformFee.Validate(); err != nil {
			return fmt.Errorf("controls %d: %w", c.Id, err)
		}
		if uint64(c.PhaseCount) != uint64(len(gc.Phases)) {
			return fmt.Errorf("controls %d: phase_count %d does not match %d phases", c.Id, c.PhaseCount, len(gc.Phases))
		}
		for i, p := range gc.Phases {
			if err := p.ValidateStored(); err != nil {
				return fmt.Errorf("controls %d phase %d: %w", c.Id, i, err)
			}
		}
	}

	for _, s := range gs.MinterStats {
		if _, ok := ids[s.ControlsId]; !ok {
			return fmt.Errorf("minter stats reference unknown controls %d", s.ControlsId)
		}
		if _, err := sdk.AccAddressFromBech32(s.Wallet); err != nil {
			return fmt.Errorf("minter stats: invalid wallet: %w", err)
		}
	}
	return nil
}
