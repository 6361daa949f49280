package keeper

import (
	"context"
	"fmt"
	"math"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"editions/x/editions/types"
)

// PhasesOf returns the phase registry of a deployment in index order.
func (k Keeper) PhasesOf(ctx context.Context, controlsID uint64) ([]types.Phase, error) {
	iter, err := k.Phases.Iterate(ctx, collections.NewPrefixedPairRange[uint64, uint32](controlsID))
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	return iter.Values()
}

// ResolvePhase returns phase index of a deployment.
func (k Keeper) ResolvePhase(ctx context.Context, controls types.EditionsControls, index uint32) (types.Phase, error) {
	phases, err := k.PhasesOf(ctx, controls.Id)
	if err != nil {
		return types.Phase{}, err
	}
	if len(phases) != int(controls.PhaseCount) {
		return types.Phase{}, fmt.Errorf("controls %d: registry holds %d phases, expected %d", controls.Id, len(phases), controls.PhaseCount)
	}
	return types.ResolvePhase(phases, index)
}

// appendPhase adds phase at the end of the registry and returns its index.
// Existing entries are never rewritten.
func (k Keeper) appendPhase(ctx context.Context, controls *types.EditionsControls, phase types.Phase) (uint32, error) {
	if controls.PhaseCount == math.MaxUint32 {
		return 0, errorsmod.Wrap(types.ErrInvalidRequest, "phase registry is full")
	}
	index := controls.PhaseCount
	if err := k.Phases.Set(ctx, collections.Join(controls.Id, index), phase); err != nil {
		return 0, err
	}
	controls.PhaseCount++
	if err := k.setControls(ctx, *controls); err != nil {
		return 0, err
	}
	return index, nil
}
