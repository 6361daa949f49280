package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"editions/x/editions/types"
)

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer { return queryServer{k} }

type queryServer struct{ k Keeper }

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryParamsResponse{Params: q.k.GetParams(ctx)}, nil
}

func (q queryServer) Controls(ctx context.Context, req *types.QueryControlsRequest) (*types.QueryControlsResponse, error) {
	if req == nil || (req.Id == 0 && req.Deployment == "") {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	var (
		controls types.EditionsControls
		err      error
	)
	if req.Id != 0 {
		controls, err = q.k.controlsByID(ctx, req.Id)
	} else {
		controls, err = q.k.controlsByDeployment(ctx, req.Deployment)
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return &types.QueryControlsResponse{Controls: controls}, nil
}

func (q queryServer) Phase(ctx context.Context, req *types.QueryPhaseRequest) (*types.QueryPhaseResponse, error) {
	if req == nil || req.ControlsId == 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	controls, err := q.k.controlsByID(ctx, req.ControlsId)
	if err != nil {
		return nil, toStatus(err)
	}
	phase, err := q.k.ResolvePhase(ctx, controls, req.PhaseIndex)
	if err != nil {
		return nil, toStatus(err)
	}
	return &types.QueryPhaseResponse{Phase: phase}, nil
}

func (q queryServer) Phases(ctx context.Context, req *types.QueryPhasesRequest) (*types.QueryPhasesResponse, error) {
	if req == nil || req.ControlsId == 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if _, err := q.k.controlsByID(ctx, req.ControlsId); err != nil {
		return nil, toStatus(err)
	}
	phases, err := q.k.PhasesOf(ctx, req.ControlsId)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &types.QueryPhasesResponse{Phases: phases}, nil
}

func (q queryServer) MinterStats(ctx context.Context, req *types.QueryMinterStatsRequest) (*types.QueryMinterStatsResponse, error) {
	if req == nil || req.ControlsId == 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	wallet, err := q.k.parseAddress("wallet", req.Wallet)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	controls, err := q.k.controlsByID(ctx, req.ControlsId)
	if err != nil {
		return nil, toStatus(err)
	}
	global, err := q.k.walletStats(ctx, controls.Id, wallet)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := &types.QueryMinterStatsResponse{Global: global, Phases: []types.PhaseMinterStats{}}
	rng := collections.NewSuperPrefixedTripleRange[uint64, sdk.AccAddress, uint32](controls.Id, wallet)
	err = q.k.MinterPhaseStats.Walk(ctx, rng, func(key collections.Triple[uint64, sdk.AccAddress, uint32], count uint64) (bool, error) {
		out.Phases = append(out.Phases, types.PhaseMinterStats{
			PhaseIndex: key.K3(),
			Stats:      types.MinterStats{Wallet: global.Wallet, MintCount: count},
		})
		return false, nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return out, nil
}

func toStatus(err error) error {
	switch {
	case errorsmod.IsOf(err, types.ErrNotFound, types.ErrNoPhasesAdded, types.ErrInvalidPhaseIndex):
		return status.Error(codes.NotFound, err.Error())
	case errorsmod.IsOf(err, types.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
