package types

import "context"

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryControlsRequest looks a deployment up by id, or by Deployment when Id is 0.
type QueryControlsRequest struct {
	Id         uint64 `json:"id,omitempty"`
	Deployment string `json:"deployment,omitempty"`
}

type QueryControlsResponse struct {
	Controls EditionsControls `json:"controls"`
}

type QueryPhaseRequest struct {
	ControlsId uint64 `json:"controls_id"`
	PhaseIndex uint32 `json:"phase_index"`
}

type QueryPhaseResponse struct {
	Phase Phase `json:"phase"`
}

type QueryPhasesRequest struct {
	ControlsId uint64 `json:"controls_id"`
}

type QueryPhasesResponse struct {
	Phases []Phase `json:"phases"`
}

type QueryMinterStatsRequest struct {
	ControlsId uint64 `json:"controls_id"`
	Wallet     string `json:"wallet"`
}

type PhaseMinterStats struct {
	PhaseIndex uint32      `json:"phase_index"`
	Stats      MinterStats `json:"stats"`
}

type QueryMinterStatsResponse struct {
	Global MinterStats        `json:"global"`
	Phases []PhaseMinterStats `json:"phases"`
}

type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Controls(context.Context, *QueryControlsRequest) (*QueryControlsResponse, error)
	Phase(context.Context, *QueryPhaseRequest) (*QueryPhaseResponse, error)
	Phases(context.Context, *QueryPhasesRequest) (*QueryPhasesResponse, error)
	MinterStats(context.Context, *QueryMinterStatsRequest) (*QueryMinterStatsResponse, error)
}
