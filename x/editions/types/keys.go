package types

import "cosmossdk.io/collections"

const (
	ModuleName = "editions"

	StoreKey = ModuleName

	GovModuleName = "gov"
)

var ParamsKey = collections.NewPrefix("editions/params")

var (
	ControlsKey     = collections.NewPrefix("editions/controls/")
	ControlsSeqKey  = collections.NewPrefix("editions/controls_seq")
	ByDeploymentKey = collections.NewPrefix("editions/by_deployment/")
	// PhaseKey stores fixed-size phase records under (controls id, phase index).
	PhaseKey = collections.NewPrefix("editions/phase/")

	// Mint counters: (controls id, wallet) and (controls id, wallet, phase index).
	MinterStatsKey      = collections.NewPrefix("editions/minter_stats/")
	MinterPhaseStatsKey = collections.NewPrefix("editions/minter_stats_phase/")
)

// ControlsStoreKey is the raw store key of controls id, for ABCI store queries.
func ControlsStoreKey(id uint64) ([]byte, error) {
	return collections.EncodeKeyWithPrefix(ControlsKey.Bytes(), collections.Uint64Key, id)
}

// DeploymentStoreKey is the raw store key of the deployment index entry.
func DeploymentStoreKey(deployment string) ([]byte, error) {
	return collections.EncodeKeyWithPrefix(ByDeploymentKey.Bytes(), collections.StringKey, deployment)
}
