package types

import "math"

// MinterStats is a mint counter for one wallet, either across a deployment
// or within a single phase of it.
type MinterStats struct {
	Wallet    string `json:"wallet"`
	MintCount uint64 `json:"mint_count"`
}

// Incremented returns the stats advanced by one mint. Counters saturate.
func (s MinterStats) Incremented() MinterStats {
	return MinterStats{Wallet: s.Wallet, MintCount: SaturatingInc(s.MintCount)}
}

func SaturatingInc(v uint64) uint64 {
	if v == math.MaxUint64 {
		return v
	}
	return v + 1
}
