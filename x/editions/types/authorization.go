package types

// MintState is the stage an authorization has reached.
type MintState int

const (
	MintStateRequested MintState = iota
	MintStatePhaseValidated
	MintStatePriceResolved
	MintStateCountersAdvanced
	MintStateFeesSplit
	MintStateAuthorized
	MintStateRejected
)

var mintStateNames = map[MintState]string{
	MintStateRequested:        "requested",
	MintStatePhaseValidated:   "phase_validated",
	MintStatePriceResolved:    "price_resolved",
	MintStateCountersAdvanced: "counters_advanced",
	MintStateFeesSplit:        "fees_split",
	MintStateAuthorized:       "authorized",
	MintStateRejected:         "rejected",
}

func (s MintState) String() string {
	if name, ok := mintStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Transfer is one value movement issued to the ledger.
type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`
}

// MintAuthorization is returned for an authorized mint. Counters hold the
// values after this mint was applied.
type MintAuthorization struct {
	ControlsId        uint64     `json:"controls_id"`
	PhaseIndex        uint32     `json:"phase_index"`
	Minter            string     `json:"minter"`
	Price             uint64     `json:"price"`
	PriceToken        string     `json:"price_token"`
	AllowList         bool       `json:"allow_list"`
	WalletMints       uint64     `json:"wallet_mints"`
	WalletPhaseMints  uint64     `json:"wallet_phase_mints"`
	PhaseCurrentMints uint64     `json:"phase_current_mints"`
	Fees              FeeSplit   `json:"fees"`
	Transfers         []Transfer `json:"transfers"`
	State             MintState  `json:"state"`
}
