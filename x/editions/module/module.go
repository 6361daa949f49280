package editions

import (
	"context"
	stdjson "encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/appmodule"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	json "github.com/goccy/go-json"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"editions/x/editions/keeper"
	"editions/x/editions/types"
)

var (
	_ module.AppModuleBasic = (*AppModule)(nil)
	_ module.AppModule      = (*AppModule)(nil)
	_ module.HasGenesis     = (*AppModule)(nil)

	_ appmodule.AppModule       = (*AppModule)(nil)
	_ appmodule.HasBeginBlocker = (*AppModule)(nil)
	_ appmodule.HasEndBlocker   = (*AppModule)(nil)
)

type AppModule struct {
	keeper keeper.Keeper
}

func NewAppModule(keeper keeper.Keeper) AppModule {
	return AppModule{keeper: keeper}
}

func (AppModule) IsAppModule() {}

func (AppModule) Name() string {
	return types.ModuleName
}

func (AppModule) RegisterLegacyAminoCodec(*codec.LegacyAmino) {}

// RegisterInterfaces is a no-op: messages are plain Go types routed through
// MsgServer, not protobuf Any values.
func (AppModule) RegisterInterfaces(codectypes.InterfaceRegistry) {}

// RegisterGRPCGatewayRoutes serves params and controls straight from the
// module store; both are persisted as JSON.
func (AppModule) RegisterGRPCGatewayRoutes(clientCtx client.Context, mux *runtime.ServeMux) {
	paramsPattern := runtime.MustPattern(runtime.NewPattern(1, []int{2, 0, 2, 1, 2, 2}, []string{"editions", "v1", "params"}, "", runtime.AssumeColonVerbOpt(false)))
	mux.Handle("GET", paramsPattern, func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		bz, _, err := clientCtx.QueryStore(types.ParamsKey.Bytes(), types.StoreKey)
		if err != nil {
			writeGatewayError(w, http.StatusInternalServerError, err)
			return
		}
		if len(bz) == 0 {
			bz, _ = json.Marshal(types.DefaultParams())
		}
		writeGatewayJSON(w, bz)
	})

	controlsPattern := runtime.MustPattern(runtime.NewPattern(1, []int{2, 0, 2, 1, 2, 2}, []string{"editions", "v1", "controls"}, "", runtime.AssumeColonVerbOpt(false)))
	mux.Handle("GET", controlsPattern, func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		q := r.URL.Query()
		var id uint64
		if s := q.Get("id"); s != "" {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				writeGatewayError(w, http.StatusBadRequest, err)
				return
			}
			id = v
		} else if d := q.Get("deployment"); d != "" {
			key, err := types.DeploymentStoreKey(d)
			if err != nil {
				writeGatewayError(w, http.StatusBadRequest, err)
				return
			}
			bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
			if err != nil {
				writeGatewayError(w, http.StatusInternalServerError, err)
				return
			}
			if len(bz) == 0 {
				writeGatewayError(w, http.StatusNotFound, fmt.Errorf("deployment %s not found", d))
				return
			}
			if id, err = collections.Uint64Value.Decode(bz); err != nil {
				writeGatewayError(w, http.StatusInternalServerError, err)
				return
			}
		} else {
			writeGatewayError(w, http.StatusBadRequest, fmt.Errorf("id or deployment required"))
			return
		}

		key, err := types.ControlsStoreKey(id)
		if err != nil {
			writeGatewayError(w, http.StatusBadRequest, err)
			return
		}
		bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
		if err != nil {
			writeGatewayError(w, http.StatusInternalServerError, err)
			return
		}
		if len(bz) == 0 {
			writeGatewayError(w, http.StatusNotFound, fmt.Errorf("controls %d not found", id))
			return
		}
		writeGatewayJSON(w, bz)
	})
}

func writeGatewayJSON(w http.ResponseWriter, bz []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(bz)
}

func writeGatewayError(w http.ResponseWriter, code int, err error) {
	body, _ := json.Marshal(map[string]any{"code": code, "message": err.Error(), "details": []any{}})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func (am AppModule) DefaultGenesis(codec.JSONCodec) stdjson.RawMessage {
	bz, err := json.Marshal(types.DefaultGenesis())
	if err != nil {
		panic(fmt.Errorf("failed to marshal %s default genesis: %w", types.ModuleName, err))
	}
	return bz
}

func (am AppModule) ValidateGenesis(_ codec.JSONCodec, _ client.TxEncodingConfig, bz stdjson.RawMessage) error {
	var genState types.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}

	return types.ValidateGenesis(&genState)
}

func (am AppModule) InitGenesis(ctx sdk.Context, _ codec.JSONCodec, gs stdjson.RawMessage) {
	var genState types.GenesisState
	if err := json.Unmarshal(gs, &genState); err != nil {
		panic(fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err))
	}

	if err := am.keeper.InitGenesis(ctx, genState); err != nil {
		panic(fmt.Errorf("failed to initialize %s genesis state: %w", types.ModuleName, err))
	}
}

func (am AppModule) ExportGenesis(ctx sdk.Context, _ codec.JSONCodec) stdjson.RawMessage {
	genState, err := am.keeper.ExportGenesis(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to export %s genesis state: %w", types.ModuleName, err))
	}

	bz, err := json.Marshal(genState)
	if err != nil {
		panic(fmt.Errorf("failed to marshal %s genesis state: %w", types.ModuleName, err))
	}

	return bz
}

// MsgServer and QueryServer expose the keeper handlers to the host
// application's router.
func (am AppModule) MsgServer() types.MsgServer     { return keeper.NewMsgServerImpl(am.keeper) }
func (am AppModule) QueryServer() types.QueryServer { return keeper.NewQueryServerImpl(am.keeper) }

func (AppModule) ConsensusVersion() uint64 { return 1 }

func (am AppModule) BeginBlock(_ context.Context) error {
	return nil
}

func (am AppModule) EndBlock(_ context.Context) error {
	return nil
}
