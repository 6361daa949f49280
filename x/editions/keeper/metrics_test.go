package keeper_test

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"editions/app/metrics"
	"editions/x/editions/types"
)

func TestMintMetrics(t *testing.T) {
	f := initEditionsFixture(t)
	f.withBlockTime(150)

	id := f.initControls(0, f.bpsFee(500))
	idx := f.addPhase(id, publicPhase(2_000))
	minter := randomAccAddress()
	f.fund(minter, 2_000)

	authorized := metrics.AuthorizationsCounter().WithLabelValues(types.MintStateAuthorized.String())
	fees := metrics.PlatformFeesCounter().WithLabelValues(testDenom, "bps")
	finished := types.ErrPhaseAlreadyFinished
	rejected := metrics.AuthorizationsCounter().WithLabelValues(fmt.Sprintf("%s:%d", finished.Codespace(), finished.ABCICode()))

	beforeAuthorized := testutil.ToFloat64(authorized)
	beforeFees := testutil.ToFloat64(fees)
	beforeRejected := testutil.ToFloat64(rejected)

	_, err := f.keeper.AuthorizeMint(f.ctx, f.mintMsg(id, idx, minter))
	require.NoError(t, err)
	require.Equal(t, beforeAuthorized+1, testutil.ToFloat64(authorized))
	require.Equal(t, beforeFees+100, testutil.ToFloat64(fees))

	f.withBlockTime(300)
	_, err = f.keeper.AuthorizeMint(f.ctx, f.mintMsg(id, idx, minter))
	require.ErrorIs(t, err, types.ErrPhaseAlreadyFinished)
	require.Equal(t, beforeRejected+1, testutil.ToFloat64(rejected))
}

func TestMintMetricsFlatFeeKind(t *testing.T) {
	f := initEditionsFixture(t)
	f.withBlockTime(150)

	fee := f.bpsFee(700)
	fee.IsFeeFlat = true
	id := f.initControls(0, fee)
	idx := f.addPhase(id, publicPhase(10_000))
	minter := randomAccAddress()
	f.fund(minter, 10_700)

	flat := metrics.PlatformFeesCounter().WithLabelValues(testDenom, "flat")
	bps := metrics.PlatformFeesCounter().WithLabelValues(testDenom, "bps")
	beforeFlat, beforeBps := testutil.ToFloat64(flat), testutil.ToFloat64(bps)

	_, err := f.keeper.AuthorizeMint(f.ctx, f.mintMsg(id, idx, minter))
	require.NoError(t, err)
	require.Equal(t, beforeFlat+700, testutil.ToFloat64(flat))
	require.Equal(t, beforeBps, testutil.ToFloat64(bps))
}
