package activity

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SynapticNetworks/gnatfinder/gnatconfig"
	"github.com/SynapticNetworks/gnatfinder/network"
	"github.com/SynapticNetworks/gnatfinder/raster"
	"github.com/SynapticNetworks/gnatfinder/sink"
	"github.com/SynapticNetworks/gnatfinder/spike"
)

func buildScenario(t *testing.T, nCells uint32, synapses [][4]float32, spikes [][2]uint64) (*network.Network, *raster.Raster) {
	t.Helper()

	net := network.New(nCells)
	for _, s := range synapses {
		require.NoError(t, net.AddSynapse(network.NewSynapse(
			spike.NeuronID(s[0]), spike.NeuronID(s[1]), s[2], s[3])))
	}

	ras := raster.New(nCells, raster.FirstOrder, true)
	for _, sp := range spikes {
		require.NoError(t, ras.AddSpike(spike.NeuronID(sp[0]), spike.Timestamp(sp[1])))
	}
	ras.Finalize()

	return net, ras
}

func TestScenarioASingleEdgeBelowThenAboveThreshold(t *testing.T) {
	net, ras := buildScenario(t, 2,
		[][4]float32{{0, 1, 1.0, 0}},
		[][2]uint64{{0, 0x0}, {1, 0x1}},
	)

	cfg := gnatconfig.Default()
	cfg.Tau, cfg.Threshold, cfg.CausalRadius = 1, 0.5, 10

	var buf bytes.Buffer
	require.NoError(t, FirstOrder(net, ras, cfg, sink.New(&buf), zap.NewNop()))
	assert.Empty(t, buf.String())

	cfg.Threshold = 1.5
	buf.Reset()
	require.NoError(t, FirstOrder(net, ras, cfg, sink.New(&buf), zap.NewNop()))
	assert.Equal(t, "0 0 1 1\n", buf.String())
}

func TestScenarioBBelowDelayNeverEmits(t *testing.T) {
	net, ras := buildScenario(t, 2,
		[][4]float32{{0, 1, 1.0, 5}},
		[][2]uint64{{0, 0x0}, {1, 0x3}},
	)

	cfg := gnatconfig.Default()
	cfg.Tau, cfg.Threshold, cfg.CausalRadius = 1, 100, 100

	var buf bytes.Buffer
	require.NoError(t, FirstOrder(net, ras, cfg, sink.New(&buf), zap.NewNop()))
	assert.Empty(t, buf.String())
}

func TestScenarioCFutureSpikeExcludedByWindow(t *testing.T) {
	net, ras := buildScenario(t, 2,
		[][4]float32{{0, 1, 1.0, 0}},
		[][2]uint64{{0, 0xA}, {1, 0x0}},
	)

	cfg := gnatconfig.Default()
	cfg.Tau, cfg.Threshold, cfg.CausalRadius = 1, 100, 100

	var buf bytes.Buffer
	require.NoError(t, FirstOrder(net, ras, cfg, sink.New(&buf), zap.NewNop()))
	assert.Empty(t, buf.String())
}

func TestScenarioESecondOrderEdge(t *testing.T) {
	net := network.New(2)
	require.NoError(t, net.AddSynapse(network.NewSynapse(0, 1, 1.0, 0)))

	ras := raster.New(2, raster.SecondOrder, true)
	require.NoError(t, ras.AddSpike(0, 0))
	require.NoError(t, ras.AddSpike(0, 1))
	require.NoError(t, ras.AddSpike(1, 0))
	require.NoError(t, ras.AddSpike(1, 1))
	ras.Finalize()

	cfg := gnatconfig.Default()
	cfg.Tau, cfg.Threshold, cfg.CausalRadius = 1, 0.5, 10

	var buf bytes.Buffer
	require.NoError(t, SecondOrder(net, ras, cfg, sink.New(&buf), zap.NewNop()))
	assert.Equal(t, "0 0 1 1 0 1", strings.TrimSpace(buf.String()))
}
