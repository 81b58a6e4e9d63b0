package raster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SynapticNetworks/gnatfinder/spike"
)

func TestAddSpikeOutOfRangeStrictFails(t *testing.T) {
	r := New(1, FirstOrder, true)
	err := r.AddSpike(5, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNeuronOutOfRange)
}

func TestAddSpikeOutOfRangeNonStrictSkips(t *testing.T) {
	r := New(1, FirstOrder, false)
	require.NoError(t, r.AddSpike(5, 0))
	assert.EqualValues(t, 1, r.Skipped)
	assert.EqualValues(t, 0, r.NSpikes)
}

func TestFinalizeOrdersAndDedupsFirstOrder(t *testing.T) {
	r := New(1, FirstOrder, true)
	require.NoError(t, r.AddSpike(0, 5))
	require.NoError(t, r.AddSpike(0, 1))
	require.NoError(t, r.AddSpike(0, 5))
	r.Finalize()

	assert.Equal(t, []spike.Timestamp{1, 5}, r.SpikeList(0))
	assert.EqualValues(t, 1, r.TMin)
	assert.EqualValues(t, 5, r.TMax)
}

func TestSpikesInRange(t *testing.T) {
	r := New(1, FirstOrder, true)
	for _, ts := range []spike.Timestamp{0, 2, 4, 6, 8} {
		require.NoError(t, r.AddSpike(0, ts))
	}
	r.Finalize()

	assert.Equal(t, []spike.Timestamp{2, 4, 6}, r.SpikesInRange(0, 2, 6))
	assert.Empty(t, r.SpikesInRange(0, 9, 10))
}

func TestPairsOfChronologicalOrder(t *testing.T) {
	r := New(1, SecondOrder, true)
	for _, ts := range []spike.Timestamp{1, 2, 3} {
		require.NoError(t, r.AddSpike(0, ts))
	}
	r.Finalize()

	pairs := r.PairsOf(0)
	require.Len(t, pairs, 3)
	assert.Equal(t, spike.Timestamp(1), pairs[0].First.Timestamp)
	assert.Equal(t, spike.Timestamp(2), pairs[0].Second.Timestamp)
	assert.Equal(t, spike.Timestamp(1), pairs[1].First.Timestamp)
	assert.Equal(t, spike.Timestamp(3), pairs[1].Second.Timestamp)
	assert.Equal(t, spike.Timestamp(2), pairs[2].First.Timestamp)
	assert.Equal(t, spike.Timestamp(3), pairs[2].Second.Timestamp)
}

func TestReadSpikesFiltersByTypeInFirstOrderMode(t *testing.T) {
	data := "0 0 0\n1 5 0\n0 a 0\n"
	r := New(1, FirstOrder, true)
	require.NoError(t, ReadSpikes(r, strings.NewReader(data)))

	assert.Equal(t, []spike.Timestamp{0, 0xa}, r.SpikeList(0))
}

func TestReadSpikesKeepsAllTypesInSecondOrderMode(t *testing.T) {
	data := "0 0 0\n1 5 0\n"
	r := New(1, SecondOrder, true)
	require.NoError(t, ReadSpikes(r, strings.NewReader(data)))

	assert.Equal(t, []spike.Timestamp{0, 0x5}, r.SpikeList(0))
}
