package network

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SynapticNetworks/gnatfinder/spike"
)

func TestNewSynapseNegLogWeight(t *testing.T) {
	syn := NewSynapse(0, 1, 1.0, 0)
	assert.InDelta(t, 0.0, syn.NegLogWeight, 1e-6)

	syn2 := NewSynapse(0, 1, float32(math.E), 0)
	assert.InDelta(t, -1.0, syn2.NegLogWeight, 1e-6)
	assert.True(t, syn2.Valid())

	bad := NewSynapse(0, 1, 0, 0)
	assert.False(t, bad.Valid())
}

func TestAddSynapseRejectsOutOfRangeTarget(t *testing.T) {
	net := New(2)
	err := net.AddSynapse(NewSynapse(0, 5, 1.0, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTargetOutOfRange)
}

func TestAddSynapseRejectsOutOfRangeSource(t *testing.T) {
	net := New(2)
	err := net.AddSynapse(NewSynapse(5, 1, 1.0, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceOutOfRange)
}

func TestPresynsOfReturnsInsertionOrder(t *testing.T) {
	net := New(3)
	require.NoError(t, net.AddSynapse(NewSynapse(0, 2, 1.0, 0)))
	require.NoError(t, net.AddSynapse(NewSynapse(1, 2, 0.5, 1)))

	presyns := net.PresynsOf(2)
	require.Len(t, presyns, 2)
	assert.Equal(t, spike.NeuronID(0), presyns[0].Src)
	assert.Equal(t, spike.NeuronID(1), presyns[1].Src)
	assert.Nil(t, net.PresynsOf(0))
}

func TestReadCanonical(t *testing.T) {
	data := "0 1 1.0 0\n1 1 0.5 5\n"
	net, err := ReadCanonical(2, strings.NewReader(data))
	require.NoError(t, err)

	presyns := net.PresynsOf(1)
	require.Len(t, presyns, 2)
	assert.Equal(t, float32(1.0), presyns[0].Weight)
	assert.Equal(t, float32(5), presyns[1].Delay)
}

func TestReadCanonicalRejectsMalformedLine(t *testing.T) {
	_, err := ReadCanonical(2, strings.NewReader("0 1 not-a-float 0\n"))
	assert.Error(t, err)
}

func TestReadCSR(t *testing.T) {
	// target 0 has no edges, target 1 has two edges from 0 and 2.
	data := "0\n2 0 1.0 0 2 0.5 3\n"
	net, err := ReadCSR(3, strings.NewReader(data))
	require.NoError(t, err)

	assert.Empty(t, net.PresynsOf(0))
	presyns := net.PresynsOf(1)
	require.Len(t, presyns, 2)
	assert.Equal(t, spike.NeuronID(0), presyns[0].Src)
	assert.Equal(t, spike.NeuronID(2), presyns[1].Src)
}
