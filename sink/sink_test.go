package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SynapticNetworks/gnatfinder/spike"
)

func TestFlushesOnOverflowAndFinalize(t *testing.T) {
	var buf bytes.Buffer
	s := NewSize(&buf, 4)

	for i := 0; i < 10; i++ {
		require.NoError(t, s.AddLine(FirstOrderEdge(0, 1, spike.Timestamp(i), spike.Timestamp(i+1))))
	}
	require.NoError(t, s.Finalize())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 10)
}

func TestFirstOrderEdgeFormat(t *testing.T) {
	assert.Equal(t, "0 5 1 9", FirstOrderEdge(0, 1, 5, 9))
}

func TestSecondOrderEdgeFormat(t *testing.T) {
	pre, ok := spike.NewPair(spike.Spike{NeuronID: 0, Timestamp: 1}, spike.Spike{NeuronID: 0, Timestamp: 2})
	require.True(t, ok)
	post, ok := spike.NewPair(spike.Spike{NeuronID: 1, Timestamp: 3}, spike.Spike{NeuronID: 1, Timestamp: 4})
	require.True(t, ok)

	assert.Equal(t, "0 1 2 1 3 4", SecondOrderEdge(pre, post))
}
