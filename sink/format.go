package sink

import (
	"fmt"

	"github.com/SynapticNetworks/gnatfinder/spike"
)

// FirstOrderEdge formats a first-order GNATS edge: pre neuron id, pre
// spike time, post neuron id, post spike time.
func FirstOrderEdge(preID, postID spike.NeuronID, preTime, postTime spike.Timestamp) string {
	return fmt.Sprintf("%d %d %d %d", preID, preTime, postID, postTime)
}

// SecondOrderEdge formats a second-order GNATS edge: pre neuron id,
// both pre spike times, post neuron id, both post spike times.
func SecondOrderEdge(pre, post spike.Pair) string {
	return fmt.Sprintf("%d %d %d %d %d %d",
		pre.NeuronID(), pre.First.Timestamp, pre.Second.Timestamp,
		post.NeuronID(), post.First.Timestamp, post.Second.Timestamp)
}

// Gamma formats a single causal-distance value for CDH output.
func Gamma(g float32) string {
	return fmt.Sprintf("%g", g)
}
