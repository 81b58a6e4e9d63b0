package network

import (
	"fmt"
	"math"

	"github.com/SynapticNetworks/gnatfinder/spike"
)

// Synapse is a directed, weighted, delayed connection from a presynaptic
// neuron to a postsynaptic neuron.
//
// NegLogWeight is precomputed at construction time so the causal scorer's
// inner loop never calls math.Log: -ln(w) is all γ needs.
type Synapse struct {
	Src          spike.NeuronID
	Tgt          spike.NeuronID
	Weight       float32 // relative weight, w > 0
	Delay        float32 // axonal conduction delay, same units as timestamps
	NegLogWeight float32 // -ln(Weight), precomputed
}

// NewSynapse builds a Synapse and precomputes its negative log weight.
// Weight must be strictly positive; a non-positive weight makes
// NegLogWeight non-finite, which the caller should treat as a
// construction-time parse failure (see network.ReadCanonical).
func NewSynapse(src, tgt spike.NeuronID, weight, delay float32) Synapse {
	return Synapse{
		Src:          src,
		Tgt:          tgt,
		Weight:       weight,
		Delay:        delay,
		NegLogWeight: float32(-math.Log(float64(weight))),
	}
}

// Valid reports whether the synapse's weight produced a finite negative
// log weight, i.e. Weight > 0.
func (s Synapse) Valid() bool {
	return !math.IsNaN(float64(s.NegLogWeight)) && !math.IsInf(float64(s.NegLogWeight), 0)
}

func (s Synapse) String() string {
	return fmt.Sprintf("%d --> %d [%.2f, %.2f]", s.Src, s.Tgt, s.Weight, s.Delay)
}
