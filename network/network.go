package network

import (
	"errors"
	"fmt"

	"github.com/SynapticNetworks/gnatfinder/spike"
)

// ErrTargetOutOfRange is returned when a synapse names a target neuron id
// that is not part of the declared population. This is always fatal: the
// postsynaptic adjacency list is sized to NCells and cannot grow.
var ErrTargetOutOfRange = errors.New("network: target neuron id out of range")

// ErrSourceOutOfRange is returned when a synapse names a source neuron
// id that is not part of the declared population. An out-of-range
// source would otherwise be accepted silently and only fail later as
// an always-empty raster lookup; rejecting it at construction surfaces
// the bad input where it originates.
var ErrSourceOutOfRange = errors.New("network: source neuron id out of range")

// Network is the synaptic connectivity graph: a fixed population of
// NCells neurons, each with an ordered list of incident presynaptic
// Synapses. Order within a target's list follows insertion order;
// correctness never depends on it.
type Network struct {
	NCells  uint32
	presyns [][]Synapse
}

// New allocates a Network for a fixed population of nCells neurons, each
// starting with no presynaptic partners.
func New(nCells uint32) *Network {
	return &Network{
		NCells:  nCells,
		presyns: make([][]Synapse, nCells),
	}
}

// AddSynapse appends syn to its target neuron's presynaptic list. It
// returns ErrTargetOutOfRange if syn.Tgt >= NCells and ErrSourceOutOfRange
// if syn.Src >= NCells, per spec.md §4.3: an out-of-range source is
// rejected at construction rather than tolerated and left to silently
// fail every downstream raster lookup.
func (n *Network) AddSynapse(syn Synapse) error {
	if uint32(syn.Tgt) >= n.NCells {
		return fmt.Errorf("%w: tgt=%d nCells=%d", ErrTargetOutOfRange, syn.Tgt, n.NCells)
	}
	if uint32(syn.Src) >= n.NCells {
		return fmt.Errorf("%w: src=%d nCells=%d", ErrSourceOutOfRange, syn.Src, n.NCells)
	}
	n.presyns[syn.Tgt] = append(n.presyns[syn.Tgt], syn)
	return nil
}

// PresynsOf returns the ordered list of synapses incident on tgt. It
// returns nil for a neuron with no presynaptic partners or an
// out-of-range id; callers iterating 0..NCells never need to check
// range separately.
func (n *Network) PresynsOf(tgt spike.NeuronID) []Synapse {
	if uint32(tgt) >= n.NCells {
		return nil
	}
	return n.presyns[tgt]
}

// Degree returns the number of presynaptic partners of tgt.
func (n *Network) Degree(tgt spike.NeuronID) int {
	return len(n.PresynsOf(tgt))
}
