package spike

import "fmt"

// NeuronID identifies a neuron within a fixed-size population [0, N).
type NeuronID uint32

// Timestamp is a spike time in ticks. By convention 1ms = 1e6 ticks, but
// nothing in this package depends on that rate.
type Timestamp uint64

// Spike is a single timestamped event from one neuron. Spikes are
// immutable once constructed.
type Spike struct {
	NeuronID  NeuronID
	Timestamp Timestamp
}

// New constructs a Spike.
func New(n NeuronID, ts Timestamp) Spike {
	return Spike{NeuronID: n, Timestamp: ts}
}

// Equal reports whether two spikes carry the same neuron id and timestamp.
func (s Spike) Equal(other Spike) bool {
	return s.NeuronID == other.NeuronID && s.Timestamp == other.Timestamp
}

func (s Spike) String() string {
	return fmt.Sprintf("Spike[%d, %d]", s.NeuronID, s.Timestamp)
}

// Pair is an unordered-source / ordered-coordinate pair of two distinct
// spikes from the same neuron. Its 2D coordinate for quadtree indexing is
// (First.Timestamp, Second.Timestamp).
//
// A Pair is only ever constructed from two spikes sharing a NeuronID and
// distinct timestamps; NewPair validates this at construction rather than
// letting an invalid pair silently enter a QuadTree.
type Pair struct {
	First  Spike
	Second Spike
}

// NewPair builds a SpikePair from two spikes of the same neuron. It
// returns ok=false if the spikes belong to different neurons or share a
// timestamp, mirroring the warnings the reference implementation prints
// in create_spike_pair but surfaced here as a plain boolean so callers
// decide how to treat it (the pair-enumeration loop in raster treats it
// as "skip").
func NewPair(first, second Spike) (Pair, bool) {
	if first.NeuronID != second.NeuronID {
		return Pair{}, false
	}
	if first.Timestamp == second.Timestamp {
		return Pair{}, false
	}
	return Pair{First: first, Second: second}, true
}

// NeuronID returns the shared neuron id of the pair's two spikes.
func (p Pair) NeuronID() NeuronID {
	return p.First.NeuronID
}

// Coord returns the pair's 2D coordinate (t1, t2) for quadtree indexing.
func (p Pair) Coord() (float64, float64) {
	return float64(p.First.Timestamp), float64(p.Second.Timestamp)
}

func (p Pair) String() string {
	return fmt.Sprintf("%s <---> %s", p.First, p.Second)
}
