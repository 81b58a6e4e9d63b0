package causal

import (
	"math"

	"github.com/SynapticNetworks/gnatfinder/network"
	"github.com/SynapticNetworks/gnatfinder/spike"
)

// LargeGamma is the sentinel score assigned whenever a post spike
// arrives before a pre spike could possibly have caused it, i.e.
// delta_t < synapse delay. It is deliberately far above any realistic
// threshold so such pairs are always filtered out without a special
// case in the comparison.
const LargeGamma = 999999

// Gamma scores a (tPre, tPost) spike pair against syn: the negative
// log likelihood that tPost was caused by tPre crossing syn, lower
// being more plausible. When tPost arrives strictly before tPre could
// have driven it (deltaT < syn.Delay), Gamma returns LargeGamma so the
// pair never passes a threshold test.
func Gamma(tPre, tPost spike.Timestamp, syn network.Synapse, tau float32) float32 {
	deltaT := float32(int64(tPost) - int64(tPre))

	if deltaT < syn.Delay {
		return LargeGamma
	}

	return syn.NegLogWeight + (deltaT-syn.Delay)/tau
}

// Omega is the positive-intensity counterpart to Gamma: a Heaviside
// gate on causal ordering times an exponentially decaying synaptic
// drive. It is not used by either driver's filtering logic but is
// exposed for diagnostic tooling that wants the non-logarithmic form.
func Omega(tPre, tPost spike.Timestamp, syn network.Synapse, tau float32) float32 {
	deltaT := float32(int64(tPost) - int64(tPre))

	var theta float32
	if deltaT >= syn.Delay {
		theta = 1
	}

	return theta * syn.Weight * float32(math.Exp(float64(-(deltaT-syn.Delay)/tau)))
}

// PassesThreshold reports whether a single spike-pair's Gamma score
// qualifies as a causal edge candidate under thresh.
func PassesThreshold(tPre, tPost spike.Timestamp, syn network.Synapse, tau, thresh float32) bool {
	return Gamma(tPre, tPost, syn, tau) <= thresh
}

// TestForEdge reports whether both spikes of a second-order pair
// independently pass the Gamma threshold against syn: the pair (pre1,
// pre2) is accepted as causing (post1, post2) only if pre1->post1 and
// pre2->post2 both score at or below thresh.
func TestForEdge(pre, post spike.Pair, syn network.Synapse, tau, thresh float32) bool {
	g1 := Gamma(pre.First.Timestamp, post.First.Timestamp, syn, tau)
	g2 := Gamma(pre.Second.Timestamp, post.Second.Timestamp, syn, tau)
	return g1 <= thresh && g2 <= thresh
}
