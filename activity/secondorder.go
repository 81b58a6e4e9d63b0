package activity

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SynapticNetworks/gnatfinder/causal"
	"github.com/SynapticNetworks/gnatfinder/gnatconfig"
	"github.com/SynapticNetworks/gnatfinder/network"
	"github.com/SynapticNetworks/gnatfinder/quadtree"
	"github.com/SynapticNetworks/gnatfinder/raster"
	"github.com/SynapticNetworks/gnatfinder/sink"
	"github.com/SynapticNetworks/gnatfinder/spike"
)

// buildTrees constructs one QuadTree per neuron, all sharing the same
// top-level boundary derived from the raster's global time range, each
// populated with that neuron's distinct-timestamp spike pairs. The
// half-width is padded by one tick so that pairs involving a spike at
// TMin or TMax lie strictly inside the root box.
func buildTrees(net *network.Network, ras *raster.Raster) []*quadtree.QuadTree {
	cx := float64(ras.TMin+ras.TMax) / 2
	cy := cx
	hw := float64(ras.TMax-ras.TMin)/2 + 1

	trees := make([]*quadtree.QuadTree, net.NCells)
	for n := spike.NeuronID(0); uint32(n) < net.NCells; n++ {
		qt := quadtree.New(quadtree.NewBoundingBox(cx, cy, hw))
		for _, p := range ras.PairsOf(n) {
			qt.Insert(p)
		}
		trees[n] = qt
	}
	return trees
}

// SecondOrder walks every postsynaptic neuron's spike pairs, queries
// each presynaptic partner's QuadTree for nearby candidate pairs, and
// writes accepted edges to sk. cfg.OutputMode is not consulted: the
// reference second-order tool only ever emits GNATS edges.
func SecondOrder(net *network.Network, ras *raster.Raster, cfg gnatconfig.Config, sk *sink.Sink, log *zap.Logger) error {
	trees := buildTrees(net, ras)

	for p := spike.NeuronID(0); uint32(p) < net.NCells; p++ {
		if uint32(p)%10 == 0 {
			log.Info("cell progress", zap.Uint32("cell", uint32(p)), zap.Uint32("total", net.NCells))
		}

		for _, postPair := range ras.PairsOf(p) {
			q1, q2 := postPair.Coord()
			queryBox := quadtree.NewBoundingBox(q1, q2, float64(cfg.CausalRadius))

			for _, syn := range net.PresynsOf(p) {
				presynTree := trees[syn.Src]

				var mapErr error
				presynTree.MapRange(queryBox, func(prePair spike.Pair) {
					if mapErr != nil {
						return
					}
					if !causal.TestForEdge(prePair, postPair, syn, cfg.Tau, cfg.Threshold) {
						return
					}
					if err := sk.AddLine(sink.SecondOrderEdge(prePair, postPair)); err != nil {
						mapErr = err
					}
				})
				if mapErr != nil {
					return fmt.Errorf("activity: second-order: %w", mapErr)
				}
			}
		}
	}

	return sk.Finalize()
}
