package activity

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SynapticNetworks/gnatfinder/causal"
	"github.com/SynapticNetworks/gnatfinder/gnatconfig"
	"github.com/SynapticNetworks/gnatfinder/network"
	"github.com/SynapticNetworks/gnatfinder/raster"
	"github.com/SynapticNetworks/gnatfinder/sink"
	"github.com/SynapticNetworks/gnatfinder/spike"
)

// FirstOrder walks every postsynaptic neuron's spikes against each
// presynaptic partner's spike history within [t_q - R, t_q], scores
// every candidate with causal.Gamma, and writes GNATS edges or raw CDH
// scores to sk depending on cfg.OutputMode.
func FirstOrder(net *network.Network, ras *raster.Raster, cfg gnatconfig.Config, sk *sink.Sink, log *zap.Logger) error {
	radius := spike.Timestamp(cfg.CausalRadius)

	for p := spike.NeuronID(0); uint32(p) < net.NCells; p++ {
		if uint32(p)%10 == 0 {
			log.Info("cell progress", zap.Uint32("cell", uint32(p)), zap.Uint32("total", net.NCells))
		}

		for _, tq := range ras.SpikeList(p) {
			pastLimit := spike.Timestamp(0)
			if tq > radius {
				pastLimit = tq - radius
			}

			for _, syn := range net.PresynsOf(p) {
				for _, tp := range ras.SpikesInRange(syn.Src, pastLimit, tq) {
					g := causal.Gamma(tp, tq, syn, cfg.Tau)

					switch cfg.OutputMode {
					case gnatconfig.GNATS:
						if g <= cfg.Threshold {
							if err := sk.AddLine(sink.FirstOrderEdge(syn.Src, p, tp, tq)); err != nil {
								return fmt.Errorf("activity: first-order: %w", err)
							}
						}
					case gnatconfig.CDH:
						if err := sk.AddLine(sink.Gamma(g)); err != nil {
							return fmt.Errorf("activity: first-order: %w", err)
						}
					}
				}
			}
		}
	}

	return sk.Finalize()
}
