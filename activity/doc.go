/*
Package activity implements the two causal-graph drivers: FirstOrder
walks single spikes against a raster's ordered-set range queries,
SecondOrder walks spike pairs against a per-neuron QuadTree index. Both
drivers are pure iteration over already-loaded network.Network and
raster.Raster values; neither touches a file or a CLI flag directly.
*/
package activity
