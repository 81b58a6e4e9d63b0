/*
Package spike defines the immutable event types that flow through the rest
of GNATFinder: a single neuronal Spike, and the SpikePair values used by
the second-order query engine.

Neither type owns any resources and neither depends on raster, network,
or quadtree. This keeps the value layer reusable by every downstream
package without import cycles.
*/
package spike
