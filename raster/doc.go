/*
Package raster holds the per-neuron spike trains GNATFinder scores
against a network. A Raster is built once from a spike file and never
mutated after Finalize.

Two access patterns are supported against the same underlying type,
selected by Mode at construction:

  - FirstOrder treats each neuron's spikes as an ordered set (duplicate
    timestamps collapse to one) and supports SpikesInRange, a
    lower-bound/upper-bound binary search query used by the first-order
    driver's 1D temporal window sweep.

  - SecondOrder keeps the raw chronological sequence (duplicates
    tolerated) and exposes PairsOf, which enumerates the k*(k-1)/2
    distinct-timestamp spike pairs the second-order driver indexes into
    a QuadTree.

Both modes build their sequences the same way the reference raster does:
spikes are head-appended as they're read (each prepend copies that
neuron's slice) and the list is reversed once at the end to restore
chronological order.
*/
package raster
