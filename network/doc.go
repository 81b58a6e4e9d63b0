/*
Package network models the synaptic connectivity graph GNATFinder scores
spikes against: a fixed population of N neurons, each with zero or more
presynaptic Synapses.

The Network is read once at startup and never mutated afterward. Lookup
by target neuron is O(1); iteration over a target's presynaptic partners
is O(degree). Two on-disk formats are supported, matching the original
GNATFinder tool family: a canonical "one synapse per line" format shared
by both the first- and second-order tools, and a CSR variant unique to
the first-order tool where the line number encodes the target neuron.
*/
package network
