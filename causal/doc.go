/*
Package causal implements the scoring function GNATFinder uses to turn
a spike-time difference over a known synapse into a causal distance:
lower is more plausible, and a candidate edge survives only if its
score is at or below a threshold.

Gamma is the function actually used for thresholding; it is built so
its hot path needs no math.Log or math.Exp call, since the synapse
already carries a precomputed negative log weight. Omega is a secondary,
positive-intensity form kept for diagnostics: neither the drivers nor
the gnat1/gnat2 commands call it.
*/
package causal
