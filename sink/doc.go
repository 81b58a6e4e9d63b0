/*
Package sink implements the buffered, line-oriented writer both
drivers use to emit their output: causal graph edges in GNATS mode, or
the raw distribution of causal scores in CDH mode.

A Sink never holds more than Capacity pending lines: AddLine flushes
automatically on overflow, and Finalize flushes whatever remains and
closes the underlying writer if it is closeable. No edge is buffered
twice and none is dropped, but a run that crashes mid-stream leaves
only the edges flushed so far — callers needing all-or-nothing output
should write to a temporary path and rename it into place on success.
*/
package sink
