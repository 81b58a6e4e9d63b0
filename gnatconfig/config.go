package gnatconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// OutputMode selects what a driver writes: the filtered causal graph,
// or the raw unfiltered score distribution.
type OutputMode int

const (
	// GNATS emits accepted causal edges only.
	GNATS OutputMode = iota
	// CDH emits every candidate's gamma score, filtered or not.
	CDH
)

func (m OutputMode) String() string {
	if m == CDH {
		return "CDH"
	}
	return "GNATS"
}

// =================================================================================
// SHARED SCORING CONFIGURATION
// =================================================================================

// Config holds the parameters common to both the first-order and
// second-order drivers.
type Config struct {
	// Population
	NCells uint32 `toml:"n_cells"` // declared neuron population size

	// Causal scoring
	Tau          float32 `toml:"tau"`           // exponential decay time constant
	Threshold    float32 `toml:"threshold"`     // gamma threshold for edge acceptance
	CausalRadius float32 `toml:"causal_radius"` // query window half-width around a candidate spike/pair

	// Strictness
	Strict bool `toml:"strict"` // fatal (true) vs warn-and-skip (false) on malformed/out-of-range input

	// Output
	OutputMode OutputMode `toml:"-"` // set by CLI flags, never by TOML (tool-specific meaning)
	OutputPath string     `toml:"output_path"`

	// SinkCapacity is read from the TOML file only; neither gnat1 nor
	// gnat2 passes it to the output sink, which always flushes in
	// batches of sink.Capacity.
	SinkCapacity int `toml:"sink_capacity"`
}

// Default returns a Config with the reference tool's built-in
// defaults: strict input handling, GNATS output mode, no TOML or CLI
// overrides applied yet.
func Default() Config {
	return Config{
		Tau:          1.0,
		Threshold:    1.0,
		CausalRadius: 0,
		Strict:       true,
		OutputMode:   GNATS,
	}
}

// LoadTOML reads path and merges it onto cfg's current values. Only
// fields present in the file are overridden; a missing file is not an
// error, since a TOML override is always optional.
func LoadTOML(cfg Config, path string) (Config, error) {
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("gnatconfig: decoding %s: %w", path, err)
	}
	return cfg, nil
}
