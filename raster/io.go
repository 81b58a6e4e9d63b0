package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/SynapticNetworks/gnatfinder/spike"
)

// ReadSpikes populates r from a spike event stream: one line per spike,
// fields `<type> <timestamp_hex> <neuron_id_decimal>`. In FirstOrder
// mode only type == 0 lines are kept; SecondOrder keeps every line
// regardless of type, matching the reference second-order reader. r is
// finalized before return.
func ReadSpikes(r *Raster, rd io.Reader) error {
	scanner := bufio.NewScanner(rd)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return fmt.Errorf("raster: line %d: expected 3 fields, got %d", lineNo, len(fields))
		}

		typ, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return fmt.Errorf("raster: line %d: unable to parse spike type: %w", lineNo, err)
		}
		if r.Mode == FirstOrder && typ != 0 {
			continue
		}

		ts, err := strconv.ParseUint(fields[1], 16, 64)
		if err != nil {
			return fmt.Errorf("raster: line %d: unable to parse hex timestamp: %w", lineNo, err)
		}
		n, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			return fmt.Errorf("raster: line %d: unable to parse neuron id: %w", lineNo, err)
		}

		if err := r.AddSpike(spike.NeuronID(n), spike.Timestamp(ts)); err != nil {
			return fmt.Errorf("raster: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("raster: reading spike file: %w", err)
	}
	r.Finalize()
	return nil
}

// LoadSpikeFile opens path and reads it into a freshly allocated Raster.
func LoadSpikeFile(nCells uint32, mode Mode, strict bool, path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: unable to open spike file %s: %w", path, err)
	}
	defer f.Close()

	r := New(nCells, mode, strict)
	if err := ReadSpikes(r, f); err != nil {
		return nil, err
	}
	return r, nil
}
