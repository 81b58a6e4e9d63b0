package network

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/SynapticNetworks/gnatfinder/spike"
)

// ReadCanonical parses the canonical one-synapse-per-line network format:
//
//	<src_id> <tgt_id> <rel_w> <delay>
//
// src_id and tgt_id are decimal integers; rel_w and delay are
// floating-point. A line that fails to parse, or names a target outside
// [0, nCells), is a fatal parse/domain error per spec.md §7.
func ReadCanonical(nCells uint32, r io.Reader) (*Network, error) {
	net := New(nCells)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("network: line %d: expected 4 fields, got %d", lineNo, len(fields))
		}

		src, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("network: line %d: unable to parse source neuron: %w", lineNo, err)
		}
		tgt, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("network: line %d: unable to parse target neuron: %w", lineNo, err)
		}
		w, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			return nil, fmt.Errorf("network: line %d: unable to parse relative weight: %w", lineNo, err)
		}
		d, err := strconv.ParseFloat(fields[3], 32)
		if err != nil {
			return nil, fmt.Errorf("network: line %d: unable to parse delay: %w", lineNo, err)
		}

		syn := NewSynapse(spike.NeuronID(src), spike.NeuronID(tgt), float32(w), float32(d))
		if !syn.Valid() {
			return nil, fmt.Errorf("network: line %d: relative weight must be positive, got %g", lineNo, w)
		}
		if err := net.AddSynapse(syn); err != nil {
			return nil, fmt.Errorf("network: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("network: reading canonical file: %w", err)
	}
	return net, nil
}

// ReadCSR parses the CSR network format used only by the first-order
// tool: one line per target neuron, the line number (0-indexed) is the
// target id, and the line lists the target's presynaptic edges inline:
//
//	<n_edges> <src_0> <w_0> <d_0> <src_1> <w_1> <d_1> ...
func ReadCSR(nCells uint32, r io.Reader) (*Network, error) {
	net := New(nCells)

	scanner := bufio.NewScanner(r)
	tgt := uint32(0)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			tgt++
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 1 {
			return nil, fmt.Errorf("network: csr line %d: missing edge count", tgt)
		}

		nEdges, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("network: csr line %d: unable to parse edge count: %w", tgt, err)
		}

		want := 1 + int(nEdges)*3
		if len(fields) < want {
			return nil, fmt.Errorf("network: csr line %d: expected %d fields for %d edges, got %d", tgt, want, nEdges, len(fields))
		}

		for e := 0; e < int(nEdges); e++ {
			base := 1 + e*3
			src, err := strconv.ParseUint(fields[base], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("network: csr line %d edge %d: unable to parse source neuron: %w", tgt, e, err)
			}
			w, err := strconv.ParseFloat(fields[base+1], 32)
			if err != nil {
				return nil, fmt.Errorf("network: csr line %d edge %d: unable to parse weight: %w", tgt, e, err)
			}
			d, err := strconv.ParseFloat(fields[base+2], 32)
			if err != nil {
				return nil, fmt.Errorf("network: csr line %d edge %d: unable to parse delay: %w", tgt, e, err)
			}

			syn := NewSynapse(spike.NeuronID(src), spike.NeuronID(tgt), float32(w), float32(d))
			if err := net.AddSynapse(syn); err != nil {
				return nil, fmt.Errorf("network: csr line %d edge %d: %w", tgt, e, err)
			}
		}
		tgt++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("network: reading csr file: %w", err)
	}
	return net, nil
}

// LoadCanonicalFile opens path and parses it as a canonical network file.
func LoadCanonicalFile(nCells uint32, path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: unable to open synapse file %s: %w", path, err)
	}
	defer f.Close()
	return ReadCanonical(nCells, f)
}

// LoadCSRFile opens path and parses it as a CSR network file.
func LoadCSRFile(nCells uint32, path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: unable to open synapse file %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSR(nCells, f)
}
