// Command gnat1 computes the first-order causal activity graph (GNATS-1)
// between single spikes connected by a known synapse.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SynapticNetworks/gnatfinder/activity"
	"github.com/SynapticNetworks/gnatfinder/gnatconfig"
	"github.com/SynapticNetworks/gnatfinder/gnatlog"
	"github.com/SynapticNetworks/gnatfinder/network"
	"github.com/SynapticNetworks/gnatfinder/raster"
	"github.com/SynapticNetworks/gnatfinder/sink"
)

const usage = "Usage: gnat1 N_neurons connection_file spike_file func out_file tau thresh causal_radius"

func main() {
	var (
		csrFormat  bool
		configPath string
		devLog     bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:                   "gnat1 N_neurons connection_file spike_file func out_file tau thresh causal_radius",
		Short:                 "Compute the first-order GNAT causal activity graph",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ArbitraryArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The reference tool treats any non-9-argument invocation
			// (8 positional args here, since the program name itself
			// was argv[0] in C) as a usage request, not an error.
			if len(args) != 8 {
				fmt.Println(usage)
				os.Exit(0)
			}
			var strictSet *bool
			if cmd.Flags().Changed("strict") {
				strictSet = &strict
			}
			return run(args, csrFormat, configPath, devLog, strictSet)
		},
	}

	cmd.Flags().BoolVar(&csrFormat, "csr", false, "parse connection_file as CSR instead of canonical format")
	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML file overriding defaults before CLI args apply")
	cmd.Flags().BoolVar(&devLog, "dev-log", false, "use human-readable console logging instead of structured JSON")
	cmd.Flags().BoolVar(&strict, "strict", true, "fatal (true) or warn-and-skip (false) on malformed/out-of-range raster input")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, csrFormat bool, configPath string, devLog bool, strict *bool) error {
	nCells, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("gnat1: invalid N_neurons: %w", err)
	}
	connectionFile := args[1]
	spikeFile := args[2]
	funcSel, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("gnat1: invalid func: %w", err)
	}
	outFile := args[4]
	tau, err := strconv.ParseFloat(args[5], 32)
	if err != nil {
		return fmt.Errorf("gnat1: invalid tau: %w", err)
	}
	thresh, err := strconv.ParseFloat(args[6], 32)
	if err != nil {
		return fmt.Errorf("gnat1: invalid thresh: %w", err)
	}
	radius, err := strconv.ParseFloat(args[7], 32)
	if err != nil {
		return fmt.Errorf("gnat1: invalid causal_radius: %w", err)
	}

	cfg, err := gnatconfig.LoadTOML(gnatconfig.Default(), configPath)
	if err != nil {
		return err
	}
	cfg.NCells = uint32(nCells)
	cfg.Tau = float32(tau)
	cfg.Threshold = float32(thresh)
	cfg.CausalRadius = float32(radius)
	if strict != nil {
		cfg.Strict = *strict
	}
	switch funcSel {
	case 1:
		cfg.OutputMode = gnatconfig.GNATS
	case 2:
		cfg.OutputMode = gnatconfig.CDH
	default:
		return fmt.Errorf("gnat1: func must be 1 (GNATS) or 2 (CDH), got %d", funcSel)
	}

	logFn := gnatlog.New
	if devLog {
		logFn = gnatlog.NewDevelopment
	}
	log, _, err := logFn("gnat1")
	if err != nil {
		return err
	}
	defer log.Sync()
	log.Info("starting run", zap.Uint32("n_cells", cfg.NCells), zap.String("mode", cfg.OutputMode.String()))

	var net *network.Network
	if csrFormat {
		net, err = network.LoadCSRFile(cfg.NCells, connectionFile)
	} else {
		net, err = network.LoadCanonicalFile(cfg.NCells, connectionFile)
	}
	if err != nil {
		return err
	}

	ras, err := raster.LoadSpikeFile(cfg.NCells, raster.FirstOrder, cfg.Strict, spikeFile)
	if err != nil {
		return err
	}

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("gnat1: unable to open output file %s: %w", outFile, err)
	}
	sk := sink.New(out)

	if err := activity.FirstOrder(net, ras, cfg, sk, log); err != nil {
		return err
	}

	log.Info("run complete")
	return nil
}
