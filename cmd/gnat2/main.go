// Command gnat2 computes the second-order causal activity graph
// (GNATS-2) between pairs of same-neuron spikes connected by a known
// synapse.
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

// outputFile is hard-coded, matching the reference second-order tool:
// there is no out_file positional argument for gnat2.
const outputFile = "gnat2_out.txt"

const usage = "Usage: gnat2 N_cells spike_file network_file tau thresh causal_radius"

func main() {
	var (
		configPath string
		devLog     bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:                   "gnat2 N_cells spike_file network_file tau thresh causal_radius",
		Short:                 "Compute the second-order GNAT causal activity graph",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ArbitraryArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 6 {
				fmt.Println(usage)
				os.Exit(-1)
			}
			var strictSet *bool
			if cmd.Flags().Changed("strict") {
				strictSet = &strict
			}
			return run(args, configPath, devLog, strictSet)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML file overriding defaults before CLI args apply")
	cmd.Flags().BoolVar(&devLog, "dev-log", false, "use human-readable console logging instead of structured JSON")
	cmd.Flags().BoolVar(&strict, "strict", true, "fatal (true) or warn-and-skip (false) on malformed/out-of-range raster input")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, configPath string, devLog bool, strict *bool) error {
	nCells, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("gnat2: invalid N_cells: %w", err)
	}
	spikeFile := args[1]
	networkFile := args[2]
	tau, err := strconv.ParseFloat(args[3], 32)
	if err != nil {
		return fmt.Errorf("gnat2: invalid tau: %w", err)
	}
	thresh, err := strconv.ParseFloat(args[4], 32)
	if err != nil {
		return fmt.Errorf("gnat2: invalid thresh: %w", err)
	}
	radius, err := strconv.ParseFloat(args[5], 32)
	if err != nil {
		return fmt.Errorf("gnat2: invalid causal_radius: %w", err)
	}

	cfg, err := gnatconfig.LoadTOML(gnatconfig.Default(), configPath)
	if err != nil {
		return err
	}
	cfg.NCells = uint32(nCells)
	cfg.Tau = float32(tau)
	cfg.Threshold = float32(thresh)
	cfg.CausalRadius = float32(radius)
	cfg.OutputMode = gnatconfig.GNATS
	if strict != nil {
		cfg.Strict = *strict
	}

	logFn := gnatlog.New
	if devLog {
		logFn = gnatlog.NewDevelopment
	}
	log, runID, err := logFn("gnat2")
	if err != nil {
		return err
	}
	defer log.Sync()
	log.Info("starting run", zap.Uint32("n_cells", cfg.NCells), zap.String("run_id", runID))

	net, err := network.LoadCanonicalFile(cfg.NCells, networkFile)
	if err != nil {
		return err
	}

	ras, err := raster.LoadSpikeFile(cfg.NCells, raster.SecondOrder, cfg.Strict, spikeFile)
	if err != nil {
		return err
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("gnat2: unable to open output file %s: %w", outputFile, err)
	}
	sk := sink.New(out)

	if err := activity.SecondOrder(net, ras, cfg, sk, log); err != nil {
		return err
	}

	log.Info("run complete")
	return nil
}
