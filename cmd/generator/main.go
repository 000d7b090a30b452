// Command generator builds a workload trace file: a shape tree over n
// nodes, windowed into LINK/LOOKUP (or LINK/CUT/LOOKUP) batches of size
// beta, self-checked against the sequential reference, and written to
// <type>-<shape>-<beta>-<n>.bin.
//
// The cobra command-tree shape and slog usage follow the teacher pack's own
// CLI example (Devi-Muna-CloudSlash/cmd/cloudslash-cli/commands/root.go),
// trimmed to this tool's flat positional-argument surface, since this tool
// needs no subcommands or config file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/arborist-systems/linkcut/workload"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := &cobra.Command{
		Use:   "generator <n> <shape> <type> <beta>",
		Short: "Build a link-cut tree workload trace",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger, args)
		},
		SilenceUsage: true,
	}

	if err := root.Execute(); err != nil {
		logger.Error("generator failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("n must be a positive integer, got %q", args[0])
	}
	shape := args[1]
	kind := args[2]
	beta, err := strconv.ParseUint(args[3], 10, 32)
	if err != nil || beta < 100 {
		return fmt.Errorf("beta must be an integer >= 100, got %q", args[3])
	}

	logger.Info("generating trace", "n", n, "shape", shape, "type", kind, "beta", beta)
	start := time.Now()

	trace, err := workload.Generate(workload.Options{
		N:     n,
		Shape: shape,
		Kind:  kind,
		Beta:  uint32(beta),
		Seed:  123,
	})
	if err != nil {
		return fmt.Errorf("generating trace: %w", err)
	}

	name := fmt.Sprintf("%s-%s-%d-%d.bin", kind, shape, beta, n)
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating trace file %s: %w", name, err)
	}
	defer f.Close()

	written, err := trace.WriteTo(f)
	if err != nil {
		return fmt.Errorf("writing trace file %s: %w", name, err)
	}

	logger.Info("trace written", "path", name, "bytes", written, "batches", len(trace), "elapsed", time.Since(start))
	return nil
}
