// Command driver ingests a workload trace file and executes it against one
// link-cut forest backend.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arborist-systems/linkcut/driver"
	"github.com/arborist-systems/linkcut/forest"
	"github.com/arborist-systems/linkcut/lct"
	"github.com/arborist-systems/linkcut/lockcoupling"
	"github.com/arborist-systems/linkcut/pathlock"
	"github.com/arborist-systems/linkcut/workload"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := &cobra.Command{
		Use:   "driver <trace_path> <num_threads> <task_factor> [lock_coupling]",
		Short: "Execute a workload trace against a link-cut forest backend",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger, args)
		},
		SilenceUsage: true,
	}

	if err := root.Execute(); err != nil {
		logger.Error("driver failed", "error", err)
		os.Exit(1)
	}
}

// traceFileParams is the parsed form of a trace filename:
// <type>-<shape>-<beta>-<n>.bin.
type traceFileParams struct {
	opType string
	shape  string
	beta   uint64
	n      int
}

// parseTraceFilename tokenizes the basename on "-". The shape token itself
// may contain a hyphen (e.g. "2-ary"), so rather than a fixed 4-way split
// this takes the first token as type and the last two as beta and n,
// joining whatever remains in the middle back into shape.
func parseTraceFilename(path string) (traceFileParams, error) {
	base := strings.TrimSuffix(filepath.Base(path), ".bin")
	tokens := strings.Split(base, "-")
	if len(tokens) < 4 {
		return traceFileParams{}, fmt.Errorf("trace filename %q does not match <type>-<shape>-<beta>-<n>.bin", path)
	}

	n, err := strconv.Atoi(tokens[len(tokens)-1])
	if err != nil {
		return traceFileParams{}, fmt.Errorf("trace filename %q: node count token is not an integer: %w", path, err)
	}
	beta, err := strconv.ParseUint(tokens[len(tokens)-2], 10, 32)
	if err != nil {
		return traceFileParams{}, fmt.Errorf("trace filename %q: beta token is not an integer: %w", path, err)
	}

	return traceFileParams{
		opType: tokens[0],
		shape:  strings.Join(tokens[1:len(tokens)-2], "-"),
		beta:   beta,
		n:      n,
	}, nil
}

func run(logger *slog.Logger, args []string) error {
	tracePath := args[0]
	numThreads, err := strconv.Atoi(args[1])
	if err != nil || numThreads <= 0 {
		return fmt.Errorf("num_threads must be a positive integer, got %q", args[1])
	}
	taskFactor, err := strconv.Atoi(args[2])
	if err != nil || taskFactor <= 0 {
		return fmt.Errorf("task_factor must be a positive integer, got %q", args[2])
	}

	variant := "sequential"
	if len(args) == 4 {
		switch args[3] {
		case "0":
			variant = "path-lock"
		case "1":
			variant = "lock-coupling"
		default:
			return fmt.Errorf("lock_coupling must be 0 or 1, got %q", args[3])
		}
	}

	params, err := parseTraceFilename(tracePath)
	if err != nil {
		return err
	}

	f, err := os.Open(tracePath)
	if err != nil {
		return fmt.Errorf("opening trace file %s: %w", tracePath, err)
	}
	defer f.Close()

	trace, err := workload.ReadTrace(f)
	if err != nil {
		return fmt.Errorf("reading trace file %s: %w", tracePath, err)
	}

	tree := buildTree(variant, params.n)
	d := driver.New(tree, numThreads, taskFactor)

	logger.Info("running trace",
		"path", tracePath, "type", params.opType, "shape", params.shape,
		"beta", params.beta, "n", params.n, "num_threads", numThreads,
		"task_factor", taskFactor, "variant", variant)

	start := time.Now()
	if err := d.Run(trace); err != nil {
		return fmt.Errorf("running trace: %w", err)
	}
	elapsed := time.Since(start)

	logPath := buildLogName(params, variant, numThreads, taskFactor)
	if err := os.WriteFile(logPath, []byte(fmt.Sprintf("%d ms\n", elapsed.Milliseconds())), 0o644); err != nil {
		return fmt.Errorf("writing log file %s: %w", logPath, err)
	}

	logger.Info("trace complete", "elapsed", elapsed, "log", logPath)
	return nil
}

func buildTree(variant string, n int) lct.Tree {
	switch variant {
	case "path-lock":
		return pathlock.New(n)
	case "lock-coupling":
		return lockcoupling.New(n)
	default:
		return forest.New(n)
	}
}

// buildLogName follows the run log naming convention:
// <type>-p_<parallel?>-w_<shape>-b_<beta>-n_<n>[-t_<threads>-f_<task_factor>-l_<variant>].log
func buildLogName(params traceFileParams, variant string, numThreads, taskFactor int) string {
	parallel := variant != "sequential"
	name := fmt.Sprintf("%s-p_%t-w_%s-b_%d-n_%d", params.opType, parallel, params.shape, params.beta, params.n)
	if parallel {
		name += fmt.Sprintf("-t_%d-f_%d-l_%s", numThreads, taskFactor, variant)
	}
	return name + ".log"
}
