package workload

import (
	"fmt"
	"strconv"
	"strings"
)

// Options configures one call to Generate, mirroring
// original_source/build_concurrent_workload.cc's buildConcurrentWorkload
// positional arguments (n, tree_type, workload_type, β), plus an explicit
// Seed so a trace is reproducible without depending on process start time.
type Options struct {
	N     int
	Shape string // "random" or "<k>-ary"
	Kind  string // "lookup" or "cut"
	Beta  uint32
	Seed  uint64
}

// Generate builds a trace: a shape tree over N labels, shuffled and
// trimmed to half its edges, then windowed into LINK/LOOKUP (or
// LINK/CUT/LOOKUP) batches of size Options.Beta, validated by replaying it
// against the sequential reference before returning.
func Generate(opts Options) (Trace, error) {
	if opts.Beta < 100 {
		return nil, fmt.Errorf("workload: batch size beta must be >= 100, got %d", opts.Beta)
	}
	if opts.N <= 0 {
		return nil, fmt.Errorf("workload: n must be positive, got %d", opts.N)
	}

	edges, err := buildShape(opts.N, opts.Shape, opts.Seed)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("workload: shape %q produced no edges for n=%d", opts.Shape, opts.N)
	}

	r := newRNG(opts.Seed ^ 0x9E3779B97F4A7C15)
	shuffle(edges, r)
	edges = edges[:len(edges)/2]

	var trace Trace
	switch opts.Kind {
	case "lookup":
		trace = buildLookupWorkload(opts.N, edges, opts.Beta)
	case "cut":
		trace = buildCutWorkload(opts.N, edges, opts.Beta)
	default:
		return nil, fmt.Errorf("workload: unknown workload type %q", opts.Kind)
	}

	if err := selfCheck(opts.N, trace); err != nil {
		return nil, fmt.Errorf("workload: generated trace failed self-check: %w", err)
	}
	return trace, nil
}

// buildShape dispatches to buildRandomTree or buildKAryTree per the
// "<shape>" token ("random" or "<k>-ary").
func buildShape(n int, shape string, seed uint64) ([][2]uint32, error) {
	if shape == "random" {
		return buildRandomTree(n, seed), nil
	}
	k, ok := parseKAry(shape)
	if !ok {
		return nil, fmt.Errorf("workload: unrecognized shape %q (want \"random\" or \"<k>-ary\")", shape)
	}
	return buildKAryTree(n, k), nil
}

func parseKAry(shape string) (int, bool) {
	prefix, suffix, found := strings.Cut(shape, "-")
	if !found || suffix != "ary" {
		return 0, false
	}
	k, err := strconv.Atoi(prefix)
	if err != nil || k <= 0 {
		return 0, false
	}
	return k, true
}

// buildLookupWorkload is buildLookupWorkload in
// original_source/build_concurrent_workload.cc: stream edges through a
// barrier of batch size beta; after each beta inserts, flush a LINK batch
// followed by a LOOKUP batch pairing up to beta recently touched nodes with
// their current shadow root.
func buildLookupWorkload(n int, edges [][2]uint32, beta uint32) Trace {
	shadow := newShadowParent(n)
	window := newTouchWindow()

	var trace Trace
	var inserts [][2]uint32

	complete := func() {
		if len(inserts) <= 1 {
			return
		}
		trace = append(trace, Batch{Kind: OpLink, Operands: inserts})
		trace = append(trace, Batch{Kind: OpLookup, Operands: lookupsFor(shadow, window, beta)})
		inserts = nil
	}

	for idx, e := range edges {
		u, v := e[0], e[1]
		window.touch(u, uint32(idx))
		window.touch(v, uint32(idx))
		inserts = append(inserts, [2]uint32{u, v})
		shadow.link(u, v)

		if idx != 0 && idx%int(beta) == 0 {
			complete()
		}
	}
	if len(inserts) > 0 {
		complete()
	}
	return trace
}

// buildCutWorkload is buildCutWorkload in
// original_source/build_concurrent_workload.cc: interleave LINK batches
// with CUT batches drawn FIFO from the persisted insert order, flushing a
// verifying LOOKUP batch after each.
func buildCutWorkload(n int, edges [][2]uint32, beta uint32) Trace {
	shadow := newShadowParent(n)
	window := newTouchWindow()

	var trace Trace
	var inserts, persistent [][2]uint32
	var taken []bool
	buffPtr := 0

	complete := func() {
		if len(inserts) <= 1 {
			return
		}
		trace = append(trace, Batch{Kind: OpLink, Operands: inserts})
		trace = append(trace, Batch{Kind: OpLookup, Operands: lookupsFor(shadow, window, beta)})
		inserts = nil

		var cuts [][2]uint32
		for cnt := 0; buffPtr != len(persistent) && cnt < int(beta); {
			if taken[buffPtr] {
				continue
			}
			cnt++
			cuts = append(cuts, persistent[buffPtr])
			taken[buffPtr] = true
			u, v := persistent[buffPtr][0], persistent[buffPtr][1]
			shadow.unlink(u)
			window.touch(u, uint32(buffPtr))
			window.touch(v, uint32(buffPtr))
			buffPtr++
		}
		trace = append(trace, Batch{Kind: OpCut, Operands: cuts})
		trace = append(trace, Batch{Kind: OpLookup, Operands: lookupsFor(shadow, window, beta)})
	}

	for idx, e := range edges {
		u, v := e[0], e[1]
		window.touch(u, uint32(idx))
		window.touch(v, uint32(idx))
		inserts = append(inserts, [2]uint32{u, v})
		persistent = append(persistent, [2]uint32{u, v})
		taken = append(taken, false)
		shadow.link(u, v)

		if idx != 0 && idx%int(beta) == 0 {
			complete()
		}
	}
	if len(inserts) > 0 {
		complete()
	}
	return trace
}

// lookupsFor drains window and pairs each touched node with its current
// shadow root.
func lookupsFor(shadow *shadowParent, window *touchWindow, beta uint32) [][2]uint32 {
	touched := window.take(int(beta))
	lookups := make([][2]uint32, 0, len(touched))
	for _, node := range touched {
		lookups = append(lookups, [2]uint32{node, shadow.rootOf(node)})
	}
	return lookups
}
