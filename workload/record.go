// Package workload implements a trace format and generator: batched
// link/cut/lookup traces over random or k-ary trees, stored as a flat
// binary file of little-endian (uint32, uint32) records, and consumed by
// package driver.
//
// The binary layout and the barrier-windowed lookup/cut construction are
// grounded on original_source/build_concurrent_workload.cc; the generic
// record marshaling style (explicit little-endian field-by-field encoding
// rather than unsafe struct casts) follows the teacher's own
// Hasher.go/BitArray.go preference for explicit byte-level code over
// reflection or unsafe.
package workload

import (
	"encoding/binary"
	"fmt"
	"io"
)

// OpKind identifies what a batch's operand pairs mean.
type OpKind uint32

const (
	// OpLookup pairs (node, expectedRoot); expectedRoot is the value a
	// find_root(node) was known to hold at generation time.
	OpLookup OpKind = 0
	// OpLink pairs (x, y): link(x, y).
	OpLink OpKind = 1
	// OpCut uses only the first field of each pair: cut(x).
	OpCut OpKind = 2
)

func (k OpKind) String() string {
	switch k {
	case OpLookup:
		return "lookup"
	case OpLink:
		return "link"
	case OpCut:
		return "cut"
	default:
		return fmt.Sprintf("OpKind(%d)", uint32(k))
	}
}

// Record is one 8-byte (uint32, uint32) slot of the trace file — either a
// batch header (op_kind, count) or an operand pair (a, b).
type Record struct {
	A, B uint32
}

const recordSize = 8

// Batch is one header-plus-operands group of the trace, as built by the
// generator and consumed by the driver.
type Batch struct {
	Kind     OpKind
	Operands [][2]uint32
}

// Trace is an ordered sequence of batches — the in-memory form of a trace
// file.
type Trace []Batch

// WriteTo serializes the trace to w as a flat little-endian record
// stream.
func (tr Trace) WriteTo(w io.Writer) (int64, error) {
	var written int64
	var buf [recordSize]byte
	put := func(a, b uint32) error {
		binary.LittleEndian.PutUint32(buf[0:4], a)
		binary.LittleEndian.PutUint32(buf[4:8], b)
		n, err := w.Write(buf[:])
		written += int64(n)
		return err
	}

	for _, batch := range tr {
		if err := put(uint32(batch.Kind), uint32(len(batch.Operands))); err != nil {
			return written, err
		}
		for _, op := range batch.Operands {
			if err := put(op[0], op[1]); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// ReadTrace deserializes a trace file from r. It reports a non-nil error on
// a truncated header, a truncated operand list, or any read failure.
func ReadTrace(r io.Reader) (Trace, error) {
	var trace Trace
	var buf [recordSize]byte

	readRecord := func() (uint32, uint32, error) {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, 0, err
		}
		return binary.LittleEndian.Uint32(buf[0:4]), binary.LittleEndian.Uint32(buf[4:8]), nil
	}

	for {
		kind, count, err := readRecord()
		if err == io.EOF {
			return trace, nil
		}
		if err != nil {
			return nil, fmt.Errorf("workload: reading batch header: %w", err)
		}

		batch := Batch{Kind: OpKind(kind), Operands: make([][2]uint32, 0, count)}
		for i := uint32(0); i < count; i++ {
			a, b, err := readRecord()
			if err != nil {
				return nil, fmt.Errorf("workload: reading operand %d of a %d-operand %s batch: %w", i, count, batch.Kind, err)
			}
			batch.Operands = append(batch.Operands, [2]uint32{a, b})
		}
		trace = append(trace, batch)
	}
}
