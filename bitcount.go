// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

// Population counts.
//
// This package contains a set of functions to compute the population
// count (Hamming weight) of uint32 and uint64 values, of slices of
// such values, and positional population counts over slices.  Several
// kernels are provided: one using the hardware population count
// instruction through math/bits, a branch-free bit hack, and a generic
// loop examining two bits per step.  The best kernel supported by your
// CPU is chosen automatically at runtime and can be overridden with
// Use.  All kernels compute identical results.
//
// See the example on the Count function for what the population count
// operation does.
package bitcount

import "errors"
import "fmt"
import "sync/atomic"

// Width is the bit width of the values accepted by Count.
const Width = 32

// Width64 is the bit width of the values accepted by Count64.
const Width64 = 64

var (
	// ErrUnknownKernel is returned by Use for a name no kernel has.
	ErrUnknownKernel = errors.New("unknown kernel")

	// ErrUnavailable is returned by Use for a kernel this CPU cannot run.
	ErrUnavailable = errors.New("kernel not available on this CPU")
)

// kernels lists the available implementations in order of preference.
// The member available indicates that the kernel would run on this
// machine.  The dispatch code picks the lowest-numbered kernel for
// which available is true.  The generic kernel must be available under
// all circumstances so it can be run by the unit tests.
type kernel struct {
	count32   func(uint32) int
	count64   func(uint64) int
	name      string
	available bool
}

// currently active kernel
var active atomic.Pointer[kernel]

func init() {
	for i := range kernels {
		if kernels[i].available {
			active.Store(&kernels[i])
			return
		}
	}

	panic("no bitcount kernel available")
}

// Kernel returns the name of the active kernel.
func Kernel() string {
	return active.Load().name
}

// Kernels returns the names of the kernels that run on this machine
// in order of preference.
func Kernels() []string {
	names := make([]string, 0, len(kernels))
	for i := range kernels {
		if kernels[i].available {
			names = append(names, kernels[i].name)
		}
	}

	return names
}

// Use makes the kernel called name the active kernel.  The active
// kernel is left unchanged if name is unknown or cannot run on this
// machine.  Use may be called concurrently with the counting functions.
func Use(name string) error {
	for i := range kernels {
		if kernels[i].name != name {
			continue
		}

		if !kernels[i].available {
			return fmt.Errorf("bitcount: %q: %w", name, ErrUnavailable)
		}

		active.Store(&kernels[i])
		return nil
	}

	return fmt.Errorf("bitcount: %q: %w", name, ErrUnknownKernel)
}

// Count returns the number of set bits in v, a value in the range
// 0 to Width.
func Count(v uint32) int {
	return active.Load().count32(v)
}

// Count64 returns the number of set bits in v, a value in the range
// 0 to Width64.
func Count64(v uint64) int {
	return active.Load().count64(v)
}

// CountSlice32 returns the total number of set bits in buf.
func CountSlice32(buf []uint32) int {
	count32 := active.Load().count32
	n := 0
	for _, v := range buf {
		n += count32(v)
	}

	return n
}

// CountSlice64 returns the total number of set bits in buf.
func CountSlice64(buf []uint64) int {
	count64 := active.Load().count64
	n := 0
	for _, v := range buf {
		n += count64(v)
	}

	return n
}

// Count the number of corresponding set bits of the values in buf and
// add the results to counts.  Each element of counts keeps track of a
// different place; counts[0] for 0x00000001, counts[1] for 0x00000002,
// and so on to counts[31] for 0x80000000.
func Positional32(counts *[32]int, buf []uint32) {
	positional32(counts, buf)
}

// Count the number of corresponding set bits of the values in buf and
// add the results to counts.  Each element of counts keeps track of a
// different place; counts[0] for 0x0000000000000001, counts[1] for
// 0x0000000000000002, and so on to counts[63] for 0x8000000000000000.
func Positional64(counts *[64]int, buf []uint64) {
	positional64(counts, buf)
}
