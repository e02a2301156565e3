// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitcount

import "math/bits"
import "golang.org/x/sys/cpu"

// math/bits compiles to POPCNT on amd64 and CNT on arm64.  Elsewhere it
// falls back to a table lookup, which is slower than the bit hack.
var hasPopcnt = cpu.X86.HasPOPCNT || cpu.ARM64.HasASIMD

var kernels = []kernel{
	{count32popcnt, count64popcnt, "popcnt", hasPopcnt},
	{count32swar, count64swar, "swar", true},
	{count32generic, count64generic, "generic", true},
}

func count32popcnt(v uint32) int {
	return bits.OnesCount32(v)
}

func count64popcnt(v uint64) int {
	return bits.OnesCount64(v)
}
