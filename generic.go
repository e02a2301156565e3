// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitcount

// count32 generic implementation, examining two bits per step
func count32generic(v uint32) int {
	n := 0
	for i := 0; i < Width; i += 2 {
		n += int(v >> i & 1)
		n += int(v >> (i + 1) & 1)
	}

	return n
}

// count64 generic implementation, examining two bits per step
func count64generic(v uint64) int {
	n := 0
	for i := 0; i < Width64; i += 2 {
		n += int(v >> i & 1)
		n += int(v >> (i + 1) & 1)
	}

	return n
}

// positional count over 32 bit values
func positional32(counts *[32]int, buf []uint32) {
	for _, v := range buf {
		for j := 0; j < Width; j += 2 {
			counts[j] += int(v >> j & 1)
			counts[j+1] += int(v >> (j + 1) & 1)
		}
	}
}

// positional count over 64 bit values
func positional64(counts *[64]int, buf []uint64) {
	for _, v := range buf {
		for j := 0; j < Width64; j += 2 {
			counts[j] += int(v >> j & 1)
			counts[j+1] += int(v >> (j + 1) & 1)
		}
	}
}
