package bitcount

// SIMD-within-a-register population count.  Each step sums adjacent
// bit fields of twice the width of the step before; the final multiply
// adds all byte sums into the top byte.
// See http://graphics.stanford.edu/~seander/bithacks.html#CountBitsSetParallel

const (
	fives32  uint32 = 0x55555555 // 0101...
	threes32 uint32 = 0x33333333 // 00110011...
	fs32     uint32 = 0x0f0f0f0f // 4 zeros, 4 ones, ...
	ones32   uint32 = 0x01010101 // sum of 256 to the power of 0, 1, 2, 3

	fives64  uint64 = 0x5555555555555555
	threes64 uint64 = 0x3333333333333333
	fs64     uint64 = 0x0f0f0f0f0f0f0f0f
	ones64   uint64 = 0x0101010101010101
)

func count32swar(v uint32) int {
	v -= v >> 1 & fives32
	v = v&threes32 + v>>2&threes32
	v = (v + v>>4) & fs32
	return int(v * ones32 >> 24)
}

func count64swar(v uint64) int {
	v -= v >> 1 & fives64
	v = v&threes64 + v>>2&threes64
	v = (v + v>>4) & fs64
	return int(v * ones64 >> 56)
}
