// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package bitcount

import "fmt"
import "math/rand"
import "strings"
import "testing"

const (
	// max number of entries in a test case
	maxTestcaseSize = 100
)

// Take a count64 function and a test case and return true if the
// test case is processed correctly.
func testPasses64(count64 func(uint64) int, buf []uint64) bool {
	for _, v := range buf {
		if count64(v) != refCount64(v) {
			return false
		}
	}

	return true
}

// Take a failing test case for a count64 kernel and try to find the
// smallest possible test case to trigger the error.  This is done
// by repeatedly clearing bits that do not cause the test case to
// pass when cleared.  An attempt is also made to reduce the length
// of the test case.  This function modifies its argument and
// returns a subslice of it.
func minimizeTestcase64(count64 func(uint64) int, tc []uint64) []uint64 {
	// sanity check
	if testPasses64(count64, tc) {
		return nil
	}

	// try to turn off bits
	for i := len(tc) - 1; i >= 0; i-- {
		for j := 63; j >= 0; j-- {
			if tc[i]&(1<<j) == 0 {
				continue
			}

			tc[i] &^= 1 << j
			if testPasses64(count64, tc) {
				tc[i] |= 1 << j
			}
		}
	}

	// try to shorten the array
	for len(tc) > 0 && !testPasses64(count64, tc[:len(tc)-1]) {
		tc = tc[:len(tc)-1]
	}

	return tc
}

// build a string representation of the minimised test case if it is
// not too long.  If it is too long, return the empty string.
func testcaseString64(tc []uint64) string {
	if len(tc) == 0 {
		return "\tvar buf [0]uint64"
	}

	var w strings.Builder
	entries := 0
	fmt.Fprintf(&w, "\tvar buf [%d]uint64\n", len(tc))
	for i := range tc {
		if tc[i] == 0 {
			continue
		}

		entries++
		if entries > maxTestcaseSize {
			return ""
		}

		fmt.Fprintf(&w, "\tbuf[%d] = %#016x\n", i, tc[i])
	}

	return w.String()
}

// Check every kernel against random buffers.  On failure, print a
// minimised test case.
func TestMinimized64(t *testing.T) {
	for i := range kernels {
		k := &kernels[i]
		t.Run(k.name, func(tt *testing.T) {
			if !k.available {
				tt.SkipNow()
			}

			for _, l := range testLengths {
				buf := make([]uint64, l)
				for j := range buf {
					buf[j] = rand.Uint64()
				}

				if testPasses64(k.count64, buf) {
					continue
				}

				tc := minimizeTestcase64(k.count64, buf)
				tt.Errorf("length %d: counts don't match, minimised test case:\n%s", l, testcaseString64(tc))
			}
		})
	}
}

// a deliberately broken kernel that ignores bit 37
func brokenCount64(v uint64) int {
	return refCount64(v &^ (1 << 37))
}

// the minimiser reduces a failure to a single bit in a single word
func TestMinimizeTestcase(t *testing.T) {
	buf := make([]uint64, 64)
	for i := range buf {
		buf[i] = ^uint64(0)
	}

	tc := minimizeTestcase64(brokenCount64, buf)
	if len(tc) != 1 || tc[0] != 1<<37 {
		t.Errorf("minimised test case %#x, want [%#x]", tc, uint64(1<<37))
	}

	if s := testcaseString64(tc); !strings.Contains(s, "buf[0] = 0x0000002000000000") {
		t.Errorf("unexpected test case string:\n%s", s)
	}
}
