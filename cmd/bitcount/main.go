// Bitcount prints the population count of 11 to standard output.
// Command line arguments are ignored.  Diagnostics go to standard
// error and are controlled by BITCOUNT_LOG_LEVEL; BITCOUNT_KERNEL
// forces a particular counting kernel.  The exit status is always 0.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/clausecker/bitcount"
	"github.com/clausecker/bitcount/internal/env"
	"github.com/sirupsen/logrus"
)

// Value whose set bits are counted.
const input = 11

// Setup logging level from environment variables.
func init() {
	logrus.SetLevel(env.Level("BITCOUNT_LOG_LEVEL", logrus.WarnLevel))
}

// Select the kernel requested in the environment, if any, and write
// the population count of input to w.
func run(w io.Writer) error {
	if name := env.Get("BITCOUNT_KERNEL", ""); name != "" {
		if err := bitcount.Use(name); err != nil {
			logrus.Warnf("Ignoring BITCOUNT_KERNEL: %v (available: %v)", err, bitcount.Kernels())
		}
	}

	logrus.Debugf("Counting bits of %d with kernel %s", input, bitcount.Kernel())
	_, err := fmt.Fprintln(w, bitcount.Count(input))
	return err
}

func main() {
	if err := run(os.Stdout); err != nil {
		logrus.Errorf("Error writing result: %v", err)
	}
}
