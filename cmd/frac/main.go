// Command frac parses, approximates, adds and compares exact fractions, and
// computes integer GCD and LCM.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
