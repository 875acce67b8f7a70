// Package main provides the seisgrad CLI.
//
// Commands:
//
//	seisgrad eval "x*x*x + a*x" --at x=1 --at a=2 --order 2
//	seisgrad graph "x/(x*x+1)" --at x=0.5 --order 1
//	seisgrad version
package main

import (
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
