// Command fuzzyctl evaluates fuzzy controllers defined in YAML files.
//
//	fuzzyctl validate -c fan.yaml
//	fuzzyctl eval -c fan.yaml --set temp=31 --set load=0.4 --explain
//	fuzzyctl classify -c fan.yaml temp 31
//
// Results go to stdout; diagnostics go to stderr through slog, as text on
// a terminal and as JSON otherwise (override with --log-format).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
