// Command hexgrid converts between coordinates and grid cells and runs grid
// operations from the shell.
//
// Usage:
//
//	hexgrid encode 37.7759 -122.4179 --res 9
//	hexgrid disk 8928308280fffff --k 2
//	echo 8928308280fffff | hexgrid boundary
//	hexgrid polyfill --geojson area.json --res 7 --out area.hxc
//	hexgrid validate
//
// Configuration is read from $HOME/.hexgrid/config.yaml (created on first
// run) and HEXGRID_* environment variables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
