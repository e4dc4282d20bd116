package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andreiashu/hexgrid"
)

func diskMode(unchecked bool) hexgrid.DiskMode {
	if unchecked {
		return hexgrid.DiskUnchecked
	}
	return hexgrid.DiskChecked
}

func newDiskCmd(a *app) *cobra.Command {
	var (
		k         int
		unchecked bool
		distances bool
	)
	cmd := &cobra.Command{
		Use:   "disk <cell...>",
		Short: "Print every cell within k steps of each origin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			origins, err := readCells(cmd, args, "")
			if err != nil {
				return err
			}
			mode := diskMode(unchecked)

			if distances {
				if len(origins) != 1 {
					return fmt.Errorf("--distances takes a single origin")
				}
				rings, err := hexgrid.GridDiskDistances(origins[0], k, mode)
				if err != nil {
					return err
				}
				if a.output == "json" {
					out := make([][]string, len(rings))
					for d, ring := range rings {
						for _, c := range ring {
							out[d] = append(out[d], c.String())
						}
					}
					return writeJSON(cmd.OutOrStdout(), out)
				}
				for d, ring := range rings {
					for _, c := range ring {
						fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", d, c)
					}
				}
				return nil
			}

			disks, err := hexgrid.GridDisks(cmd.Context(), origins, k, mode, a.options()...)
			if err != nil {
				return err
			}
			return a.writeCells(cmd.OutOrStdout(), hexgrid.Flatten(disks))
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", 1, "distance")
	cmd.Flags().BoolVar(&unchecked, "unchecked", false, "fall back to a breadth-first walk near pentagons")
	cmd.Flags().BoolVar(&distances, "distances", false, "prefix each cell with its distance")
	return cmd
}

func newRingCmd(a *app) *cobra.Command {
	var (
		k         int
		unchecked bool
	)
	cmd := &cobra.Command{
		Use:   "ring <cell>",
		Short: "Print the cells at exactly k steps from an origin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := hexgrid.ParseCell(args[0])
			if err != nil {
				return err
			}
			var ring []hexgrid.Cell
			if unchecked {
				ring, err = hexgrid.GridRingUnchecked(origin, k)
			} else {
				ring, err = hexgrid.GridRing(origin, k)
			}
			if err != nil {
				return err
			}
			return a.writeCells(cmd.OutOrStdout(), ring)
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", 1, "distance")
	cmd.Flags().BoolVar(&unchecked, "unchecked", false, "fall back to a breadth-first walk near pentagons")
	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print a minimal line of adjacent cells between two cells",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := hexgrid.ParseCell(args[0])
			if err != nil {
				return err
			}
			to, err := hexgrid.ParseCell(args[1])
			if err != nil {
				return err
			}
			path, err := hexgrid.GridPath(from, to)
			if err != nil {
				return err
			}
			a.log.Debug("path", "from", from.String(), "to", to.String(), "cells", len(path))
			return a.writeCells(cmd.OutOrStdout(), path)
		},
	}
}
