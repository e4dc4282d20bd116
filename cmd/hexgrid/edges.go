package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andreiashu/hexgrid"
)

type edgeInfo struct {
	Edge        string       `json:"edge"`
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	LengthM     float64      `json:"length_m"`
	Boundary    [][2]float64 `json:"boundary,omitempty"`
}

func newEdgesCmd(a *app) *cobra.Command {
	var withBoundary bool
	cmd := &cobra.Command{
		Use:   "edges <cell>",
		Short: "Print the directed edges leaving a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := hexgrid.ParseCell(args[0])
			if err != nil {
				return err
			}
			edges, err := c.DirectedEdges()
			if err != nil {
				return err
			}

			infos := make([]edgeInfo, 0, len(edges))
			for _, e := range edges {
				o, d, err := e.Cells()
				if err != nil {
					return err
				}
				length, err := e.LengthM()
				if err != nil {
					return err
				}
				info := edgeInfo{Edge: e.String(), Origin: o.String(), Destination: d.String(), LengthM: length}
				if withBoundary {
					b, err := e.Boundary()
					if err != nil {
						return err
					}
					for _, v := range b {
						lat, lng := v.Degrees()
						info.Boundary = append(info.Boundary, [2]float64{lat, lng})
					}
				}
				infos = append(infos, info)
			}

			if a.output == "json" {
				return writeJSON(cmd.OutOrStdout(), infos)
			}
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s %.3fm\n", info.Edge, info.Origin, info.Destination, info.LengthM)
				for _, v := range info.Boundary {
					fmt.Fprintf(cmd.OutOrStdout(), "  %.9f %.9f\n", v[0], v[1])
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withBoundary, "boundary", false, "include the boundary vertices of each edge")
	return cmd
}
