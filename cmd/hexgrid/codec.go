package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andreiashu/hexgrid"
)

func newEncodeCmd(a *app) *cobra.Command {
	var res int
	cmd := &cobra.Command{
		Use:   "encode <lat> <lng>",
		Short: "Print the cell containing a coordinate given in degrees",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("latitude: %w", err)
			}
			lng, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("longitude: %w", err)
			}
			r, err := a.resolution(res)
			if err != nil {
				return err
			}
			c, err := hexgrid.LatLngToCell(hexgrid.LatLngFromDegrees(lat, lng), r)
			if err != nil {
				return err
			}
			return a.writeCells(cmd.OutOrStdout(), []hexgrid.Cell{c})
		},
	}
	cmd.Flags().IntVar(&res, "res", -1, "resolution 0-15 (default from config)")
	return cmd
}

type decodedCell struct {
	Cell       string  `json:"cell"`
	Resolution int     `json:"resolution"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Pentagon   bool    `json:"pentagon,omitempty"`
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [cell...]",
		Short: "Print the center of each cell in degrees",
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := readCells(cmd, args, "")
			if err != nil {
				return err
			}
			out := make([]decodedCell, len(cells))
			for i, c := range cells {
				lat, lng := c.LatLng().Degrees()
				out[i] = decodedCell{Cell: c.String(), Resolution: c.Resolution(), Lat: lat, Lng: lng, Pentagon: c.IsPentagon()}
			}
			if a.output == "json" {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			for _, d := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %.9f %.9f\n", d.Cell, d.Lat, d.Lng)
			}
			return nil
		},
	}
}

func newBoundaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "boundary [cell...]",
		Short: "Print cell outlines as a GeoJSON FeatureCollection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := readCells(cmd, args, "")
			if err != nil {
				return err
			}
			a.log.Debug("boundary", "cells", len(cells))
			data, err := hexgrid.CellsToFeatureCollection(cells).MarshalJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
