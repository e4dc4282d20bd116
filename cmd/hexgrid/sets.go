package main

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"github.com/andreiashu/hexgrid"
)

func newCompactCmd(a *app) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "compact [cell...]",
		Short: "Replace complete sibling groups with their parents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := readCells(cmd, args, in)
			if err != nil {
				return err
			}
			compacted, err := hexgrid.CompactCells(cells)
			if err != nil {
				return err
			}
			a.log.Info("compacted", "in", len(cells), "out", len(compacted))
			if out != "" {
				return writeCellSetFile(out, compacted)
			}
			return a.writeCells(cmd.OutOrStdout(), compacted)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "read cells from a cell set file")
	cmd.Flags().StringVar(&out, "out", "", "write a cell set file instead of printing")
	return cmd
}

func newUncompactCmd(a *app) *cobra.Command {
	var (
		res     int
		in, out string
	)
	cmd := &cobra.Command{
		Use:   "uncompact [cell...]",
		Short: "Expand cells to their descendants at a resolution",
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := readCells(cmd, args, in)
			if err != nil {
				return err
			}
			r, err := a.resolution(res)
			if err != nil {
				return err
			}
			expanded, err := hexgrid.UncompactCells(cells, r)
			if err != nil {
				return err
			}
			a.log.Info("uncompacted", "in", len(cells), "out", len(expanded), "res", r)
			if out != "" {
				return writeCellSetFile(out, expanded)
			}
			return a.writeCells(cmd.OutOrStdout(), expanded)
		},
	}
	cmd.Flags().IntVar(&res, "res", -1, "target resolution (default from config)")
	cmd.Flags().StringVar(&in, "in", "", "read cells from a cell set file")
	cmd.Flags().StringVar(&out, "out", "", "write a cell set file instead of printing")
	return cmd
}

func newPolyfillCmd(a *app) *cobra.Command {
	var (
		res          int
		geojsonPath  string
		geohashValue string
		out          string
	)
	cmd := &cobra.Command{
		Use:   "polyfill",
		Short: "Print the cells whose centers fall inside a polygon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolution(res)
			if err != nil {
				return err
			}

			var polys []hexgrid.GeoPolygon
			switch {
			case geojsonPath != "" && geohashValue != "":
				return fmt.Errorf("use either --geojson or --geohash")
			case geojsonPath != "":
				data, err := os.ReadFile(geojsonPath)
				if err != nil {
					return fmt.Errorf("read geojson: %w", err)
				}
				polys, err = hexgrid.ParsePolygonGeoJSON(data)
				if err != nil {
					return err
				}
			case geohashValue != "":
				p, err := hexgrid.GeohashPolygon(geohashValue)
				if err != nil {
					return err
				}
				polys = []hexgrid.GeoPolygon{p}
			default:
				return fmt.Errorf("one of --geojson or --geohash is required")
			}

			filled, err := hexgrid.PolygonsToCells(cmd.Context(), polys, r, a.options()...)
			if err != nil {
				return err
			}
			// polygons may overlap
			set := hexgrid.NewCellSet(hexgrid.Flatten(filled)...)
			a.log.Info("polyfill", "polygons", len(polys), "cells", set.Len(), "res", r)
			if out != "" {
				return writeCellSetFile(out, set.Cells())
			}
			return a.writeCells(cmd.OutOrStdout(), set.Cells())
		},
	}
	cmd.Flags().IntVar(&res, "res", -1, "resolution (default from config)")
	cmd.Flags().StringVar(&geojsonPath, "geojson", "", "GeoJSON file with Polygon or MultiPolygon geometry")
	cmd.Flags().StringVar(&geohashValue, "geohash", "", "fill the rectangle of a geohash")
	cmd.Flags().StringVar(&out, "out", "", "write a cell set file instead of printing")
	return cmd
}

func newOutlineCmd(a *app) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "outline [cell...]",
		Short: "Print the outline of a cell set as a GeoJSON MultiPolygon feature",
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := readCells(cmd, args, in)
			if err != nil {
				return err
			}
			mp, err := hexgrid.CellsToMultiPolygon(cells)
			if err != nil {
				return err
			}
			a.log.Debug("outline", "cells", len(cells), "polygons", len(mp.Polygons), "loops", len(mp.Loops))
			f := geojson.NewFeature(mp.Orb())
			f.Properties["cells"] = len(cells)
			data, err := f.MarshalJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "read cells from a cell set file")
	return cmd
}
