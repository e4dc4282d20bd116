package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andreiashu/hexgrid"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the grid against known values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Validating grid tables and operations...")
			if err := hexgrid.ValidateGrid(w, a.options()...); err != nil {
				return err
			}
			fmt.Fprintln(w, "Grid validated successfully.")
			return nil
		},
	}
}
