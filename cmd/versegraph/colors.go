// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/versegraph/dataset"
	"github.com/katalvlaran/versegraph/palette"
)

func newColorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Assign each positioned poem a display color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			positions, err := dataset.ReadPositions(a.cfg.Data.Positions)
			if err != nil {
				return err
			}
			colors := palette.Assign(positions)
			if err = dataset.WriteColors(a.cfg.Data.Colors, colors); err != nil {
				return err
			}
			a.log.Info("colors written", "path", a.cfg.Data.Colors, "poems", len(colors))
			fmt.Fprintf(cmd.OutOrStdout(), "%d colors\n", len(colors))

			return nil
		},
	}

	f := cmd.Flags()
	f.String("out", "", "colors JSON (default data/colors.json)")
	_ = a.v.BindPFlag("data.colors", f.Lookup("out"))

	return cmd
}
