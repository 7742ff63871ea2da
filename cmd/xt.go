/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/readfiles"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/types"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/visualizations"
)

// xtCmd represents the xt command
var xtCmd = &cobra.Command{
	Use:   "xt",
	Short: "Assemble and render the x-t field from a snapshot directory",
	Long: `
Collects every snapshot of a run into the (time x space) raster of one
field and renders it as a heatmap or a contour view, color scale locked to
the global field range.

piston1d xt --dir build --field rho
piston1d xt --dir build --field pres --mode contour -o pres_xt.png `,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		fieldName, _ := cmd.Flags().GetString("field")
		mode, _ := cmd.Flags().GetString("mode")
		dx, _ := cmd.Flags().GetFloat64("dx")
		levels, _ := cmd.Flags().GetInt("levels")
		output, _ := cmd.Flags().GetString("output")

		ff, err := types.ParseField(fieldName)
		if err != nil {
			return err
		}
		snaps, err := readfiles.ScanSnapshots(dir, true)
		if err != nil {
			return err
		}
		xt, err := readfiles.AssembleField(snaps, ff, dx)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("%s, %d snapshots, range [%g, %g]", ff, len(snaps), xt.FMin, xt.FMax)
		switch mode {
		case "heatmap":
			err = visualizations.XTHeatmap(xt, title, output)
		case "contour":
			err = visualizations.XTContour(xt, levels, title, output)
		default:
			return fmt.Errorf("unknown mode %q, want heatmap or contour", mode)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Rendered %s x-t %s to %s\n", ff, mode, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(xtCmd)
	xtCmd.Flags().StringP("dir", "d", "build", "snapshot directory")
	xtCmd.Flags().StringP("field", "f", "rho", "field to render: rho, vel or pres")
	xtCmd.Flags().StringP("mode", "m", "heatmap", "render mode: heatmap or contour")
	xtCmd.Flags().Float64("dx", 5.e-3, "grid spacing used to scale the x axis")
	xtCmd.Flags().Int("levels", 16, "number of contour levels")
	xtCmd.Flags().StringP("output", "o", "field_xt.png", "output PNG path")
}
