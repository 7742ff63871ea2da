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
	"gonum.org/v1/gonum/floats"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/readfiles"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/types"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/visualizations"
)

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot [snapshot file]",
	Short: "Render one snapshot's field profile as a heatmap",
	Long: `
Renders the spatial profile of one field from a single snapshot CSV as a
banded heatmap, with the color scale optionally locked to the range of a
whole snapshot directory.

piston1d plot build/snapshot_1.000010e+00.csv --field pres -o profile.png `,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fieldName, _ := cmd.Flags().GetString("field")
		dx, _ := cmd.Flags().GetFloat64("dx")
		output, _ := cmd.Flags().GetString("output")
		lockDir, _ := cmd.Flags().GetString("lock-dir")

		ff, err := types.ParseField(fieldName)
		if err != nil {
			return err
		}
		snap, err := readfiles.ReadSnapshot(args[0])
		if err != nil {
			return err
		}
		vals := snap.Field(ff)
		fMin, fMax := floats.Min(vals), floats.Max(vals)
		if lockDir != "" {
			snaps, serr := readfiles.ScanSnapshots(lockDir, true)
			if serr != nil {
				return serr
			}
			xt, aerr := readfiles.AssembleField(snaps, ff, dx)
			if aerr != nil {
				return aerr
			}
			fMin, fMax = xt.FMin, xt.FMax
		}
		if err = visualizations.SnapshotHeatmap(snap, ff, dx, fMin, fMax, output); err != nil {
			return err
		}
		fmt.Printf("Rendered %s of %s to %s\n", ff, args[0], output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringP("field", "f", "pres", "field to render: rho, vel or pres")
	plotCmd.Flags().Float64("dx", 5.e-3, "grid spacing used to scale the x axis")
	plotCmd.Flags().StringP("output", "o", "snapshot.png", "output PNG path")
	plotCmd.Flags().String("lock-dir", "", "lock the color scale to the field range of this snapshot directory")
}
