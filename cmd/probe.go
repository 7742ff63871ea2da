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

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Time series of one field at a probe index",
	Long: `
Extracts the history of one field at a single grid index across every
snapshot of a run and renders it as a marked line plot. The default is the
pressure at index 0, the piston face.

piston1d probe --dir build
piston1d probe --dir build --field vel --index 500 -o vel500.png `,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		fieldName, _ := cmd.Flags().GetString("field")
		index, _ := cmd.Flags().GetInt("index")
		dx, _ := cmd.Flags().GetFloat64("dx")
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
		times, vals, err := xt.Probe(index)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("%s at index %d", ff, index)
		if err = visualizations.ProbeSeries(times, vals, ff.String(), title, output); err != nil {
			return err
		}
		fmt.Printf("Rendered %s to %s\n", title, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().StringP("dir", "d", "build", "snapshot directory")
	probeCmd.Flags().StringP("field", "f", "pres", "field to probe: rho, vel or pres")
	probeCmd.Flags().Int("index", 0, "probe grid index")
	probeCmd.Flags().Float64("dx", 5.e-3, "grid spacing used to scale the x axis")
	probeCmd.Flags().StringP("output", "o", "probe.png", "output PNG path")
}
