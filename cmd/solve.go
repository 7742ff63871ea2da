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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/InputParameters"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/model_problems/Piston1D"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the piston driven tube simulation",
	Long: `
Runs the isothermal 1D Euler solver with the piecewise constant piston
forcing, writing periodic CSV snapshots into the output directory.

piston1d solve --input piston.yaml
piston1d solve --input piston.yaml --finalTime 10 --outdir build `,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		outDir, _ := cmd.Flags().GetString("outdir")
		compress, _ := cmd.Flags().GetBool("compress")
		prof, _ := cmd.Flags().GetBool("profile")

		ip := defaultParameters()
		if input != "" {
			var err error
			if ip, err = readParameters(input); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("finalTime") {
			ip.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		}
		ip.Print()

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("unable to create output directory %s: %w", outDir, err)
		}
		c := Piston1D.NewPiston(ip, outDir, compress)
		if prof {
			defer profile.Start().Stop()
		}
		c.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringP("input", "i", "", "YAML parameter file (built in defaults when omitted)")
	solveCmd.Flags().Float64("finalTime", 60, "FinalTime - the target end time for the sim")
	solveCmd.Flags().String("outdir", "build", "snapshot output directory")
	solveCmd.Flags().Bool("compress", false, "write zstd compressed snapshots")
	solveCmd.Flags().Bool("profile", false, "generate a CPU profile of the time loop")
}

func readParameters(filename string) (ip *InputParameters.InputParameters1D, err error) {
	var data []byte
	if data, err = os.ReadFile(filename); err != nil {
		return nil, fmt.Errorf("unable to read parameter file %s: %w", filename, err)
	}
	ip = &InputParameters.InputParameters1D{}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("unable to parse parameter file %s: %w", filename, err)
	}
	return
}

// defaultParameters mirrors the constants of the original piston problem.
func defaultParameters() *InputParameters.InputParameters1D {
	return &InputParameters.InputParameters1D{
		Title:            "piston driven tube",
		NX:               1000,
		DX:               5.e-3,
		DT:               1.e-5,
		FinalTime:        60,
		GasConstant:      8.31,
		MolarMass:        0.029,
		PInit:            101325,
		TInit:            293.15,
		SnapshotInterval: 0.1,
		PrintInterval:    1000,
		Piston: InputParameters.PistonSpec{
			Period: defPeriod,
			Segments: []InputParameters.SegmentSpec{
				{Start: 0, End: 10, Value: 3.0},
				{Start: 10, End: 30, Value: 0.0},
				{Start: 30, End: 40, Value: 1.0},
				{Start: 40, End: 60, Value: 0.0},
			},
		},
	}
}
