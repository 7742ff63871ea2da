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

	"github.com/spf13/cobra"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/piston_fourier"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/readfiles"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/visualizations"
)

// Default piston program, matching the problem statement
var (
	defPeriod   = 60.0
	defSegments = []piston_fourier.Segment{
		{Start: 0, End: 10, Value: 3.0},
		{Start: 10, End: 30, Value: 0.0},
		{Start: 30, End: 40, Value: 1.0},
		{Start: 40, End: 60, Value: 0.0},
	}
)

// fourierCmd represents the fourier command
var fourierCmd = &cobra.Command{
	Use:   "fourier",
	Short: "Fourier series coefficients of the piston forcing",
	Long: `
Computes the trigonometric Fourier series coefficients of the piecewise
constant piston acceleration analytically, per segment antiderivatives, no
quadrature. Optionally exports the coefficients, prints a sampled
reconstruction table and renders the reconstruction overlay.

piston1d fourier --order 20
piston1d fourier --order 50 --export coeffs_50.csv
piston1d fourier --order 30 --show-series `,
	RunE: func(cmd *cobra.Command, args []string) error {
		order, _ := cmd.Flags().GetInt("order")
		export, _ := cmd.Flags().GetString("export")
		showSeries, _ := cmd.Flags().GetBool("show-series")
		samples, _ := cmd.Flags().GetInt("samples")
		plotFile, _ := cmd.Flags().GetString("plot")
		f, err := forcingFromFlags(cmd)
		if err != nil {
			return err
		}
		return runFourier(f, order, export, showSeries, samples, plotFile)
	},
}

func init() {
	rootCmd.AddCommand(fourierCmd)
	fourierCmd.Flags().IntP("order", "o", 20, "highest harmonic order N")
	fourierCmd.Flags().String("export", "", "optional coefficient CSV output path")
	fourierCmd.Flags().Bool("show-series", false, "print reconstructed values at sample times")
	fourierCmd.Flags().Int("samples", 13, "number of sample times for --show-series")
	fourierCmd.Flags().String("plot", "", "optional reconstruction overlay PNG path")
	fourierCmd.Flags().StringP("input", "i", "", "YAML parameter file carrying the piston program")
}

// forcingFromFlags builds the forcing from the parameter file when given,
// falling back to the built in piston program.
func forcingFromFlags(cmd *cobra.Command) (f piston_fourier.Forcing, err error) {
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		f = piston_fourier.Forcing{T: defPeriod, Segments: defSegments}
		return
	}
	ip, err := readParameters(input)
	if err != nil {
		return
	}
	f.T = ip.Piston.Period
	for _, sg := range ip.Piston.Segments {
		f.Segments = append(f.Segments, piston_fourier.Segment{
			Start: sg.Start, End: sg.End, Value: sg.Value,
		})
	}
	err = f.Validate()
	return
}

func runFourier(f piston_fourier.Forcing, order int, export string, showSeries bool, samples int, plotFile string) error {
	s, err := piston_fourier.ComputeHarmonics(f, order)
	if err != nil {
		return err
	}
	fmt.Printf("Period T = %v\n", f.T)
	fmt.Printf("a0 (DC*2) = %.10f; DC term (a0/2) = %.10f\n", s.A0, s.A0/2)
	fmt.Printf("Computed harmonics up to n = %d\n", order)
	fmt.Printf("n,a_n,b_n\n")
	for n := 1; n <= s.Order(); n++ {
		fmt.Printf("%d,%.10f,%.10f\n", n, s.A[n-1], s.B[n-1])
	}

	if export != "" {
		file, ferr := os.Create(export)
		if ferr != nil {
			return fmt.Errorf("unable to create %s: %w", export, ferr)
		}
		defer file.Close()
		if err = readfiles.WriteCoefficients(file, s); err != nil {
			return err
		}
		fmt.Printf("Coefficients exported to %s\n", export)
	}

	if showSeries {
		if samples < 2 {
			samples = 2
		}
		fmt.Printf("\nSample reconstruction:\n")
		for i := 0; i < samples; i++ {
			t := float64(i) * f.T / float64(samples-1)
			fmt.Printf("t=%8.3f  orig=%4.1f  series=%10.6f\n", t, f.At(t), s.Evaluate(t))
		}
	}

	if plotFile != "" {
		if err = visualizations.ReconstructionOverlay(f, s, 600, plotFile); err != nil {
			return err
		}
		fmt.Printf("Overlay rendered to %s\n", plotFile)
	}
	return nil
}
