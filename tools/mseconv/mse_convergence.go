package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/InputParameters"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/piston_fourier"
)

var (
	yamlFile string
	maxOrder int
	samples  int
)

// Prints the reconstruction mean squared error of the piston forcing for a
// doubling ladder of harmonic orders, plus the decay ratio between rungs.
// Fourier partial sums are least squares optimal, so the MSE column must be
// non-increasing; the ratio column shows how fast the staircase converges.
func main() {
	yamlFilePtr := flag.String("input", yamlFile, "optional YAML parameter file carrying the piston program")
	maxOrderPtr := flag.Int("maxOrder", 256, "highest harmonic order of the ladder")
	samplesPtr := flag.Int("samples", 4096, "sample points per period for the MSE")
	flag.Parse()
	yamlFile = *yamlFilePtr
	maxOrder = *maxOrderPtr
	samples = *samplesPtr

	f := defaultForcing()
	if len(yamlFile) != 0 {
		f = forcingFromYAML(yamlFile)
	}
	if err := f.Validate(); err != nil {
		fmt.Printf("invalid forcing: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Period T = %v, %d segments, %d samples per period\n", f.T, len(f.Segments), samples)
	fmt.Printf("%8s %14s %8s\n", "N", "MSE", "ratio")
	prev := 0.0
	for n := 1; n <= maxOrder; n *= 2 {
		s, err := piston_fourier.ComputeHarmonics(f, n)
		if err != nil {
			panic(err)
		}
		mse := piston_fourier.ReconstructionMSE(f, s, samples)
		if prev == 0 {
			fmt.Printf("%8d %14.6e %8s\n", n, mse, "-")
		} else {
			fmt.Printf("%8d %14.6e %8.4f\n", n, mse, mse/prev)
		}
		prev = mse
	}
}

func defaultForcing() piston_fourier.Forcing {
	return piston_fourier.Forcing{
		T: 60,
		Segments: []piston_fourier.Segment{
			{Start: 0, End: 10, Value: 3.0},
			{Start: 10, End: 30, Value: 0.0},
			{Start: 30, End: 40, Value: 1.0},
			{Start: 40, End: 60, Value: 0.0},
		},
	}
}

func forcingFromYAML(filename string) (f piston_fourier.Forcing) {
	data, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}
	var ip InputParameters.InputParameters1D
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	f.T = ip.Piston.Period
	for _, sg := range ip.Piston.Segments {
		f.Segments = append(f.Segments, piston_fourier.Segment{
			Start: sg.Start, End: sg.End, Value: sg.Value,
		})
	}
	return
}
