package readfiles

import (
	"fmt"
	"io"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/piston_fourier"
)

// WriteCoefficients serializes a Fourier series in the delimited layout
// the analysis scripts exchange: a header row, then one row per harmonic
// in scientific notation.
func WriteCoefficients(w io.Writer, s *piston_fourier.Series) (err error) {
	if _, err = fmt.Fprintf(w, "n,a_n,b_n\n"); err != nil {
		return
	}
	for n := 1; n <= s.Order(); n++ {
		if _, err = fmt.Fprintf(w, "%d,%.12e,%.12e\n", n, s.A[n-1], s.B[n-1]); err != nil {
			return
		}
	}
	return
}
