package piston_fourier

import "math"

// Series is the truncated real trigonometric Fourier series of a periodic
// piecewise constant forcing. A0 carries the conventional 2x scaling, so
// the reconstructed DC contribution is A0/2. A and B hold the cosine and
// sine coefficients for harmonics n = 1..N at A[n-1], B[n-1]. A Series is
// computed once and never mutated.
type Series struct {
	T  float64
	A0 float64
	A  []float64
	B  []float64
}

// ComputeDC returns the DC coefficient
//
//	a0 = (2/T) * Σ value*(end-start)
//
// over the segments of f. Segment order does not matter for the value but
// accumulation follows the given order so results reproduce bit for bit.
func ComputeDC(f Forcing) (a0 float64, err error) {
	if f.T <= 0 {
		err = domainErrorf("period T = %v, must be positive", f.T)
		return
	}
	for _, sg := range f.Segments {
		a0 += sg.Value * sg.Width()
	}
	a0 *= 2 / f.T
	return
}

// ComputeHarmonics computes the series of f truncated at harmonic order N.
// With wn = 2*Pi*n/T, the integrals of value*cos(wn*t) and value*sin(wn*t)
// over a segment [start, end) have the closed forms
//
//	value * [sin(wn*end) - sin(wn*start)] / wn
//	-value * [cos(wn*end) - cos(wn*start)] / wn
//
// which are summed across segments and scaled by 2/T. The coefficients are
// exact, there is no quadrature error. N = 0 yields empty coefficient
// slices. wn is never zero inside the loop, so the only guarded
// singularity is a degenerate period.
func ComputeHarmonics(f Forcing, N int) (s *Series, err error) {
	if f.T <= 0 {
		err = domainErrorf("period T = %v, must be positive", f.T)
		return
	}
	if N < 0 {
		err = domainErrorf("harmonic order N = %d, must be non-negative", N)
		return
	}
	var a0 float64
	if a0, err = ComputeDC(f); err != nil {
		return
	}
	s = &Series{
		T:  f.T,
		A0: a0,
		A:  make([]float64, N),
		B:  make([]float64, N),
	}
	for n := 1; n <= N; n++ {
		var (
			wn     = 2 * math.Pi * float64(n) / f.T
			an, bn float64
		)
		for _, sg := range f.Segments {
			an += sg.Value * (math.Sin(wn*sg.End) - math.Sin(wn*sg.Start)) / wn
			bn += -sg.Value * (math.Cos(wn*sg.End) - math.Cos(wn*sg.Start)) / wn
		}
		s.A[n-1] = an * 2 / f.T
		s.B[n-1] = bn * 2 / f.T
	}
	return
}

func (s *Series) Order() int {
	return len(s.A)
}

// Evaluate reconstructs the truncated series at time t:
//
//	a0/2 + Σ an*cos(wn*t) + bn*sin(wn*t)
//
// t is first reduced into [0, T), so the reconstruction is periodic for
// every real t including negative times.
func (s *Series) Evaluate(t float64) (val float64) {
	tr := reducePeriod(t, s.T)
	val = 0.5 * s.A0
	for n := 1; n <= len(s.A); n++ {
		wn := 2 * math.Pi * float64(n) / s.T
		val += s.A[n-1]*math.Cos(wn*tr) + s.B[n-1]*math.Sin(wn*tr)
	}
	return
}

// ReconstructionMSE samples the series and the forcing at nSamples evenly
// spaced points across one period and returns the mean squared mismatch.
// Fourier truncation is least squares optimal, so this never increases
// with the harmonic order.
func ReconstructionMSE(f Forcing, s *Series, nSamples int) (mse float64) {
	dt := f.T / float64(nSamples)
	for i := 0; i < nSamples; i++ {
		t := float64(i) * dt
		d := s.Evaluate(t) - f.At(t)
		mse += d * d
	}
	mse /= float64(nSamples)
	return
}
