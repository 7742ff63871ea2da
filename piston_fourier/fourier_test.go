package piston_fourier

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/integrate/quad"
)

// pistonForcing is the forcing from the piston problem statement: a 3 m/s2
// push for 10 s, coast, a 1 m/s2 push for 10 s, coast, period 60 s.
func pistonForcing() Forcing {
	return Forcing{
		T: 60,
		Segments: []Segment{
			{Start: 0, End: 10, Value: 3.0},
			{Start: 10, End: 30, Value: 0.0},
			{Start: 30, End: 40, Value: 1.0},
			{Start: 40, End: 60, Value: 0.0},
		},
	}
}

func TestPistonScenario(t *testing.T) {
	f := pistonForcing()
	a0, err := ComputeDC(f)
	assert.NoError(t, err)
	// a0 = (2/60)*(3*10 + 1*10) = 4/3, DC term a0/2 = 2/3
	assert.InDelta(t, 4./3., a0, 1.e-14)

	s, err := ComputeHarmonics(f, 3)
	assert.NoError(t, err)
	assert.InDelta(t, 4./3., s.A0, 1.e-14)
	// Closed forms for the first harmonics reduce to multiples of 1/Pi
	aCheck := []float64{0.5513288954217921, 0.5513288954217921, 0}
	bCheck := []float64{0.3183098861837907, 0.9549296585513720, 0.4244131815783876}
	assert.True(t, isNear(aCheck, s.A, 1.e-12))
	assert.True(t, isNear(bCheck, s.B, 1.e-12))
}

// TestQuadratureCrossCheck integrates value*cos(wn*t) and value*sin(wn*t)
// segment by segment with Gauss-Legendre quadrature and compares against
// the closed form coefficients. Inside one segment the integrand is smooth,
// so the quadrature is accurate to machine precision.
func TestQuadratureCrossCheck(t *testing.T) {
	f := pistonForcing()
	s, err := ComputeHarmonics(f, 3)
	assert.NoError(t, err)
	for n := 1; n <= 3; n++ {
		var (
			wn     = 2 * math.Pi * float64(n) / f.T
			an, bn float64
		)
		for _, sg := range f.Segments {
			sg := sg
			an += quad.Fixed(func(x float64) float64 {
				return sg.Value * math.Cos(wn*x)
			}, sg.Start, sg.End, 64, nil, 0)
			bn += quad.Fixed(func(x float64) float64 {
				return sg.Value * math.Sin(wn*x)
			}, sg.Start, sg.End, 64, nil, 0)
		}
		an *= 2 / f.T
		bn *= 2 / f.T
		assert.True(t, relNear(an, s.A[n-1], 1.e-9), "a_%d: quad=%v analytic=%v", n, an, s.A[n-1])
		assert.True(t, relNear(bn, s.B[n-1], 1.e-9), "b_%d: quad=%v analytic=%v", n, bn, s.B[n-1])
	}
}

// TestFFTCrossCheck samples one period of the forcing and compares leading
// DFT coefficients with the analytic ones. The staircase has jumps, so the
// DFT converges only at first order, the tolerance reflects that.
func TestFFTCrossCheck(t *testing.T) {
	var (
		f       = pistonForcing()
		nSamp   = 1 << 17
		samples = make([]float64, nSamp)
	)
	for i := range samples {
		samples[i] = f.At(float64(i) * f.T / float64(nSamp))
	}
	coeffs := fourier.NewFFT(nSamp).Coefficients(nil, samples)
	s, err := ComputeHarmonics(f, 6)
	assert.NoError(t, err)
	assert.InDelta(t, s.A0, 2*real(coeffs[0])/float64(nSamp), 1.e-3)
	for n := 1; n <= 6; n++ {
		an := 2 * real(coeffs[n]) / float64(nSamp)
		bn := -2 * imag(coeffs[n]) / float64(nSamp)
		assert.InDelta(t, s.A[n-1], an, 1.e-3)
		assert.InDelta(t, s.B[n-1], bn, 1.e-3)
	}
}

func TestConstantForcing(t *testing.T) {
	const V = 2.5
	f := Forcing{
		T: 7.5,
		Segments: []Segment{
			{Start: 0, End: 2.5, Value: V},
			{Start: 2.5, End: 7.5, Value: V},
		},
	}
	a0, err := ComputeDC(f)
	assert.NoError(t, err)
	assert.InDelta(t, 2*V, a0, 1.e-13)
	s, err := ComputeHarmonics(f, 8)
	assert.NoError(t, err)
	for n := 0; n < 8; n++ {
		assert.InDelta(t, 0, s.A[n], 1.e-12)
		assert.InDelta(t, 0, s.B[n], 1.e-12)
	}
	for _, tt := range []float64{0, 1.1, 3.75, 7.49} {
		assert.InDelta(t, V, s.Evaluate(tt), 1.e-12)
	}
}

func TestLinearity(t *testing.T) {
	f := pistonForcing()
	g := f
	g.Segments = make([]Segment, len(f.Segments))
	gVals := []float64{-1.0, 2.0, 0.5, 4.0}
	for i, sg := range f.Segments {
		sg.Value = gVals[i]
		g.Segments[i] = sg
	}
	sum := f
	sum.Segments = make([]Segment, len(f.Segments))
	for i, sg := range f.Segments {
		sg.Value += gVals[i]
		sum.Segments[i] = sg
	}
	const N = 12
	fS, err := ComputeHarmonics(f, N)
	assert.NoError(t, err)
	gS, err := ComputeHarmonics(g, N)
	assert.NoError(t, err)
	sumS, err := ComputeHarmonics(sum, N)
	assert.NoError(t, err)
	assert.InDelta(t, fS.A0+gS.A0, sumS.A0, 1.e-12)
	for n := 0; n < N; n++ {
		assert.InDelta(t, fS.A[n]+gS.A[n], sumS.A[n], 1.e-12)
		assert.InDelta(t, fS.B[n]+gS.B[n], sumS.B[n], 1.e-12)
	}
}

func TestPeriodicity(t *testing.T) {
	f := pistonForcing()
	s, err := ComputeHarmonics(f, 10)
	assert.NoError(t, err)
	for _, tt := range []float64{0, 0.37, 5, 29.99, 42.5} {
		ref := s.Evaluate(tt)
		for _, k := range []float64{-3, -1, 1, 2, 7} {
			assert.InDelta(t, ref, s.Evaluate(tt+k*f.T), 1.e-9)
		}
	}
	// the forcing itself folds negative times the same way
	assert.Equal(t, 3.0, f.At(-55))
	assert.Equal(t, 0.0, f.At(-50))
	assert.Equal(t, 1.0, f.At(-25))
}

func TestConvergenceMSE(t *testing.T) {
	f := pistonForcing()
	var last = math.Inf(1)
	for _, N := range []int{1, 2, 4, 8, 16, 32, 64} {
		s, err := ComputeHarmonics(f, N)
		assert.NoError(t, err)
		mse := ReconstructionMSE(f, s, 4096)
		assert.True(t, mse <= last+1.e-12, "MSE rose from %v to %v at N=%d", last, mse, N)
		last = mse
	}
}

func TestOrderZero(t *testing.T) {
	f := pistonForcing()
	s, err := ComputeHarmonics(f, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, s.Order())
	assert.Equal(t, 0, len(s.A))
	assert.Equal(t, 0, len(s.B))
	for _, tt := range []float64{-10, 0, 13.3, 59.9, 600} {
		assert.InDelta(t, s.A0/2, s.Evaluate(tt), 1.e-14)
	}
}

func TestDegenerateInputs(t *testing.T) {
	f := pistonForcing()
	f.T = 0
	var de *DomainError
	_, err := ComputeDC(f)
	assert.Error(t, err)
	assert.True(t, errors.As(err, &de))
	_, err = ComputeHarmonics(f, 5)
	assert.Error(t, err)
	assert.True(t, errors.As(err, &de))

	f.T = -60
	_, err = ComputeHarmonics(f, 5)
	assert.True(t, errors.As(err, &de))

	_, err = ComputeHarmonics(pistonForcing(), -1)
	assert.Error(t, err)
	assert.True(t, errors.As(err, &de))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, pistonForcing().Validate())

	var se *InputShapeError
	empty := Forcing{T: 60}
	assert.True(t, errors.As(empty.Validate(), &se))

	gap := pistonForcing()
	gap.Segments[3].End = 55
	assert.True(t, errors.As(gap.Validate(), &se))

	inverted := pistonForcing()
	inverted.Segments[1] = Segment{Start: 30, End: 10, Value: 0}
	assert.True(t, errors.As(inverted.Validate(), &se))

	var de *DomainError
	bad := pistonForcing()
	bad.T = 0
	assert.True(t, errors.As(bad.Validate(), &de))
}

func isNear(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, val := range a {
		if math.Abs(b[i]-val) > tol {
			return false
		}
	}
	return true
}

func relNear(a, b, tol float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1.e-12 {
		return true
	}
	return math.Abs(a-b) <= tol*scale
}
