package piston_fourier

import "math"

// Segment is one piece of a piecewise constant forcing: the function takes
// Value on the half open interval [Start, End) within one period.
type Segment struct {
	Start, End float64
	Value      float64
}

func (sg Segment) Width() float64 {
	return sg.End - sg.Start
}

// Forcing is a periodic piecewise constant function: an ordered segment
// list tiling one period [0, T). Segments must not overlap and must cover
// the period without gaps; beyond the cheap checks in Validate this is the
// caller's responsibility.
type Forcing struct {
	T        float64
	Segments []Segment
}

// widthTol bounds the accepted mismatch between the summed segment widths
// and the period in Validate.
const widthTol = 1.e-9

// Validate runs the defensive shape checks: positive period, at least one
// segment, each segment nonempty, widths summing to the period.
func (f Forcing) Validate() error {
	if f.T <= 0 {
		return domainErrorf("period T = %v, must be positive", f.T)
	}
	if len(f.Segments) == 0 {
		return shapeErrorf("empty segment list")
	}
	var widthSum float64
	for i, sg := range f.Segments {
		if sg.Width() <= 0 {
			return shapeErrorf("segment %d has width %v, must be positive", i, sg.Width())
		}
		widthSum += sg.Width()
	}
	if math.Abs(widthSum-f.T) > widthTol*math.Max(1, f.T) {
		return shapeErrorf("segment widths sum to %v, period is %v", widthSum, f.T)
	}
	return nil
}

// reducePeriod maps t into [0, T) with a true non-negative modulo.
// math.Mod keeps the sign of the dividend, so negative times need the
// extra fold.
func reducePeriod(t, T float64) (tr float64) {
	tr = math.Mod(t, T)
	if tr < 0 {
		tr += T
	}
	return
}

// At evaluates the forcing at time t, periodically extended over all of R.
func (f Forcing) At(t float64) (val float64) {
	tr := reducePeriod(t, f.T)
	for _, sg := range f.Segments {
		if tr >= sg.Start && tr < sg.End {
			return sg.Value
		}
	}
	return
}
