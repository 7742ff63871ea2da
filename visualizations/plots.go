// Package visualizations renders the simulation post-processing views as
// static PNG files: x-t rasters of one field, single snapshot profiles,
// probe time series and the Fourier reconstruction overlay.
package visualizations

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/piston_fourier"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/readfiles"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/types"
)

// profileRows is the tile height used to render a 1D profile as a band.
const profileRows = 40

func lockedColorMap(min, max float64) (cm palette.ColorMap) {
	cm = moreland.Kindlmann()
	if max <= min {
		// degenerate range, widen so the palette stays valid
		max = min + 1
	}
	cm.SetMin(min)
	cm.SetMax(max)
	return
}

// XTHeatmap renders the assembled x-t field as a heatmap with the color
// scale locked to the field's global range.
func XTHeatmap(xt *readfiles.XTField, title, filename string) (err error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "t (s)"
	hm := plotter.NewHeatMap(fieldGrid{xt}, lockedColorMap(xt.FMin, xt.FMax).Palette(255))
	hm.Min, hm.Max = xt.FMin, xt.FMax
	p.Add(hm)
	if err = p.Save(10*vg.Inch, 6*vg.Inch, filename); err != nil {
		err = fmt.Errorf("unable to save heatmap to %s: %w", filename, err)
	}
	return
}

// XTContour renders the x-t field as filled contour lines, the static
// stand-in for a surface view, with levels spread across the locked range.
func XTContour(xt *readfiles.XTField, nLevels int, title, filename string) (err error) {
	if nLevels < 2 {
		nLevels = 2
	}
	var (
		levels = make([]float64, nLevels)
		span   = xt.FMax - xt.FMin
	)
	for i := range levels {
		levels[i] = xt.FMin + span*float64(i+1)/float64(nLevels+1)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "t (s)"
	ct := plotter.NewContour(fieldGrid{xt}, levels, lockedColorMap(xt.FMin, xt.FMax).Palette(nLevels))
	p.Add(ct)
	if err = p.Save(10*vg.Inch, 6*vg.Inch, filename); err != nil {
		err = fmt.Errorf("unable to save contour to %s: %w", filename, err)
	}
	return
}

// SnapshotHeatmap renders one snapshot's field profile as a banded
// heatmap. fMin and fMax lock the color scale, so a sequence of snapshots
// rendered with the same bounds shares one palette; pass the profile's own
// extrema for a single free-standing view.
func SnapshotHeatmap(snap *readfiles.Snapshot, ff types.FieldFlag, dx, fMin, fMax float64, filename string) (err error) {
	var (
		vals = snap.Field(ff)
		x    = make([]float64, len(snap.Idx))
	)
	for i, ix := range snap.Idx {
		x[i] = dx * float64(ix)
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s at t = %.4f s", ff, snap.Time)
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = ""
	p.Y.Tick.Marker = plot.ConstantTicks(nil)
	hm := plotter.NewHeatMap(profileGrid{x: x, vals: vals, rows: profileRows},
		lockedColorMap(fMin, fMax).Palette(255))
	hm.Min, hm.Max = fMin, fMax
	p.Add(hm)
	if err = p.Save(10*vg.Inch, 3*vg.Inch, filename); err != nil {
		err = fmt.Errorf("unable to save snapshot heatmap to %s: %w", filename, err)
	}
	return
}

// ProbeSeries renders the history of one field at a probe location as a
// line with point markers.
func ProbeSeries(times, vals []float64, yLabel, title, filename string) (err error) {
	pts := make(plotter.XYs, len(times))
	for i := range times {
		pts[i].X, pts[i].Y = times[i], vals[i]
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	line, points, lerr := plotter.NewLinePoints(pts)
	if lerr != nil {
		return fmt.Errorf("unable to build probe series plot: %w", lerr)
	}
	p.Add(line, points)
	if err = p.Save(10*vg.Inch, 6*vg.Inch, filename); err != nil {
		err = fmt.Errorf("unable to save probe series to %s: %w", filename, err)
	}
	return
}

// ReconstructionOverlay draws the piecewise forcing and its truncated
// Fourier reconstruction across one period on a shared axis.
func ReconstructionOverlay(f piston_fourier.Forcing, s *piston_fourier.Series, nSamples int, filename string) (err error) {
	if nSamples < 2 {
		nSamples = 2
	}
	var (
		orig  = make(plotter.XYs, nSamples)
		recon = make(plotter.XYs, nSamples)
		dt    = f.T / float64(nSamples-1)
	)
	for i := 0; i < nSamples; i++ {
		t := float64(i) * dt
		orig[i].X, orig[i].Y = t, f.At(t)
		recon[i].X, recon[i].Y = t, s.Evaluate(t)
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Piston forcing, Fourier reconstruction N = %d", s.Order())
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "a (m/s2)"
	p.Add(plotter.NewGrid())
	origLine, lerr := plotter.NewLine(orig)
	if lerr != nil {
		return fmt.Errorf("unable to build overlay plot: %w", lerr)
	}
	reconLine, lerr := plotter.NewLine(recon)
	if lerr != nil {
		return fmt.Errorf("unable to build overlay plot: %w", lerr)
	}
	reconLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(origLine, reconLine)
	p.Legend.Add("piecewise forcing", origLine)
	p.Legend.Add("fourier partial sum", reconLine)
	p.Legend.Top = true
	if err = p.Save(10*vg.Inch, 6*vg.Inch, filename); err != nil {
		err = fmt.Errorf("unable to save overlay to %s: %w", filename, err)
	}
	return
}
