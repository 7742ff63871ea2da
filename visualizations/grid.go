package visualizations

import (
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/readfiles"
)

// fieldGrid adapts an assembled x-t field to the plotter.GridXYZ interface:
// columns run along x, rows along t.
type fieldGrid struct {
	xt *readfiles.XTField
}

func (g fieldGrid) Dims() (c, r int) {
	nt, nx := g.xt.M.Dims()
	return nx, nt
}
func (g fieldGrid) Z(c, r int) float64 { return g.xt.M.At(r, c) }
func (g fieldGrid) X(c int) float64    { return g.xt.X[c] }
func (g fieldGrid) Y(r int) float64    { return g.xt.Times[r] }

// profileGrid tiles a single spatial profile along a dummy vertical axis
// so a 1D snapshot renders as a banded heatmap.
type profileGrid struct {
	x, vals []float64
	rows    int
}

func (g profileGrid) Dims() (c, r int)   { return len(g.vals), g.rows }
func (g profileGrid) Z(c, r int) float64 { return g.vals[c] }
func (g profileGrid) X(c int) float64    { return g.x[c] }
func (g profileGrid) Y(r int) float64    { return float64(r) }
