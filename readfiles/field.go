package readfiles

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/types"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/utils"
)

// XTField is one field collected across snapshots into an x-t raster:
// row i holds the spatial profile at Times[i]. M is read only once
// assembled, and FMin/FMax lock the color scale across every view of the
// same field.
type XTField struct {
	Field      types.FieldFlag
	M          utils.Matrix
	Times      []float64
	X          []float64
	FMin, FMax float64
}

// AssembleField builds the x-t raster of one field. Every snapshot must
// carry the identical index set, a mismatch reports the offending file.
// dx converts the common index set into physical coordinates.
func AssembleField(snaps []*Snapshot, ff types.FieldFlag, dx float64) (xt *XTField, err error) {
	if len(snaps) == 0 {
		return nil, fmt.Errorf("no snapshots to assemble")
	}
	ref := snaps[0]
	for _, snap := range snaps[1:] {
		if len(snap.Idx) != len(ref.Idx) {
			return nil, fmt.Errorf("%s has %d points, %s has %d: snapshots do not share a grid",
				snap.File, len(snap.Idx), ref.File, len(ref.Idx))
		}
		for i, ix := range snap.Idx {
			if ix != ref.Idx[i] {
				return nil, fmt.Errorf("%s: index %d at position %d, %s has %d: snapshots do not share a grid",
					snap.File, ix, i, ref.File, ref.Idx[i])
			}
		}
	}
	var (
		nt = len(snaps)
		nx = len(ref.Idx)
	)
	xt = &XTField{
		Field: ff,
		M:     utils.NewMatrix(nt, nx),
		Times: make([]float64, nt),
		X:     make([]float64, nx),
	}
	for i, ix := range ref.Idx {
		xt.X[i] = float64(ix)
	}
	floats.Scale(dx, xt.X)
	for i, snap := range snaps {
		xt.Times[i] = snap.Time
		xt.M.SetRow(i, snap.Field(ff))
	}
	xt.FMin, xt.FMax = xt.M.Min(), xt.M.Max()
	xt.M.SetReadOnly("fieldXT-" + ff.String())
	return
}

// Probe returns the field history at one position of the common index
// set, the time series a point gauge would record.
func (xt *XTField) Probe(ix int) (times, vals []float64, err error) {
	_, nx := xt.M.Dims()
	if ix < 0 || ix >= nx {
		return nil, nil, fmt.Errorf("probe index %d outside the %d assembled points", ix, nx)
	}
	times = xt.Times
	vals = xt.M.Col(ix).RawVector().Data
	return
}
