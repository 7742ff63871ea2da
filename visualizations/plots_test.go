package visualizations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/piston_fourier"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/readfiles"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/types"
)

func testField(t *testing.T) *readfiles.XTField {
	t.Helper()
	var snaps []*readfiles.Snapshot
	for k := 0; k < 5; k++ {
		snap := &readfiles.Snapshot{
			File: "synthetic",
			Time: 0.1 * float64(k),
		}
		for i := 0; i < 12; i++ {
			snap.Idx = append(snap.Idx, i)
			snap.Rho = append(snap.Rho, 1.2+0.05*float64(i+k))
			snap.Vel = append(snap.Vel, -0.01*float64(k))
			snap.Pres = append(snap.Pres, 101325+25*float64(i*k))
		}
		snaps = append(snaps, snap)
	}
	xt, err := readfiles.AssembleField(snaps, types.F_Pres, 5.e-3)
	assert.NoError(t, err)
	return xt
}

func assertPNG(t *testing.T, filename string) {
	t.Helper()
	fi, err := os.Stat(filename)
	assert.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))
}

func TestXTHeatmap(t *testing.T) {
	xt := testField(t)
	fn := filepath.Join(t.TempDir(), "xt_pres.png")
	assert.NoError(t, XTHeatmap(xt, "pres x-t", fn))
	assertPNG(t, fn)
}

func TestXTContour(t *testing.T) {
	xt := testField(t)
	fn := filepath.Join(t.TempDir(), "xt_pres_contour.png")
	assert.NoError(t, XTContour(xt, 12, "pres x-t", fn))
	assertPNG(t, fn)
}

func TestSnapshotHeatmap(t *testing.T) {
	xt := testField(t)
	snap := &readfiles.Snapshot{Time: 0.2}
	for i := 0; i < 12; i++ {
		snap.Idx = append(snap.Idx, i)
		snap.Rho = append(snap.Rho, 1.2)
		snap.Vel = append(snap.Vel, 0)
		snap.Pres = append(snap.Pres, 101325+30*float64(i))
	}
	fn := filepath.Join(t.TempDir(), "snapshot.png")
	assert.NoError(t, SnapshotHeatmap(snap, types.F_Pres, 5.e-3, xt.FMin, xt.FMax, fn))
	assertPNG(t, fn)
}

func TestProbeSeries(t *testing.T) {
	xt := testField(t)
	times, vals, err := xt.Probe(0)
	assert.NoError(t, err)
	fn := filepath.Join(t.TempDir(), "pres0.png")
	assert.NoError(t, ProbeSeries(times, vals, "pres (Pa)", "piston face pressure", fn))
	assertPNG(t, fn)
}

func TestReconstructionOverlay(t *testing.T) {
	f := piston_fourier.Forcing{
		T: 60,
		Segments: []piston_fourier.Segment{
			{Start: 0, End: 10, Value: 3},
			{Start: 10, End: 30, Value: 0},
			{Start: 30, End: 40, Value: 1},
			{Start: 40, End: 60, Value: 0},
		},
	}
	s, err := piston_fourier.ComputeHarmonics(f, 20)
	assert.NoError(t, err)
	fn := filepath.Join(t.TempDir(), "overlay.png")
	assert.NoError(t, ReconstructionOverlay(f, s, 600, fn))
	assertPNG(t, fn)
}

// A flat field must not break the palette bounds.
func TestDegenerateRange(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "flat.png")
	snap := &readfiles.Snapshot{Time: 0}
	for i := 0; i < 8; i++ {
		snap.Idx = append(snap.Idx, i)
		snap.Rho = append(snap.Rho, 1.2)
		snap.Vel = append(snap.Vel, 0)
		snap.Pres = append(snap.Pres, 101325)
	}
	assert.NoError(t, SnapshotHeatmap(snap, types.F_Pres, 5.e-3, 101325, 101325, fn))
	assertPNG(t, fn)
}
