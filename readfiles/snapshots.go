package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/types"
)

// snapshotHeader is the exact field list the solver writes. Ingestion
// checks nothing beyond its presence.
const snapshotHeader = "time,idx,rho,vel,pres"

// Snapshot is the simulator state at one instant, one row per retained
// grid index.
type Snapshot struct {
	File string
	Time float64
	Idx  []int
	Rho  []float64
	Vel  []float64
	Pres []float64
}

func (s *Snapshot) Field(ff types.FieldFlag) []float64 {
	switch ff {
	case types.F_Rho:
		return s.Rho
	case types.F_Vel:
		return s.Vel
	}
	return s.Pres
}

// TimeFromFilename recovers the snapshot instant from names of the form
// snapshot_<time>.csv or snapshot_<time>.csv.zst, where <time> is
// formatted in scientific notation.
func TimeFromFilename(filename string) (t float64, err error) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, ".zst")
	base = strings.TrimSuffix(base, ".csv")
	if !strings.HasPrefix(base, "snapshot_") {
		err = fmt.Errorf("%s does not look like a snapshot file", filename)
		return
	}
	if t, err = strconv.ParseFloat(strings.TrimPrefix(base, "snapshot_"), 64); err != nil {
		err = fmt.Errorf("unable to parse time from %s: %w", filename, err)
	}
	return
}

// ReadSnapshot parses one snapshot CSV, transparently decompressing
// zstd files. The instant is taken from the filename, falling back to the
// time column of the first row when the name does not carry one.
func ReadSnapshot(filename string) (snap *Snapshot, err error) {
	var (
		file *os.File
		rd   io.Reader
	)
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open snapshot %s: %w", filename, err)
	}
	defer file.Close()
	rd = file
	if strings.HasSuffix(filename, ".zst") {
		var dec *zstd.Decoder
		if dec, err = zstd.NewReader(file); err != nil {
			return nil, fmt.Errorf("unable to open zstd reader on %s: %w", filename, err)
		}
		defer dec.Close()
		rd = dec
	}

	scanner := bufio.NewScanner(rd)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%s is empty", filename)
	}
	if hdr := strings.TrimSpace(scanner.Text()); hdr != snapshotHeader {
		return nil, fmt.Errorf("%s: header %q, want %q", filename, hdr, snapshotHeader)
	}

	snap = &Snapshot{File: filename}
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 5 {
			return nil, fmt.Errorf("%s:%d: %d fields, want 5", filename, lineNo, len(fields))
		}
		vals := make([]float64, 5)
		for i, fs := range fields {
			if vals[i], err = strconv.ParseFloat(strings.TrimSpace(fs), 64); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNo, err)
			}
		}
		if len(snap.Idx) == 0 {
			snap.Time = vals[0]
		}
		snap.Idx = append(snap.Idx, int(vals[1]))
		snap.Rho = append(snap.Rho, vals[2])
		snap.Vel = append(snap.Vel, vals[3])
		snap.Pres = append(snap.Pres, vals[4])
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if len(snap.Idx) == 0 {
		return nil, fmt.Errorf("%s carries no data rows", filename)
	}
	if t, terr := TimeFromFilename(filename); terr == nil {
		snap.Time = t
	}
	return
}

// WriteSnapshot emits one snapshot in the solver's CSV layout into dir,
// keeping every stride-th index, optionally zstd compressed. It returns
// the written filename.
func WriteSnapshot(dir string, t float64, stride int, rho, vel, pres []float64, compress bool) (filename string, err error) {
	if stride < 1 {
		stride = 1
	}
	filename = filepath.Join(dir, fmt.Sprintf("snapshot_%.6e.csv", t))
	if compress {
		filename += ".zst"
	}
	var file *os.File
	if file, err = os.Create(filename); err != nil {
		return "", fmt.Errorf("unable to create snapshot %s: %w", filename, err)
	}
	defer file.Close()
	var w io.Writer = file
	var enc *zstd.Encoder
	if compress {
		if enc, err = zstd.NewWriter(file); err != nil {
			return "", fmt.Errorf("unable to open zstd writer on %s: %w", filename, err)
		}
		w = enc
	}
	fmt.Fprintf(w, "%s\n", snapshotHeader)
	for i := 0; i < len(rho); i += stride {
		fmt.Fprintf(w, "%.6f,%d,%.12e,%.12e,%.12e\n", t, i, rho[i], vel[i], pres[i])
	}
	if enc != nil {
		if err = enc.Close(); err != nil {
			return "", fmt.Errorf("closing zstd writer on %s: %w", filename, err)
		}
	}
	return
}
