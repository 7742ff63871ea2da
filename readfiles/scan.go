package readfiles

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ScanSnapshots discovers the snapshot files under dir and returns them
// parsed and sorted by the time embedded in each filename. Files matching
// the snapshot pattern that fail to parse are skipped with a notice, so a
// build directory holding unrelated leftovers still scans.
func ScanSnapshots(dir string, verbose bool) (snaps []*Snapshot, err error) {
	var names []string
	for _, pattern := range []string{"snapshot_*.csv", "snapshot_*.csv.zst"} {
		matched, gerr := filepath.Glob(filepath.Join(dir, pattern))
		if gerr != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, gerr)
		}
		names = append(names, matched...)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no snapshot files found under %s", dir)
	}
	for _, name := range names {
		if _, terr := TimeFromFilename(name); terr != nil {
			fmt.Printf("skipping %s: %v\n", name, terr)
			continue
		}
		snap, rerr := ReadSnapshot(name)
		if rerr != nil {
			fmt.Printf("skipping %s: %v\n", name, rerr)
			continue
		}
		snaps = append(snaps, snap)
	}
	if len(snaps) == 0 {
		return nil, fmt.Errorf("no readable snapshots under %s", dir)
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Time < snaps[j].Time })
	if verbose {
		fmt.Printf("Read %d snapshots spanning t = [%8.4f, %8.4f]\n",
			len(snaps), snaps[0].Time, snaps[len(snaps)-1].Time)
	}
	return
}
