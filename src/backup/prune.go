package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"notesbackup/src/logging"
	"notesbackup/src/schedule"
)

// Candidate is a snapshot slated for deletion.
type Candidate struct {
	Path      string
	Freq      schedule.Frequency
	Timestamp time.Time
}

// PlanPrune returns the snapshots of freq under dst that exceed the
// retention count, oldest first. Files that do not parse as snapshot
// names are left alone. A missing dst yields an empty plan.
func PlanPrune(dst string, freq schedule.Frequency) ([]Candidate, error) {
	entries, err := os.ReadDir(dst)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("backup: read snapshot dir: %w", err)
	}

	var snaps []Candidate
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), schedule.SnapshotSuffix(freq)) {
			continue
		}
		ts, f, err := schedule.ParseSnapshotName(e.Name())
		if err != nil || f != freq {
			continue
		}
		snaps = append(snaps, Candidate{
			Path:      filepath.Join(dst, e.Name()),
			Freq:      freq,
			Timestamp: ts,
		})
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Timestamp.Before(snaps[j].Timestamp) })

	excess := len(snaps) - freq.Retain()
	if excess <= 0 {
		return nil, nil
	}
	return snaps[:excess], nil
}

// Prune deletes the planned candidates and returns the removed paths.
func Prune(candidates []Candidate) ([]string, error) {
	log := logging.GetLogger("backup")
	removed := make([]string, 0, len(candidates))
	for _, c := range candidates {
		log.Info().Str("path", c.Path).Msg("pruning")
		if err := os.Remove(c.Path); err != nil {
			return removed, fmt.Errorf("backup: prune %s: %w", c.Path, err)
		}
		removed = append(removed, c.Path)
	}
	return removed, nil
}
