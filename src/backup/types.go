// Package backup snapshots a Notes sqlite database into compressed SQL
// dumps and applies frequency-based retention.
package backup

import (
	"path/filepath"
	"time"

	"notesbackup/src/schedule"
)

// Config describes a single backup run. It is immutable once built.
type Config struct {
	Src  string // sqlite database to snapshot
	Dst  string // directory receiving snapshots
	Freq schedule.Frequency
}

// SnapshotPath returns the final path of the snapshot taken at now.
func (c Config) SnapshotPath(now time.Time) string {
	return filepath.Join(c.Dst, schedule.SnapshotName(now, c.Freq))
}
