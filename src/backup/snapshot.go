package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ulikunitz/xz"

	"notesbackup/src/logging"
	"notesbackup/src/util/progress"
)

// Run takes one snapshot: the database at cfg.Src is dumped through an xz
// writer into a temp file beside the destination, fsynced, and atomically
// renamed to the timestamped snapshot path. A partial snapshot never
// appears under the final name; on any error the temp file is removed.
// progressOut, when non-nil, receives byte-count progress.
func Run(ctx context.Context, cfg Config, now time.Time, progressOut io.Writer) (string, error) {
	log := logging.GetLogger("backup")

	if err := os.MkdirAll(cfg.Dst, 0o700); err != nil {
		return "", fmt.Errorf("backup: create destination dir: %w", err)
	}
	dest := cfg.SnapshotPath(now)

	tmp, err := os.CreateTemp(cfg.Dst, ".snapshot-*")
	if err != nil {
		return "", fmt.Errorf("backup: create temp file: %w", err)
	}
	cleanup := func() {
		tmp.Close()
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Error().Err(rmErr).Str("path", tmp.Name()).Msg("failed to unlink tempfile")
		}
	}

	// SHA-256 block checksums match what the original xz stream carried.
	xzw, err := xz.WriterConfig{CheckSum: xz.SHA256}.NewWriter(tmp)
	if err != nil {
		cleanup()
		return "", fmt.Errorf("backup: init xz writer: %w", err)
	}

	pw := progress.NewWriter(xzw, "dump", progressOut)
	if err := Dump(ctx, cfg.Src, pw); err != nil {
		cleanup()
		return "", err
	}
	pw.Finish()

	if err := xzw.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("backup: finish xz stream: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return "", fmt.Errorf("backup: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("backup: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		cleanup()
		return "", fmt.Errorf("backup: rename snapshot into place: %w", err)
	}

	log.Info().Str("path", dest).Int64("dumpBytes", pw.Written()).Msg("created backup")
	return dest, nil
}
