package launchd

import (
	"fmt"
	"os"
	"path/filepath"

	"notesbackup/src/logging"
	"notesbackup/src/schedule"
)

// AgentsDir returns the current user's LaunchAgents directory.
func AgentsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("launchd: resolve home dir: %w", err)
	}
	return filepath.Join(home, "Library", "LaunchAgents"), nil
}

// PlistPath returns the agent plist path for f under agentsDir.
func PlistPath(agentsDir string, f schedule.Frequency) string {
	return filepath.Join(agentsDir, Label(f)+".plist")
}

// Install writes one agent plist per frequency into agentsDir via
// tempfile, fsync and rename, so a crash never leaves a torn plist for
// launchd to chew on. It returns the installed paths.
func Install(agentsDir, installDir, pipenvPath string) ([]string, error) {
	log := logging.GetLogger("launchd")
	installed := make([]string, 0, len(schedule.All()))
	for _, f := range schedule.All() {
		dest := PlistPath(agentsDir, f)
		data, err := Render(f, installDir, pipenvPath)
		if err != nil {
			return installed, err
		}
		if err := writeAtomic(dest, data); err != nil {
			return installed, err
		}
		log.Info().Str("path", dest).Msg("created plist")
		installed = append(installed, dest)
	}
	return installed, nil
}

// Uninstall removes the agent plists. Missing files are skipped; the
// removed paths are returned.
func Uninstall(agentsDir string) ([]string, error) {
	removed := make([]string, 0, len(schedule.All()))
	for _, f := range schedule.All() {
		dest := PlistPath(agentsDir, f)
		if err := os.Remove(dest); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("launchd: remove %s: %w", dest, err)
		}
		removed = append(removed, dest)
	}
	return removed, nil
}

func writeAtomic(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("launchd: create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".plist-*")
	if err != nil {
		return fmt.Errorf("launchd: create temp file: %w", err)
	}
	cleanup := func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}
	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("launchd: write %s: %w", dest, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("launchd: sync %s: %w", dest, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		cleanup()
		return fmt.Errorf("launchd: chmod %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("launchd: close %s: %w", dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		cleanup()
		return fmt.Errorf("launchd: rename %s into place: %w", dest, err)
	}
	return nil
}
