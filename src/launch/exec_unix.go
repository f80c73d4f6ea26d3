//go:build unix

package launch

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// execProcess performs a true process-image replacement. It returns only
// on failure; the child keeps this pid and owns the standard streams.
func execProcess(path string, argv, env []string) error {
	if err := unix.Exec(path, argv, env); err != nil {
		return fmt.Errorf("launch: exec %s: %w", path, err)
	}
	return nil
}
