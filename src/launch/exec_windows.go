//go:build !unix

package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// execProcess approximates exec on platforms without it: spawn the child
// with our stdio, wait, and exit with its status. Externally this is
// indistinguishable from a replacement for this tool's purposes; like the
// unix version it returns only when the child could not be started.
func execProcess(path string, argv, env []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return fmt.Errorf("launch: run %s: %w", path, err)
	}
	os.Exit(0)
	return nil
}
