package launchd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"notesbackup/src/logging"
	"notesbackup/src/schedule"
)

// launchctlPath is a var so tests can point it at a stub.
var launchctlPath = "/bin/launchctl"

// Load runs `launchctl load -w` for every agent plist under agentsDir.
// The first failure aborts the remaining loads.
func Load(ctx context.Context, agentsDir string) error {
	return runAll(ctx, "load", agentsDir)
}

// Unload runs `launchctl unload -w` for every agent plist under agentsDir.
func Unload(ctx context.Context, agentsDir string) error {
	return runAll(ctx, "unload", agentsDir)
}

func runAll(ctx context.Context, verb, agentsDir string) error {
	log := logging.GetLogger("launchd")
	for _, f := range schedule.All() {
		plist := PlistPath(agentsDir, f)
		log.Info().Str("plist", plist).Msgf("%sing", verb)
		if err := runLaunchctl(ctx, verb, "-w", plist); err != nil {
			return err
		}
	}
	return nil
}

func runLaunchctl(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, launchctlPath, args...)
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("launchd: launchctl %s: %w: %s",
			strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
