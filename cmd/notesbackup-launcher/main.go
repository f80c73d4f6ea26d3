// notesbackup-launcher replaces itself with `pipenv run backup_notes.py`,
// forwarding every argument it was given. It exists so launchd jobs and
// shell users get a stable entry point that pins the pipenv environment.
package main

import (
	"fmt"
	"os"

	"notesbackup/src/launch"
)

func main() {
	cfg := launch.Resolve(os.LookupEnv)
	if err := launch.Run(cfg, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
