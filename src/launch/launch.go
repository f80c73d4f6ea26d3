// Package launch implements the notesbackup bootstrap: it resolves a
// Config from the environment and replaces the current process with
// `pipenv run <install>/backup_notes.py <args...>`.
package launch

import "os"

// Run hands the process over to pipenv. On success it does not return:
// the process image is replaced (or, on platforms without exec, the
// process exits with the child's status). A non-nil return means the
// replacement itself failed and nothing was run.
func Run(cfg Config, args []string) error {
	return execProcess(cfg.PipenvPath, cfg.Argv(args), cfg.ChildEnv(os.Environ()))
}
