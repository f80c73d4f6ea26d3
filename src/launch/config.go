package launch

import (
	"path/filepath"
	"strings"
)

// Environment variables the launcher consumes. Both are optional overrides.
const (
	EnvInstallPath = "NOTES_BACKUP_INSTALL_PATH"
	EnvPipenvPath  = "NOTES_BACKUP_PIPENV_PATH"
)

// Built-in defaults used when the override variables are unset or empty.
const (
	DefaultInstallPath = "/opt/notesbackup"
	DefaultPipenvPath  = "/usr/local/bin/pipenv"
)

// Fixed values forced into the child environment.
const (
	pythonInterpreter = "/usr/bin/python3"

	envPython  = "PIPENV_DEFAULT_PYTHON_VERSION"
	envVenv    = "PIPENV_VENV_IN_PROJECT"
	envNoSpin  = "PIPENV_NOSPIN"
	envPipfile = "PIPENV_PIPFILE"
)

// Config holds the resolved launch configuration. It is built once at
// startup and never mutated.
type Config struct {
	InstallPath string
	PipenvPath  string
}

// Getenv resolves name through lookup, falling back to fallback when the
// variable is unset or empty. Empty is deliberately treated the same as
// unset, matching shell ${VAR:-default} expansion.
func Getenv(lookup func(string) (string, bool), name, fallback string) string {
	if v, ok := lookup(name); ok && v != "" {
		return v
	}
	return fallback
}

// Resolve builds a Config from the environment. lookup is typically
// os.LookupEnv.
func Resolve(lookup func(string) (string, bool)) Config {
	return Config{
		InstallPath: Getenv(lookup, EnvInstallPath, DefaultInstallPath),
		PipenvPath:  Getenv(lookup, EnvPipenvPath, DefaultPipenvPath),
	}
}

// PipfilePath returns the manifest path derived from the install dir.
func (c Config) PipfilePath() string {
	return filepath.Join(c.InstallPath, "Pipfile")
}

// ScriptPath returns the backup script path derived from the install dir.
func (c Config) ScriptPath() string {
	return filepath.Join(c.InstallPath, "backup_notes.py")
}

// Argv returns the full child argument vector: the pipenv binary itself,
// then `run <script>`, then the caller's arguments verbatim and in order.
func (c Config) Argv(args []string) []string {
	argv := make([]string, 0, 3+len(args))
	argv = append(argv, c.PipenvPath, "run", c.ScriptPath())
	return append(argv, args...)
}

// ChildEnv returns parent with the four pipenv variables forced to their
// fixed values. Existing entries for those names are dropped first, so the
// child always sees ours regardless of what the parent carried.
func (c Config) ChildEnv(parent []string) []string {
	forced := map[string]string{
		envPython:  pythonInterpreter,
		envVenv:    "1",
		envNoSpin:  "1",
		envPipfile: c.PipfilePath(),
	}
	env := make([]string, 0, len(parent)+len(forced))
	for _, kv := range parent {
		name, _, ok := strings.Cut(kv, "=")
		if ok {
			if _, clash := forced[name]; clash {
				continue
			}
		}
		env = append(env, kv)
	}
	for _, name := range []string{envPython, envVenv, envNoSpin, envPipfile} {
		env = append(env, name+"="+forced[name])
	}
	return env
}
