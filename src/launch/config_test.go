package launch_test

import (
	"reflect"
	"strings"
	"testing"

	"notesbackup/src/launch"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestResolve_Defaults(t *testing.T) {
	cfg := launch.Resolve(lookupFrom(nil))
	if cfg.InstallPath != "/opt/notesbackup" {
		t.Fatalf("install path: got %q", cfg.InstallPath)
	}
	if cfg.PipenvPath != "/usr/local/bin/pipenv" {
		t.Fatalf("pipenv path: got %q", cfg.PipenvPath)
	}
	if got := cfg.PipfilePath(); got != "/opt/notesbackup/Pipfile" {
		t.Fatalf("pipfile path: got %q", got)
	}
	if got := cfg.ScriptPath(); got != "/opt/notesbackup/backup_notes.py" {
		t.Fatalf("script path: got %q", got)
	}
}

func TestResolve_Overrides(t *testing.T) {
	cfg := launch.Resolve(lookupFrom(map[string]string{
		"NOTES_BACKUP_INSTALL_PATH": "/custom/dir",
		"NOTES_BACKUP_PIPENV_PATH":  "/usr/bin/pipenv",
	}))
	if cfg.InstallPath != "/custom/dir" || cfg.PipenvPath != "/usr/bin/pipenv" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if got := cfg.PipfilePath(); got != "/custom/dir/Pipfile" {
		t.Fatalf("pipfile path: got %q", got)
	}
	if got := cfg.ScriptPath(); got != "/custom/dir/backup_notes.py" {
		t.Fatalf("script path: got %q", got)
	}
}

func TestResolve_EmptyTreatedAsUnset(t *testing.T) {
	cfg := launch.Resolve(lookupFrom(map[string]string{
		"NOTES_BACKUP_INSTALL_PATH": "",
		"NOTES_BACKUP_PIPENV_PATH":  "",
	}))
	if cfg.InstallPath != "/opt/notesbackup" || cfg.PipenvPath != "/usr/local/bin/pipenv" {
		t.Fatalf("empty overrides must fall back to defaults; got %+v", cfg)
	}
}

func TestArgv_ForwardsVerbatim(t *testing.T) {
	cfg := launch.Resolve(lookupFrom(nil))

	cases := [][]string{
		nil,
		{"--dry-run"},
		{"backup", "--freq=hourly", "-v", "weird arg with spaces", "--", "-x"},
	}
	for _, args := range cases {
		want := append([]string{"/usr/local/bin/pipenv", "run", "/opt/notesbackup/backup_notes.py"}, args...)
		if got := cfg.Argv(args); !reflect.DeepEqual(got, want) {
			t.Fatalf("argv for %v:\n got %v\nwant %v", args, got, want)
		}
	}
}

func TestChildEnv_ForcesPipenvVars(t *testing.T) {
	cfg := launch.Resolve(lookupFrom(nil))
	parent := []string{
		"HOME=/Users/someone",
		"PIPENV_NOSPIN=0",
		"PIPENV_PIPFILE=/elsewhere/Pipfile",
		"PATH=/usr/bin",
	}
	env := cfg.ChildEnv(parent)

	got := map[string]string{}
	for _, kv := range env {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			t.Fatalf("malformed env entry %q", kv)
		}
		if _, dup := got[name]; dup {
			t.Fatalf("duplicate env entry for %s", name)
		}
		got[name] = val
	}

	want := map[string]string{
		"PIPENV_DEFAULT_PYTHON_VERSION": "/usr/bin/python3",
		"PIPENV_VENV_IN_PROJECT":        "1",
		"PIPENV_NOSPIN":                 "1",
		"PIPENV_PIPFILE":                "/opt/notesbackup/Pipfile",
	}
	for name, val := range want {
		if got[name] != val {
			t.Fatalf("%s: got %q, want %q", name, got[name], val)
		}
	}
	if got["HOME"] != "/Users/someone" || got["PATH"] != "/usr/bin" {
		t.Fatalf("unrelated parent entries must survive; got %v", env)
	}
}

func TestRun_MissingBinaryFails(t *testing.T) {
	cfg := launch.Config{
		InstallPath: t.TempDir(),
		PipenvPath:  t.TempDir() + "/no-such-pipenv",
	}
	err := launch.Run(cfg, []string{"--dry-run"})
	if err == nil {
		t.Fatal("expected an exec failure for a missing binary")
	}
}
