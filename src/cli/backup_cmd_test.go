package cli_test

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"notesbackup/src/cli"
)

func makeTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "NoteStore.sqlite")
	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE notes (id INTEGER PRIMARY KEY, title TEXT)`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO notes VALUES (1, 'remember the milk')`); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBackupCmd_CreatesSnapshot(t *testing.T) {
	src := makeTestDB(t)
	dest := filepath.Join(t.TempDir(), "backups")

	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"backup", "--src-db", src, "--dest-dir", dest, "--freq", "daily"})
	if _, err := cmd.ExecuteC(); err != nil {
		t.Fatalf("backup command failed: %v; stderr=%s", err, errBuf.String())
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one snapshot, found %d", len(entries))
	}
	if name := entries[0].Name(); !strings.HasSuffix(name, "_daily.sql.xz") {
		t.Fatalf("unexpected snapshot name %q", name)
	}
}

func TestBackupCmd_DryRunWritesNothing(t *testing.T) {
	src := makeTestDB(t)
	dest := filepath.Join(t.TempDir(), "backups")

	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"backup", "--src-db", src, "--dest-dir", dest, "--freq", "daily", "--dry-run"})
	if _, err := cmd.ExecuteC(); err != nil {
		t.Fatalf("backup command failed: %v; stderr=%s", err, errBuf.String())
	}

	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Fatalf("dry-run must not create the destination; stat err=%v", err)
	}
	if !strings.Contains(out.String(), "would back up") {
		t.Fatalf("expected a dry-run preview; got:\n%s", out.String())
	}
}

func TestBackupCmd_RejectsUnknownFrequency(t *testing.T) {
	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"backup", "--freq", "fortnightly"})
	if _, err := cmd.ExecuteC(); err == nil {
		t.Fatal("expected an error for an unknown frequency")
	}
}
