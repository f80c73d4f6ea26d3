package progress_test

import (
	"bytes"
	"strings"
	"testing"

	"notesbackup/src/util/progress"
)

func TestWriter_CountsAndReports(t *testing.T) {
	var sink, report bytes.Buffer
	w := progress.NewWriter(&sink, "dump", &report)

	payload := []byte("INSERT INTO \"notes\" VALUES(1,'x');\n")
	if _, err := w.Write(payload); err != nil {
		t.Fatal(err)
	}
	w.Finish()

	if sink.String() != string(payload) {
		t.Fatalf("payload must pass through unchanged; got %q", sink.String())
	}
	if w.Written() != int64(len(payload)) {
		t.Fatalf("written = %d, want %d", w.Written(), len(payload))
	}
	if !strings.Contains(report.String(), "[dump]") {
		t.Fatalf("expected a labelled report; got %q", report.String())
	}
}

func TestWriter_NilOutIsSilent(t *testing.T) {
	var sink bytes.Buffer
	w := progress.NewWriter(&sink, "dump", nil)
	if _, err := w.Write([]byte("data")); err != nil {
		t.Fatal(err)
	}
	w.Finish()
	if sink.String() != "data" {
		t.Fatalf("payload must pass through; got %q", sink.String())
	}
}
