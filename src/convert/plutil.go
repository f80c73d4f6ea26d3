package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// plutilPath is a var so tests can point it at a stub.
var plutilPath = "/usr/bin/plutil"

// toXML converts the binary plist at path to XML via plutil, streaming
// the file on stdin and capturing the converted document from stdout.
func toXML(ctx context.Context, path string) ([]byte, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("convert: open %s: %w", path, err)
	}
	defer in.Close()

	cmd := exec.CommandContext(ctx, plutilPath, "-convert", "xml1", "-", "-o", "-")
	cmd.Stdin = in
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("convert: plutil %s: %w: %s",
			path, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
