// Package convert turns exported .anote binary plists into plain text
// files, using plutil for the binary-to-XML step.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"notesbackup/src/logging"
)

// Dir converts every *.anote file under inDir into a .txt file under
// outDir. Files whose body cannot be located are collected and reported
// on out at the end; a plutil or write failure aborts the batch.
func Dir(ctx context.Context, inDir, outDir string, out io.Writer) error {
	log := logging.GetLogger("convert")

	paths, err := filepath.Glob(filepath.Join(inDir, "*.anote"))
	if err != nil {
		return fmt.Errorf("convert: glob %s: %w", inDir, err)
	}
	sort.Strings(paths)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("convert: create output dir: %w", err)
	}

	var failed []string
	for _, path := range paths {
		data, err := toXML(ctx, path)
		if err != nil {
			return err
		}
		objs, err := parseObjects(data)
		if err != nil {
			return fmt.Errorf("%w (in %s)", err, path)
		}
		body, ok := ExtractNote(objs)
		if !ok {
			log.Debug().Str("path", path).Msg("no note body found")
			failed = append(failed, path)
			continue
		}

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outPath := filepath.Join(outDir, stem+".txt")
		content := fmt.Sprintf("%s\n\n%s\n\n", stem, body)
		if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
			return fmt.Errorf("convert: write %s: %w", outPath, err)
		}
		fmt.Fprintf(out, "wrote %s\n", outPath)
	}

	if len(failed) > 0 {
		fmt.Fprintln(out, "failed inputs:")
		fmt.Fprintln(out, strings.Join(failed, "\n"))
	}
	return nil
}
