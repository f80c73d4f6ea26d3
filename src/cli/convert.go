package cli

import (
	"io"

	"github.com/spf13/cobra"

	"notesbackup/src/convert"
)

func newConvertCmd(stdout io.Writer) *cobra.Command {
	var (
		inDir  string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert exported .anote plists to plain text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert.Dir(cmd.Context(), inDir, outDir, stdout)
		},
	}
	cmd.Flags().StringVar(&inDir, "input", "backup", "Directory containing .anote files")
	cmd.Flags().StringVar(&outDir, "output", "converted", "Directory receiving .txt files")
	return cmd
}
