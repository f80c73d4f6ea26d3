package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"notesbackup/src/backup"
	"notesbackup/src/safety"
	"notesbackup/src/schedule"
)

func newPruneCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		destDir string
		freqStr string
	)
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete snapshots beyond the retention count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			freqs := schedule.All()
			if freqStr != "all" {
				f, err := schedule.Parse(freqStr)
				if err != nil {
					return err
				}
				freqs = []schedule.Frequency{f}
			}

			var plan []backup.Candidate
			for _, f := range freqs {
				p, err := backup.PlanPrune(destDir, f)
				if err != nil {
					return err
				}
				plan = append(plan, p...)
			}

			tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FREQ\tTIMESTAMP\tPATH\tACTION")
			for _, c := range plan {
				fmt.Fprintf(tw, "%s\t%s\t%s\tdelete\n",
					c.Freq, c.Timestamp.Format(schedule.TimestampLayout), c.Path)
			}
			_ = tw.Flush()

			opts := getSafetyOptions(cmd)
			if opts.DryRun || len(plan) == 0 {
				return nil
			}
			ok, err := safety.Confirm(opts, os.Stdin, stderr,
				fmt.Sprintf("Delete %d snapshot(s)?", len(plan)))
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			_, err = backup.Prune(plan)
			return err
		},
	}
	cmd.Flags().StringVar(&destDir, "dest-dir", envDefault("NOTES_BACKUP_DEST_DIR", defaultBackupDir()),
		"Directory holding the snapshots")
	cmd.Flags().StringVar(&freqStr, "freq", "all", "Frequency to prune, or 'all'")
	return cmd
}
