package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"notesbackup/src/backup"
	"notesbackup/src/logging"
	"notesbackup/src/schedule"
)

func newBackupCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		srcDB   string
		destDir string
		freqStr string
	)
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot the notes database and prune old backups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			freq, err := schedule.Parse(freqStr)
			if err != nil {
				return err
			}
			cfg := backup.Config{Src: srcDB, Dst: destDir, Freq: freq}
			opts := getSafetyOptions(cmd)

			if opts.DryRun {
				fmt.Fprintf(stdout, "would back up %s to %s\n", cfg.Src, cfg.SnapshotPath(time.Now()))
				plan, err := backup.PlanPrune(cfg.Dst, cfg.Freq)
				if err != nil {
					return err
				}
				for _, c := range plan {
					fmt.Fprintf(stdout, "would prune %s\n", c.Path)
				}
				return nil
			}

			var progressOut io.Writer
			if verbosity, _ := cmd.Root().PersistentFlags().GetCount("verbose"); verbosity > 0 {
				progressOut = stderr
			}
			if _, err := backup.Run(cmd.Context(), cfg, time.Now(), progressOut); err != nil {
				return err
			}
			plan, err := backup.PlanPrune(cfg.Dst, cfg.Freq)
			if err != nil {
				return err
			}
			if _, err := backup.Prune(plan); err != nil {
				return err
			}
			logger := logging.GetLogger("cli")
			logger.Info().Msg("backup complete")
			return nil
		},
	}
	cmd.Flags().StringVar(&srcDB, "src-db", envDefault("NOTES_BACKUP_SRC_DB", defaultNotesDB()),
		"Path to the notes db to back up")
	cmd.Flags().StringVar(&destDir, "dest-dir", envDefault("NOTES_BACKUP_DEST_DIR", defaultBackupDir()),
		"Destination where backups will be stored")
	cmd.Flags().StringVar(&freqStr, "freq", "hourly", "Backup frequency (hourly|daily|weekly|monthly)")
	return cmd
}
