package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"notesbackup/src/launch"
	"notesbackup/src/safety"
)

// addGlobalFlags adds the persistent flags shared by every subcommand.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().CountP("verbose", "v", "Verbose operation (repeatable)")
	cmd.PersistentFlags().String("log-file", "", "Also write logs to this file (rotated)")
	cmd.PersistentFlags().Bool("dry-run", false, "Show planned actions without making changes")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Assume 'yes' to prompts and run non-interactively")
}

// getSafetyOptions reads the global flags into a safety.Options struct.
func getSafetyOptions(cmd *cobra.Command) safety.Options {
	dry, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	yes, _ := cmd.Root().PersistentFlags().GetBool("yes")
	return safety.Options{DryRun: dry, Yes: yes}
}

// envDefault resolves a flag default through the NOTES_BACKUP_* env
// surface, treating empty the same as unset.
func envDefault(name, fallback string) string {
	return launch.Getenv(os.LookupEnv, name, fallback)
}

func defaultNotesDB() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "NoteStore.sqlite"
	}
	return filepath.Join(home, "Library", "Group Containers", "group.com.apple.notes", "NoteStore.sqlite")
}

func defaultBackupDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "backups"
	}
	return filepath.Join(home, "Documents", "notesbackup", "backups")
}
