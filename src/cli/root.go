package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"notesbackup/src/logging"
)

// NewRootCmd returns the root cobra command for the notesbackup CLI.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notesbackup",
		Short: "Back up the Apple Notes database and manage its launchd schedule",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity, _ := cmd.Root().PersistentFlags().GetCount("verbose")
			logFile, _ := cmd.Root().PersistentFlags().GetString("log-file")
			logging.Setup(verbosity, logFile)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addGlobalFlags(cmd)

	cmd.AddCommand(newVersionCmd(stdout))
	cmd.AddCommand(newBackupCmd(stdout, stderr))
	cmd.AddCommand(newPruneCmd(stdout, stderr))
	cmd.AddCommand(newInstallCmd(stdout))
	cmd.AddCommand(newUninstallCmd(stdout))
	cmd.AddCommand(newLoadCmd())
	cmd.AddCommand(newUnloadCmd())
	cmd.AddCommand(newConvertCmd(stdout))

	return cmd
}

// Execute runs the CLI with the process stdio.
func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
