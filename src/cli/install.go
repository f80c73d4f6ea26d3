package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"notesbackup/src/launch"
	"notesbackup/src/launchd"
	"notesbackup/src/safety"
	"notesbackup/src/schedule"
)

// agentsDirFlag adds the shared --agents-dir flag. The default is resolved
// lazily so a missing home dir only fails commands that actually touch it.
func agentsDirFlag(cmd *cobra.Command, dest *string) {
	cmd.Flags().StringVar(dest, "agents-dir", "", "LaunchAgents directory (default ~/Library/LaunchAgents)")
}

func resolveAgentsDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return launchd.AgentsDir()
}

func newInstallCmd(stdout io.Writer) *cobra.Command {
	var (
		agentsDir  string
		installDir string
		pipenvPath string
	)
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the launchd agent plists (one per frequency)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveAgentsDir(agentsDir)
			if err != nil {
				return err
			}
			if getSafetyOptions(cmd).DryRun {
				for _, f := range schedule.All() {
					fmt.Fprintf(stdout, "would install %s\n", launchd.PlistPath(dir, f))
				}
				return nil
			}
			installed, err := launchd.Install(dir, installDir, pipenvPath)
			if err != nil {
				return err
			}
			for _, p := range installed {
				fmt.Fprintf(stdout, "installed %s\n", p)
			}
			return nil
		},
	}
	agentsDirFlag(cmd, &agentsDir)
	cmd.Flags().StringVar(&installDir, "install-dir",
		envDefault(launch.EnvInstallPath, launch.DefaultInstallPath),
		"Directory the agents run the backup script from")
	cmd.Flags().StringVar(&pipenvPath, "pipenv",
		envDefault(launch.EnvPipenvPath, launch.DefaultPipenvPath),
		"pipenv binary the agents invoke")
	return cmd
}

func newUninstallCmd(stdout io.Writer) *cobra.Command {
	var agentsDir string
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the launchd agent plists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveAgentsDir(agentsDir)
			if err != nil {
				return err
			}
			opts := getSafetyOptions(cmd)
			if opts.DryRun {
				for _, f := range schedule.All() {
					fmt.Fprintf(stdout, "would remove %s\n", launchd.PlistPath(dir, f))
				}
				return nil
			}
			ok, err := safety.Confirm(opts, os.Stdin, cmd.ErrOrStderr(),
				"Remove the notes backup launchd agents?")
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			removed, err := launchd.Uninstall(dir)
			if err != nil {
				return err
			}
			for _, p := range removed {
				fmt.Fprintf(stdout, "removed %s\n", p)
			}
			return nil
		},
	}
	agentsDirFlag(cmd, &agentsDir)
	return cmd
}
