package cli

import (
	"github.com/spf13/cobra"

	"notesbackup/src/launchd"
)

func newLoadCmd() *cobra.Command {
	var agentsDir string
	cmd := &cobra.Command{
		Use:   "load",
		Short: "launchctl load the installed agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveAgentsDir(agentsDir)
			if err != nil {
				return err
			}
			return launchd.Load(cmd.Context(), dir)
		},
	}
	agentsDirFlag(cmd, &agentsDir)
	return cmd
}

func newUnloadCmd() *cobra.Command {
	var agentsDir string
	cmd := &cobra.Command{
		Use:   "unload",
		Short: "launchctl unload the installed agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveAgentsDir(agentsDir)
			if err != nil {
				return err
			}
			return launchd.Unload(cmd.Context(), dir)
		},
	}
	agentsDirFlag(cmd, &agentsDir)
	return cmd
}
