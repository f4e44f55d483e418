// Package cmd implements the anm2ctl CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oov/anm2edit/internal/anm2project"
)

// NewRootCmd creates the root anm2ctl command with all subcommands
// registered, using the OS filesystem for every command's I/O.
func NewRootCmd() *cobra.Command {
	return newRootCmdWithIO(anm2project.NewFileIO())
}

func newRootCmdWithIO(io anm2project.IO) *cobra.Command {
	root := &cobra.Command{
		Use:           "anm2ctl",
		Short:         "anm2ctl - command-line editor for PSDToolKit layer selector scripts",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewInitCmd(io))
	root.AddCommand(NewSelectorCmd(io))
	root.AddCommand(NewItemCmd(io))
	root.AddCommand(NewParamCmd(io))
	root.AddCommand(NewUndoCmd(io))
	root.AddCommand(NewRedoCmd(io))
	root.AddCommand(NewDumpCmd(io))
	root.AddCommand(NewDoctorCmd(io))
	return root
}

func rootRunE(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
