package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oov/anm2edit/internal/anm2project"
)

// NewUndoCmd creates the undo subcommand. Undo/redo history is process-local
// engine state, never persisted to disk, so across separate anm2ctl
// invocations --file always loads with an empty history and this reports
// nothing to undo.
func NewUndoCmd(io anm2project.IO) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "undo",
		Short:        "Undo the last mutation (no-op across separate anm2ctl invocations)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			undone, err := doc.Undo()
			if err != nil {
				return fmt.Errorf("undo: %w", err)
			}
			if !undone {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to undo")
				return nil
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	return cmd
}

// NewRedoCmd creates the redo subcommand. See NewUndoCmd's note: undo/redo
// history is process-local and not persisted, so this is a no-op across
// separate anm2ctl invocations.
func NewRedoCmd(io anm2project.IO) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "redo",
		Short:        "Redo the last undone mutation (no-op across separate anm2ctl invocations)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			redone, err := doc.Redo()
			if err != nil {
				return fmt.Errorf("redo: %w", err)
			}
			if !redone {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to redo")
				return nil
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	return cmd
}
