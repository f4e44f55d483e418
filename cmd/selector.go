package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oov/anm2edit/internal/anm2doc"
	"github.com/oov/anm2edit/internal/anm2project"
)

// NewSelectorCmd groups the selector mutators: add, rm, mv, rename.
func NewSelectorCmd(io anm2project.IO) *cobra.Command {
	parent := &cobra.Command{
		Use:   "selector",
		Short: "Manage selectors",
	}
	parent.AddCommand(newSelectorAddCmd(io))
	parent.AddCommand(newSelectorRmCmd(io))
	parent.AddCommand(newSelectorMvCmd(io))
	parent.AddCommand(newSelectorRenameCmd(io))
	return parent
}

func newSelectorAddCmd(io anm2project.IO) *cobra.Command {
	var name string
	var before uint32

	cmd := &cobra.Command{
		Use:          "add",
		Short:        "Insert a new selector",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			id, err := doc.SelectorInsert(anm2doc.ID(before), name)
			if err != nil {
				return fmt.Errorf("inserting selector: %w", err)
			}
			if err := saveTarget(cmd, io, doc, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", id)
			return nil
		},
	}
	addFileFlags(cmd)
	cmd.Flags().StringVar(&name, "name", "", "selector name (empty gets a localized placeholder)")
	cmd.Flags().Uint32Var(&before, "before", 0, "insert before this selector's id (0 appends at the end)")
	return cmd
}

func newSelectorRmCmd(io anm2project.IO) *cobra.Command {
	var id uint32

	cmd := &cobra.Command{
		Use:          "rm",
		Short:        "Remove a selector and everything it contains",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			if err := doc.SelectorRemove(anm2doc.ID(id)); err != nil {
				return fmt.Errorf("removing selector %d: %w", id, err)
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&id, "id", 0, "selector id to remove (required)")
	return cmd
}

func newSelectorMvCmd(io anm2project.IO) *cobra.Command {
	var id, before uint32

	cmd := &cobra.Command{
		Use:          "mv",
		Short:        "Reposition a selector",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			if err := doc.SelectorMove(anm2doc.ID(id), anm2doc.ID(before)); err != nil {
				return fmt.Errorf("moving selector %d: %w", id, err)
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&id, "id", 0, "selector id to move (required)")
	cmd.Flags().Uint32Var(&before, "before", 0, "move before this selector's id (0 appends at the end)")
	return cmd
}

func newSelectorRenameCmd(io anm2project.IO) *cobra.Command {
	var id uint32
	var name string

	cmd := &cobra.Command{
		Use:          "rename",
		Short:        "Rename a selector",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			if err := doc.SelectorSetName(anm2doc.ID(id), name); err != nil {
				return fmt.Errorf("renaming selector %d: %w", id, err)
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&id, "id", 0, "selector id to rename (required)")
	cmd.Flags().StringVar(&name, "name", "", "new name")
	return cmd
}
