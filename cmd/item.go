package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oov/anm2edit/internal/anm2doc"
	"github.com/oov/anm2edit/internal/anm2project"
)

// NewItemCmd groups the item mutators: add-value, add-animation, rm, mv,
// rename, set-value, set-script.
func NewItemCmd(io anm2project.IO) *cobra.Command {
	parent := &cobra.Command{
		Use:   "item",
		Short: "Manage items within a selector",
	}
	parent.AddCommand(newItemAddValueCmd(io))
	parent.AddCommand(newItemAddAnimationCmd(io))
	parent.AddCommand(newItemRmCmd(io))
	parent.AddCommand(newItemMvCmd(io))
	parent.AddCommand(newItemRenameCmd(io))
	parent.AddCommand(newItemSetValueCmd(io))
	parent.AddCommand(newItemSetScriptCmd(io))
	return parent
}

func newItemAddValueCmd(io anm2project.IO) *cobra.Command {
	var before uint32
	var name, value string

	cmd := &cobra.Command{
		Use:          "add-value",
		Short:        "Insert a layer-path value item",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			id, err := doc.ItemInsertValue(anm2doc.ID(before), name, value)
			if err != nil {
				return fmt.Errorf("inserting item: %w", err)
			}
			if err := saveTarget(cmd, io, doc, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", id)
			return nil
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&before, "before", 0, "containing selector id (append), or sibling item id to insert before")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&value, "value", "", "layer path value")
	return cmd
}

func newItemAddAnimationCmd(io anm2project.IO) *cobra.Command {
	var before uint32
	var script, name string

	cmd := &cobra.Command{
		Use:          "add-animation",
		Short:        "Insert a parameterised animation item",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			id, err := doc.ItemInsertAnimation(anm2doc.ID(before), script, name)
			if err != nil {
				return fmt.Errorf("inserting item: %w", err)
			}
			if err := saveTarget(cmd, io, doc, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", id)
			return nil
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&before, "before", 0, "containing selector id (append), or sibling item id to insert before")
	cmd.Flags().StringVar(&script, "script", "", "Lua constructor name (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	return cmd
}

func newItemRmCmd(io anm2project.IO) *cobra.Command {
	var id uint32

	cmd := &cobra.Command{
		Use:          "rm",
		Short:        "Remove an item and its params",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			if err := doc.ItemRemove(anm2doc.ID(id)); err != nil {
				return fmt.Errorf("removing item %d: %w", id, err)
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&id, "id", 0, "item id to remove (required)")
	return cmd
}

func newItemMvCmd(io anm2project.IO) *cobra.Command {
	var id, before uint32

	cmd := &cobra.Command{
		Use:          "mv",
		Short:        "Reposition an item, possibly into a different selector",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			if err := doc.ItemMove(anm2doc.ID(id), anm2doc.ID(before)); err != nil {
				return fmt.Errorf("moving item %d: %w", id, err)
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&id, "id", 0, "item id to move (required)")
	cmd.Flags().Uint32Var(&before, "before", 0, "destination selector id (append), or sibling item id to insert before")
	return cmd
}

func newItemRenameCmd(io anm2project.IO) *cobra.Command {
	var id uint32
	var name string

	cmd := &cobra.Command{
		Use:          "rename",
		Short:        "Rename an item",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			if err := doc.ItemSetName(anm2doc.ID(id), name); err != nil {
				return fmt.Errorf("renaming item %d: %w", id, err)
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&id, "id", 0, "item id to rename (required)")
	cmd.Flags().StringVar(&name, "name", "", "new name")
	return cmd
}

func newItemSetValueCmd(io anm2project.IO) *cobra.Command {
	var id uint32
	var value string

	cmd := &cobra.Command{
		Use:          "set-value",
		Short:        "Set a value item's layer path",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			if err := doc.ItemSetValue(anm2doc.ID(id), value); err != nil {
				return fmt.Errorf("setting value of item %d: %w", id, err)
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&id, "id", 0, "item id (required)")
	cmd.Flags().StringVar(&value, "value", "", "new layer path")
	return cmd
}

func newItemSetScriptCmd(io anm2project.IO) *cobra.Command {
	var id uint32
	var script string

	cmd := &cobra.Command{
		Use:          "set-script",
		Short:        "Rebind an animation item's Lua constructor",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			if err := doc.ItemSetScriptName(anm2doc.ID(id), script); err != nil {
				return fmt.Errorf("setting script name of item %d: %w", id, err)
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&id, "id", 0, "item id (required)")
	cmd.Flags().StringVar(&script, "script", "", "new Lua constructor name")
	return cmd
}
