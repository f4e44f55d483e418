package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oov/anm2edit/internal/anm2doc"
	"github.com/oov/anm2edit/internal/anm2project"
)

// NewParamCmd groups the param mutators: add, rm, set-key, set-value.
func NewParamCmd(io anm2project.IO) *cobra.Command {
	parent := &cobra.Command{
		Use:   "param",
		Short: "Manage key/value params on an animation item",
	}
	parent.AddCommand(newParamAddCmd(io))
	parent.AddCommand(newParamRmCmd(io))
	parent.AddCommand(newParamSetKeyCmd(io))
	parent.AddCommand(newParamSetValueCmd(io))
	return parent
}

func newParamAddCmd(io anm2project.IO) *cobra.Command {
	var item, before uint32
	var key, value string

	cmd := &cobra.Command{
		Use:          "add",
		Short:        "Append a key/value param to an animation item",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			id, err := doc.ParamInsert(anm2doc.ID(item), anm2doc.ID(before), key, value)
			if err != nil {
				return fmt.Errorf("inserting param on item %d: %w", item, err)
			}
			if err := saveTarget(cmd, io, doc, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", id)
			return nil
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&item, "item", 0, "owning animation item id (required)")
	cmd.Flags().Uint32Var(&before, "before", 0, "sibling param id to insert before (0 appends at the end)")
	cmd.Flags().StringVar(&key, "key", "", "param key")
	cmd.Flags().StringVar(&value, "value", "", "param value")
	return cmd
}

func newParamRmCmd(io anm2project.IO) *cobra.Command {
	var id uint32

	cmd := &cobra.Command{
		Use:          "rm",
		Short:        "Remove a param",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			if err := doc.ParamRemove(anm2doc.ID(id)); err != nil {
				return fmt.Errorf("removing param %d: %w", id, err)
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&id, "id", 0, "param id to remove (required)")
	return cmd
}

func newParamSetKeyCmd(io anm2project.IO) *cobra.Command {
	var id uint32
	var key string

	cmd := &cobra.Command{
		Use:          "set-key",
		Short:        "Rename a param's key",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			if err := doc.ParamSetKey(anm2doc.ID(id), key); err != nil {
				return fmt.Errorf("setting key of param %d: %w", id, err)
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&id, "id", 0, "param id (required)")
	cmd.Flags().StringVar(&key, "key", "", "new key")
	return cmd
}

func newParamSetValueCmd(io anm2project.IO) *cobra.Command {
	var id uint32
	var value string

	cmd := &cobra.Command{
		Use:          "set-value",
		Short:        "Set a param's value",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadTarget(cmd, io)
			if err != nil {
				return err
			}
			if err := doc.ParamSetValue(anm2doc.ID(id), value); err != nil {
				return fmt.Errorf("setting value of param %d: %w", id, err)
			}
			return saveTarget(cmd, io, doc, path)
		},
	}
	addFileFlags(cmd)
	cmd.Flags().Uint32Var(&id, "id", 0, "param id (required)")
	cmd.Flags().StringVar(&value, "value", "", "new value")
	return cmd
}
