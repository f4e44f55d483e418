package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oov/anm2edit/internal/anm2codec"
	"github.com/oov/anm2edit/internal/anm2project"
)

// NewDumpCmd creates the read-only dump subcommand: print the document's
// §6.1 JSON schema. Never mutates, never saves.
func NewDumpCmd(io anm2project.IO) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:          "dump",
		Short:        "Print the document as JSON",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("--file is required")
			}
			doc, err := anm2project.Load(cmd.Context(), io, path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			out, err := anm2codec.Dump(doc)
			if err != nil {
				return fmt.Errorf("dumping %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "path to the .anm2 document (required)")
	return cmd
}
