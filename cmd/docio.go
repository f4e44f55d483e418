package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oov/anm2edit/internal/anm2doc"
	"github.com/oov/anm2edit/internal/anm2project"
)

// addFileFlags registers the --file/--new flags every mutating subcommand
// shares: which document to operate on, and whether to start from a fresh
// in-memory document instead of loading one.
func addFileFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "path to the .anm2 document (required)")
	cmd.Flags().Bool("new", false, "start from a new empty document instead of loading --file")
}

// loadTarget resolves the --file/--new flags into a Document plus the path
// it should be saved back to.
func loadTarget(cmd *cobra.Command, io anm2project.IO) (*anm2doc.Document, string, error) {
	path, _ := cmd.Flags().GetString("file")
	isNew, _ := cmd.Flags().GetBool("new")
	if path == "" {
		return nil, "", fmt.Errorf("--file is required")
	}
	if isNew {
		return anm2doc.New(), path, nil
	}
	doc, err := anm2project.Load(cmd.Context(), io, path)
	if err != nil {
		return nil, "", fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, path, nil
}

// saveTarget re-saves doc to path after a single mutator has been applied.
func saveTarget(cmd *cobra.Command, io anm2project.IO, doc *anm2doc.Document, path string) error {
	if err := anm2project.Save(cmd.Context(), io, doc, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

