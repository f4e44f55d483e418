package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oov/anm2edit/internal/anm2doc"
	"github.com/oov/anm2edit/internal/anm2project"
)

// NewDoctorCmd creates the read-only doctor subcommand: load the file and
// report checksum verification plus a handful of structural diagnostics.
// Never mutates.
func NewDoctorCmd(io anm2project.IO) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:          "doctor",
		Short:        "Audit a document for tampering and structural issues",
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

			out := cmd.OutOrStdout()
			if doc.VerifyChecksum() {
				fmt.Fprintln(out, "checksum: ok")
			} else {
				fmt.Fprintln(out, "checksum: mismatch (file was hand-edited since last save)")
			}

			diags := diagnoseDocument(doc)
			for _, d := range diags {
				fmt.Fprintln(out, d)
			}
			if len(diags) > 0 {
				return fmt.Errorf("document has %d structural issue(s)", len(diags))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "path to the .anm2 document (required)")
	return cmd
}

// diagnoseDocument reports fields that are present but empty in a way the
// mutator API never produces on its own (an empty selector name, an
// animation item with no script name). Decode already replaces an empty
// group name with the localized placeholder and rejects an animation item
// without a script, so a document loaded from a file passes both checks.
// An empty param key or value is a valid, round-trippable state (spec
// §3.1/§3.3) and is not flagged.
func diagnoseDocument(doc *anm2doc.Document) []string {
	var diags []string
	for i := 0; i < doc.SelectorCount(); i++ {
		sel, ok := doc.Selector(doc.SelectorIDAt(i))
		if !ok {
			continue
		}
		if sel.Name == "" {
			diags = append(diags, fmt.Sprintf("selector %d: empty name", sel.ID))
		}
		for _, it := range sel.Items {
			if it.Kind == anm2doc.ItemAnimation && it.ScriptName == "" {
				diags = append(diags, fmt.Sprintf("item %d: animation item with no script name", it.ID))
			}
		}
	}
	return diags
}
