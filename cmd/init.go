package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oov/anm2edit/internal/anm2doc"
	"github.com/oov/anm2edit/internal/anm2project"
)

// NewInitCmd creates the init subcommand: write a new, empty document to a
// path, refusing to clobber an existing file unless --force is given.
func NewInitCmd(io anm2project.IO) *cobra.Command {
	var psd, label string
	var force bool

	cmd := &cobra.Command{
		Use:          "init FILE",
		Short:        "Create a new empty anm2 document",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if !force {
				if _, err := io.ReadFile(path); err == nil {
					return fmt.Errorf("%s already exists; use --force to overwrite", path)
				}
			}

			cfg, err := anm2project.LoadConfig(io, filepath.Dir(path))
			if err != nil {
				return fmt.Errorf("loading project config: %w", err)
			}

			doc := anm2doc.New()
			doc.Localizer = anm2project.NewLocalizer(cfg.Locale)
			if cfg.ExclusiveSupportDefault != nil {
				if err := doc.SetExclusiveSupportDefault(*cfg.ExclusiveSupportDefault); err != nil {
					return fmt.Errorf("applying exclusive_support_default from project config: %w", err)
				}
			}

			if psd == "" {
				psd = cfg.PSDSearchRoot
			}
			if psd != "" {
				if err := doc.SetPSDPath(psd); err != nil {
					return fmt.Errorf("setting psd path: %w", err)
				}
			}
			if label != "" {
				if err := doc.SetLabel(label); err != nil {
					return fmt.Errorf("setting label: %w", err)
				}
			}

			if err := saveTarget(cmd, io, doc, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&psd, "psd", "", "path to the source PSD file")
	cmd.Flags().StringVar(&label, "label", "", "document label")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
