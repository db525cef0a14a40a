// Package cmd implements the quill subcommands. Each command is built
// with an appcontext.Interface so tests can inject a mock application.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quillhq/quill/internal/appcontext"
	"github.com/quillhq/quill/internal/render"
)

// NewShowCommand creates the show command with app dependencies.
func NewShowCommand(a appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the whole catalog",
		Long: `Show renders the full catalog: authors, categories, and articles.

Use --format json or --format yaml for machine-readable output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.Store()
			if err != nil {
				return err
			}
			return render.Catalog(cmd.OutOrStdout(), store.Document(), a.OutputFormat())
		},
	}
}
