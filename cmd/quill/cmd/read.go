package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quillhq/quill/internal/appcontext"
	"github.com/quillhq/quill/internal/render"
	"github.com/quillhq/quill/pkg/errors"
)

// NewReadCommand creates the read command with app dependencies.
// Articles are numbered starting at 1, matching the interactive listing.
func NewReadCommand(a appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "read [number]",
		Short: "Read one article by its listed number",
		Long: `Read shows a single article. Without an argument it lists all
articles with their numbers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.Store()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			articles := store.Articles()
			if len(args) == 0 {
				if len(articles) == 0 {
					fmt.Fprintln(out, "No articles in the catalog.")
					return nil
				}
				render.ArticleList(out, articles)
				return nil
			}

			number, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("number", args[0], "must be a number")
			}

			// Display numbers are 1-based; the store lookup is 0-based.
			article, err := store.Article(number - 1)
			if err != nil {
				return err
			}

			render.Article(out, article)
			return nil
		},
	}
}
