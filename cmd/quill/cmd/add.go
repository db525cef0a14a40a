package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillhq/quill/internal/appcontext"
	"github.com/quillhq/quill/pkg/errors"
)

// NewAddCommand creates the add command with app dependencies.
// Fields not supplied as flags are prompted for interactively, in the
// same order as the menu flow.
func NewAddCommand(a appcontext.Interface) *cobra.Command {
	var (
		authorName  string
		authorEmail string
		category    string
		title       string
		content     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a published article to the catalog",
		Long: `Add creates an article and persists the catalog immediately.

The author and category are resolved by natural key: an existing author
(same email) or category (same name) is reused rather than duplicated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.Store()
			if err != nil {
				return err
			}

			reader := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			// Fields not given as flags are prompted for. If input ends
			// before all fields are read, abort without touching the catalog.
			fields := []struct {
				label string
				value *string
			}{
				{"Author name: ", &authorName},
				{"Author email: ", &authorEmail},
				{"Category name: ", &category},
				{"Article title: ", &title},
				{"Article content: ", &content},
			}
			for _, f := range fields {
				if *f.value != "" {
					continue
				}
				line, err := promptErr(reader, out, f.label)
				if err != nil {
					return errors.NewValidationError("input", nil, "input ended before all article fields were provided")
				}
				*f.value = line
			}

			article, err := store.AddArticle(authorName, authorEmail, category, title, content)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Saved %q by %s (published %s)\n", article.Title, article.Author.Name, article.PublishedAt)
			return nil
		},
	}

	cmd.Flags().StringVar(&authorName, "author", "", "author name")
	cmd.Flags().StringVar(&authorEmail, "email", "", "author email (natural key)")
	cmd.Flags().StringVar(&category, "category", "", "category name (natural key)")
	cmd.Flags().StringVar(&title, "title", "", "article title")
	cmd.Flags().StringVar(&content, "content", "", "article content")

	return cmd
}
