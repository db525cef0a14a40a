package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillhq/quill/internal/appcontext"
	"github.com/quillhq/quill/internal/render"
	"github.com/quillhq/quill/pkg/catalog"
	"github.com/quillhq/quill/pkg/errors"
)

// storeAPI is the slice of the catalog store the menu helpers use.
// *quill.Store satisfies it; tests can substitute a stub.
type storeAPI interface {
	AddArticle(authorName, authorEmail, categoryName, title, content string) (*catalog.Article, error)
	Articles() []catalog.ArticleRecord
	Article(index int) (catalog.ArticleRecord, error)
	Document() *catalog.Document
}

// RunMenu drives the interactive session: a menu loop offering show
// catalog, add article, read article, and exit. Recoverable errors are
// reported once and the loop continues; the loop only ends on exit,
// end of input, or context cancellation.
func RunMenu(cmd *cobra.Command, a appcontext.Interface) error {
	store, err := a.Store()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		if cmd.Context() != nil && cmd.Context().Err() != nil {
			return nil
		}

		fmt.Fprintln(out, "\n=== Quill ===")
		fmt.Fprintln(out, "1. Show catalog")
		fmt.Fprintln(out, "2. Add article")
		fmt.Fprintln(out, "3. Read article")
		fmt.Fprintln(out, "0. Exit")

		choice, err := promptErr(reader, out, "\nChoose an option: ")
		if err != nil {
			// End of input ends the session cleanly.
			return nil
		}

		switch choice {
		case "0":
			return nil
		case "1":
			if err := render.Catalog(out, store.Document(), a.OutputFormat()); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case "2":
			menuAddArticle(reader, out, a, store)
		case "3":
			menuReadArticle(reader, out, store)
		default:
			fmt.Fprintln(out, "Invalid option.")
		}
	}
}

// menuAddArticle prompts for the article fields in order and persists it.
// If input ends before all fields are read the add is aborted with no
// state change. A failed save is reported once; the session continues.
func menuAddArticle(reader *bufio.Reader, out io.Writer, a appcontext.Interface, store storeAPI) {
	var authorName, authorEmail, category, title, content string

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
		line, err := promptErr(reader, out, f.label)
		if err != nil {
			fmt.Fprintln(out, "\nInput ended; article not added.")
			return
		}
		*f.value = line
	}

	article, err := store.AddArticle(authorName, authorEmail, category, title, content)
	if err != nil {
		a.Logger().Error().Err(err).Msg("Failed to save article")
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(out, "\nSaved %q (published %s)\n", article.Title, article.PublishedAt)
}

// menuReadArticle lists articles with 1-based numbers and shows the
// selected one. Non-numeric or out-of-range selections are reported and
// recovered; no state changes.
func menuReadArticle(reader *bufio.Reader, out io.Writer, store storeAPI) {
	articles := store.Articles()
	if len(articles) == 0 {
		fmt.Fprintln(out, "No articles in the catalog.")
		return
	}

	render.ArticleList(out, articles)

	selection, err := promptErr(reader, out, "\nArticle number: ")
	if err != nil {
		return
	}
	number, err := strconv.Atoi(selection)
	if err != nil {
		fmt.Fprintln(out, "Invalid selection.")
		return
	}

	article, err := store.Article(number - 1)
	if err != nil {
		if errors.IsNotFound(err) {
			fmt.Fprintln(out, "Invalid selection.")
			return
		}
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	render.Article(out, article)
}

// promptErr writes the label and reads one trimmed line. It returns the
// read error only when no input was consumed for the line.
func promptErr(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
