// Package render formats catalog data for terminal output. It supports a
// human-readable table view plus json and yaml for scripting.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/quillhq/quill/pkg/catalog"
	"github.com/quillhq/quill/pkg/constants"
	"github.com/quillhq/quill/pkg/errors"
)

// titleCaser title-cases section headings in the table view.
var titleCaser = cases.Title(language.English)

// Catalog renders the whole document in the given format.
func Catalog(w io.Writer, doc *catalog.Document, format string) error {
	switch strings.ToLower(format) {
	case "", "table":
		catalogTable(w, doc)
		return nil
	case "json":
		return JSON(w, doc)
	case "yaml":
		out, err := doc.FormatYAML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err
	default:
		return errors.NewValidationError("format", format, "must be table, json, or yaml")
	}
}

// catalogTable writes the human-readable catalog overview.
func catalogTable(w io.Writer, doc *catalog.Document) {
	heading(w, "catalog")

	section(w, "authors")
	if len(doc.Authors) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, a := range doc.Authors {
		fmt.Fprintf(w, "  - %s (%s)\n", a.Name, a.Email)
	}

	section(w, "categories")
	if len(doc.Categories) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, c := range doc.Categories {
		fmt.Fprintf(w, "  - %s\n", c.Name)
	}

	section(w, "articles")
	if len(doc.Articles) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, a := range doc.Articles {
		fmt.Fprintf(w, "  - %q by %s in %s (%s)\n", a.Title, a.Author, a.Category, a.PublishedAt)
	}
}

// ArticleList writes articles with 1-based display indices, the way the
// interactive read menu presents them.
func ArticleList(w io.Writer, articles []catalog.ArticleRecord) {
	for i, a := range articles {
		fmt.Fprintf(w, "%d. %s (by %s)\n", i+1, a.Title, a.Author)
	}
}

// Article writes the detail view of a single article record.
func Article(w io.Writer, a catalog.ArticleRecord) {
	heading(w, "article")
	fmt.Fprintf(w, "Title:     %s\n", a.Title)
	fmt.Fprintf(w, "Author:    %s\n", a.Author)
	fmt.Fprintf(w, "Category:  %s\n", a.Category)
	fmt.Fprintf(w, "Published: %s\n", a.PublishedAt)
	fmt.Fprintf(w, "\n%s\n", a.Content)
}

// JSON writes v pretty-printed.
func JSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", constants.CatalogIndent)
	if err != nil {
		return errors.WrapParse("json", "", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// heading writes a title-cased top-level heading.
func heading(w io.Writer, name string) {
	fmt.Fprintf(w, "=== %s ===\n", titleCaser.String(name))
}

// section writes a title-cased section label.
func section(w io.Writer, name string) {
	fmt.Fprintf(w, "\n%s:\n", titleCaser.String(name))
}
