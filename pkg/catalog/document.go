// Package catalog defines the quill entity model - authors, categories,
// and articles - and the normalized document that persists them.
//
// Entities are identified by natural keys: an author by email, a category
// by name. Articles reference both by key rather than by nested objects,
// so the persisted document stays relational in shape. The document is
// read and written wholesale; article records are append-only.
package catalog

import (
	"github.com/goccy/go-yaml"

	"github.com/quillhq/quill/pkg/errors"
)

// AuthorRecord is the persisted form of an Author.
type AuthorRecord struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// CategoryRecord is the persisted form of a Category.
type CategoryRecord struct {
	Name string `json:"name" yaml:"name"`
}

// ArticleRecord is the persisted form of an Article. Author and Category
// are foreign keys: the author's email and the category's name.
type ArticleRecord struct {
	Title       string    `json:"title" yaml:"title"`
	Content     string    `json:"content" yaml:"content"`
	Author      string    `json:"author" yaml:"author"`
	Category    string    `json:"category" yaml:"category"`
	PublishedAt Timestamp `json:"published_at" yaml:"published_at"`
}

// Document is the full persisted catalog state: three ordered record
// lists, read and written as one unit.
type Document struct {
	Authors    []AuthorRecord   `json:"authors" yaml:"authors"`
	Categories []CategoryRecord `json:"categories" yaml:"categories"`
	Articles   []ArticleRecord  `json:"articles" yaml:"articles"`
}

// EmptyDocument returns the canonical fresh catalog. The slices are empty
// but non-nil so the document serializes as [] rather than null.
func EmptyDocument() *Document {
	return &Document{
		Authors:    []AuthorRecord{},
		Categories: []CategoryRecord{},
		Articles:   []ArticleRecord{},
	}
}

// HasAuthor reports whether an author record with the given email exists.
func (d *Document) HasAuthor(email string) bool {
	for _, a := range d.Authors {
		if a.Email == email {
			return true
		}
	}
	return false
}

// HasCategory reports whether a category record with the given name exists.
func (d *Document) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Index materializes entity indexes from the document's author and
// category records, preserving the uniqueness invariant: one Author per
// email, one Category per name.
func (d *Document) Index() (*Authors, *Categories) {
	authors := NewAuthors(WithAuthorsCapacity(len(d.Authors)))
	for _, record := range d.Authors {
		authors.Add(NewAuthor(record.Name, record.Email))
	}

	categories := NewCategories(WithCategoriesCapacity(len(d.Categories)))
	for _, record := range d.Categories {
		categories.Add(NewCategory(record.Name))
	}

	return authors, categories
}

// FormatYAML renders the document as YAML. Used by the CLI's yaml output
// format; the persisted file itself is always JSON.
func (d *Document) FormatYAML() (string, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return "", errors.WrapParse("yaml", "", err)
	}
	return string(data), nil
}
