// Package quill is a single-user article catalog manager. A Store owns
// the canonical catalog document for a session: it loads the document
// from a storage adapter at construction, reconciles authors and
// categories by natural key as articles are added, and flushes the full
// document back to storage after every successful mutation.
//
// Example usage:
//
//	store, err := quill.New(quill.WithPath("catalog.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	article, err := store.AddArticle("Ana", "ana@x.com", "Tech", "Hello", "World")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(article.PublishedAt)
package quill

import (
	"strconv"

	"github.com/quillhq/quill/pkg/catalog"
	"github.com/quillhq/quill/pkg/errors"
	"github.com/quillhq/quill/pkg/logging"
	"github.com/quillhq/quill/pkg/reconcile"
	"github.com/quillhq/quill/pkg/storage"
)

// Store owns the catalog document and its live entity indexes for one
// interactive session. One operation is in flight at any instant; the
// store is not safe for concurrent use.
type Store struct {
	config     *config
	adapter    storage.Adapter
	document   *catalog.Document
	authors    *catalog.Authors
	categories *catalog.Categories
}

// New creates a Store and loads the catalog document through the storage
// adapter. A missing backing file yields an empty catalog; malformed
// content fails construction with a ParseError.
func New(opts ...Option) (*Store, error) {
	cfg := defaults()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	adapter := cfg.adapter
	if adapter == nil {
		adapter = storage.NewFile(cfg.path)
	}

	document, err := adapter.Load()
	if err != nil {
		return nil, err
	}

	authors, categories := document.Index()

	logging.Debug().
		Int("authors", len(document.Authors)).
		Int("categories", len(document.Categories)).
		Int("articles", len(document.Articles)).
		Msg("Catalog loaded")

	return &Store{
		config:     cfg,
		adapter:    adapter,
		document:   document,
		authors:    authors,
		categories: categories,
	}, nil
}

// AddArticle resolves the author and category by natural key (creating
// them on first use), constructs and publishes the article, appends the
// normalized records to the document, and persists the whole document.
//
// If the save fails the operation reports the error, but the in-memory
// indexes and document have already advanced; memory may be ahead of
// disk for the rest of the session.
func (s *Store) AddArticle(authorName, authorEmail, categoryName, title, content string) (*catalog.Article, error) {
	author := reconcile.Author(authorName, authorEmail, s.authors)
	category := reconcile.Category(categoryName, s.categories)

	article := catalog.NewArticle(title, content, author, category)
	article.Register()
	article.PublishAt(s.config.clock())

	if !s.document.HasAuthor(author.Email) {
		s.document.Authors = append(s.document.Authors, catalog.AuthorRecord{
			Name:  author.Name,
			Email: author.Email,
		})
	}
	if !s.document.HasCategory(category.Name) {
		s.document.Categories = append(s.document.Categories, catalog.CategoryRecord{
			Name: category.Name,
		})
	}
	s.document.Articles = append(s.document.Articles, article.Record())

	if err := s.adapter.Save(s.document); err != nil {
		return nil, err
	}

	logging.Debug().
		Str("title", article.Title).
		Str("author", author.Email).
		Str("category", category.Name).
		Msg("Article added")

	return article, nil
}

// Articles returns the document's article list in insertion order. The
// returned slice is a view of live state, not a copy; callers that need
// a stable snapshot across mutations should copy it.
func (s *Store) Articles() []catalog.ArticleRecord {
	return s.document.Articles
}

// Article returns the article record at the given 0-based position.
func (s *Store) Article(index int) (catalog.ArticleRecord, error) {
	if index < 0 || index >= len(s.document.Articles) {
		return catalog.ArticleRecord{}, errors.NewNotFoundError("article", strconv.Itoa(index))
	}
	return s.document.Articles[index], nil
}

// Authors returns the document's author records in insertion order.
func (s *Store) Authors() []catalog.AuthorRecord {
	return s.document.Authors
}

// Categories returns the document's category records in insertion order.
func (s *Store) Categories() []catalog.CategoryRecord {
	return s.document.Categories
}

// Document returns the canonical document for read-only rendering.
func (s *Store) Document() *catalog.Document {
	return s.document
}
