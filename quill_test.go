package quill_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill"
	"github.com/quillhq/quill/pkg/catalog"
	"github.com/quillhq/quill/pkg/errors"
	"github.com/quillhq/quill/pkg/storage"
)

// failingAdapter loads an empty document but refuses every save.
type failingAdapter struct {
	saves int
}

func (f *failingAdapter) Load() (*catalog.Document, error) {
	return catalog.EmptyDocument(), nil
}

func (f *failingAdapter) Save(*catalog.Document) error {
	f.saves++
	return errors.NewIOError("write", "catalog.json", errors.New("disk full"))
}

func newTestStore(t *testing.T, opts ...quill.Option) *quill.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	store, err := quill.New(append([]quill.Option{quill.WithPath(path)}, opts...)...)
	require.NoError(t, err)
	return store
}

func TestNewFreshCatalog(t *testing.T) {
	store := newTestStore(t)

	assert.Empty(t, store.Authors())
	assert.Empty(t, store.Categories())
	assert.Empty(t, store.Articles())
}

func TestNewMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, storage.NewFile(path).Save(catalog.EmptyDocument()))

	// Corrupt the file, then construction must fail with a ParseError.
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := quill.New(quill.WithPath(path))
	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestAddArticleScenario(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 45, 0, time.Local)
	store := newTestStore(t, quill.WithClock(func() time.Time { return at }))

	article, err := store.AddArticle("Ana", "ana@x.com", "Tech", "Hello", "World")
	require.NoError(t, err)
	assert.True(t, article.Published())

	articles := store.Articles()
	require.Len(t, articles, 1)
	assert.Equal(t, catalog.ArticleRecord{
		Title:       "Hello",
		Content:     "World",
		Author:      "ana@x.com",
		Category:    "Tech",
		PublishedAt: catalog.At(at),
	}, articles[0])

	// A second article by the same author in the same category reuses
	// both records.
	_, err = store.AddArticle("Ana", "ana@x.com", "Tech", "Second", "Post")
	require.NoError(t, err)

	assert.Len(t, store.Authors(), 1)
	assert.Len(t, store.Categories(), 1)
	assert.Len(t, store.Articles(), 2)
}

func TestAddArticleReferentialIntegrity(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddArticle("Ana", "ana@x.com", "Tech", "Hello", "World")
	require.NoError(t, err)
	_, err = store.AddArticle("Bob", "bob@x.com", "Art", "Color", "Theory")
	require.NoError(t, err)

	doc := store.Document()
	for _, article := range doc.Articles {
		assert.True(t, doc.HasAuthor(article.Author), "article %q references unknown author %q", article.Title, article.Author)
		assert.True(t, doc.HasCategory(article.Category), "article %q references unknown category %q", article.Title, article.Category)
	}
}

func TestAddArticleAppendOnly(t *testing.T) {
	store := newTestStore(t)

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		_, err := store.AddArticle("Ana", "ana@x.com", "Tech", title, "body")
		require.NoError(t, err)
	}

	articles := store.Articles()
	require.Len(t, articles, len(titles))
	for i, title := range titles {
		assert.Equal(t, title, articles[i].Title)
	}
}

func TestAddArticlePersistsImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	store, err := quill.New(quill.WithPath(path))
	require.NoError(t, err)

	_, err = store.AddArticle("Ana", "ana@x.com", "Tech", "Hello", "World")
	require.NoError(t, err)

	// A second store constructed from the same file sees the article.
	reloaded, err := quill.New(quill.WithPath(path))
	require.NoError(t, err)
	require.Len(t, reloaded.Articles(), 1)
	assert.Equal(t, "Hello", reloaded.Articles()[0].Title)
}

func TestAddArticleFirstNameWins(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddArticle("Ana", "ana@x.com", "Tech", "Hello", "World")
	require.NoError(t, err)
	_, err = store.AddArticle("Ana Maria", "ana@x.com", "Tech", "Second", "Post")
	require.NoError(t, err)

	authors := store.Authors()
	require.Len(t, authors, 1)
	assert.Equal(t, "Ana", authors[0].Name)
}

func TestAddArticleSaveFailure(t *testing.T) {
	adapter := &failingAdapter{}
	store, err := quill.New(quill.WithAdapter(adapter))
	require.NoError(t, err)

	_, err = store.AddArticle("Ana", "ana@x.com", "Tech", "Hello", "World")
	require.Error(t, err)
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
	assert.Equal(t, 1, adapter.saves)

	// The operation failed after the in-memory append: memory is ahead
	// of disk, a documented limitation.
	assert.Len(t, store.Articles(), 1)
}

func TestArticleLookup(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddArticle("Ana", "ana@x.com", "Tech", "Hello", "World")
	require.NoError(t, err)
	_, err = store.AddArticle("Ana", "ana@x.com", "Tech", "Second", "Post")
	require.NoError(t, err)

	article, err := store.Article(0)
	require.NoError(t, err)
	assert.Equal(t, "Hello", article.Title)

	article, err = store.Article(1)
	require.NoError(t, err)
	assert.Equal(t, "Second", article.Title)
}

func TestArticleLookupOutOfRange(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddArticle("Ana", "ana@x.com", "Tech", "Hello", "World")
	require.NoError(t, err)
	_, err = store.AddArticle("Ana", "ana@x.com", "Tech", "Second", "Post")
	require.NoError(t, err)

	tests := []struct {
		name  string
		index int
	}{
		{name: "negative", index: -1},
		{name: "just past the end", index: 2},
		{name: "far past the end", index: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Article(tt.index)
			require.Error(t, err)
			assert.True(t, errors.IsNotFound(err))
		})
	}
}
