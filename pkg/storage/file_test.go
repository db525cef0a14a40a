package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/catalog"
	"github.com/quillhq/quill/pkg/errors"
	"github.com/quillhq/quill/pkg/storage"
)

func testDocument(t *testing.T) *catalog.Document {
	t.Helper()
	published, err := catalog.ParseTimestamp("2024-03-15 09:30:45")
	require.NoError(t, err)

	return &catalog.Document{
		Authors:    []catalog.AuthorRecord{{Name: "Ana", Email: "ana@x.com"}},
		Categories: []catalog.CategoryRecord{{Name: "Tech"}},
		Articles: []catalog.ArticleRecord{
			{Title: "Hello", Content: "World", Author: "ana@x.com", Category: "Tech", PublishedAt: published},
		},
	}
}

func TestFileLoadMissingFileIsFreshCatalog(t *testing.T) {
	file := storage.NewFile(filepath.Join(t.TempDir(), "catalog.json"))

	doc, err := file.Load()
	require.NoError(t, err)

	assert.Empty(t, doc.Authors)
	assert.Empty(t, doc.Categories)
	assert.Empty(t, doc.Articles)
	require.NotNil(t, doc.Authors)
	require.NotNil(t, doc.Categories)
	require.NotNil(t, doc.Articles)
}

func TestFileSaveLoadRoundTrip(t *testing.T) {
	file := storage.NewFile(filepath.Join(t.TempDir(), "catalog.json"))
	original := testDocument(t)

	require.NoError(t, file.Save(original))

	loaded, err := file.Load()
	require.NoError(t, err)

	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFileSaveOverwrites(t *testing.T) {
	file := storage.NewFile(filepath.Join(t.TempDir(), "catalog.json"))

	require.NoError(t, file.Save(testDocument(t)))
	require.NoError(t, file.Save(catalog.EmptyDocument()))

	loaded, err := file.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Articles)
}

func TestFileSavePrettyPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	file := storage.NewFile(path)

	require.NoError(t, file.Save(testDocument(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n    \"authors\""), "expected indented output, got:\n%s", data)
}

func TestFileSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "catalog.json")
	file := storage.NewFile(path)

	require.NoError(t, file.Save(catalog.EmptyDocument()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileLoadMalformedIsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	file := storage.NewFile(path)
	_, err := file.Load()

	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestFileLoadNormalizesNullLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"authors":null,"categories":null,"articles":null}`), 0o644))

	doc, err := storage.NewFile(path).Load()
	require.NoError(t, err)

	require.NotNil(t, doc.Authors)
	require.NotNil(t, doc.Categories)
	require.NotNil(t, doc.Articles)
}

func TestNewFileDefaultPath(t *testing.T) {
	assert.Equal(t, storage.DefaultPath, storage.NewFile("").Path())
}
