package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/quillhq/quill/pkg/catalog"
	"github.com/quillhq/quill/pkg/constants"
	"github.com/quillhq/quill/pkg/errors"
)

// DefaultPath is the catalog file used when no path is configured.
const DefaultPath = constants.DefaultCatalogFile

// File is an Adapter backed by a single pretty-printed JSON file.
type File struct {
	path string
}

// NewFile creates a file adapter for the given path. An empty path falls
// back to DefaultPath.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Load reads and parses the backing file. A missing file yields the
// canonical empty document. Malformed content is a fatal ParseError,
// propagated, not repaired.
func (f *File) Load() (*catalog.Document, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog.EmptyDocument(), nil
		}
		return nil, errors.WrapIO("read", f.path, err)
	}

	doc := catalog.EmptyDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.WrapParse("json", f.path, err)
	}

	// Explicit nulls in the file decode to nil slices; keep the canonical
	// empty-document shape so callers never see nil lists.
	if doc.Authors == nil {
		doc.Authors = []catalog.AuthorRecord{}
	}
	if doc.Categories == nil {
		doc.Categories = []catalog.CategoryRecord{}
	}
	if doc.Articles == nil {
		doc.Articles = []catalog.ArticleRecord{}
	}
	return doc, nil
}

// Save overwrites the backing file with the serialized document,
// creating parent directories as needed.
func (f *File) Save(doc *catalog.Document) error {
	data, err := json.MarshalIndent(doc, "", constants.CatalogIndent)
	if err != nil {
		return errors.WrapParse("json", f.path, err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	if err := os.WriteFile(f.path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", f.path, err)
	}
	return nil
}
