// Package storage persists the catalog document as a flat file. The
// backing file is read and written wholesale: one load at startup, one
// full overwrite after every successful mutation.
package storage

import "github.com/quillhq/quill/pkg/catalog"

// Adapter is the narrow persistence contract the catalog store calls
// through. Load returns the canonical empty document when the backing
// location does not exist; a fresh catalog is a valid starting state,
// not an error.
type Adapter interface {
	Load() (*catalog.Document, error)
	Save(*catalog.Document) error
}
