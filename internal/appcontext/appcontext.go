// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type, allowing mock implementations in tests.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/quillhq/quill"
)

// Interface defines the application context that commands need.
// The App struct from cmd/quill/app implements this interface.
type Interface interface {
	// Store returns the catalog store, creating it lazily on first use.
	Store() (*quill.Store, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// CatalogPath returns the configured catalog file path.
	CatalogPath() string

	// Version returns the application version string.
	Version() string
}
