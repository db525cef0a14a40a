// Package constants provides shared constants used throughout the quill
// codebase, such as file permissions and default paths, so they stay
// consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0o755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0o644
)

// Catalog file constants
const (
	// DefaultCatalogFile is the catalog file used when no path is configured
	DefaultCatalogFile = "catalog.json"

	// CatalogIndent is the indentation for the pretty-printed catalog file,
	// matching the original file layout
	CatalogIndent = "    "
)
