// Package app provides the application context and dependency management
// for the quill CLI. It centralizes configuration, logging, and the
// catalog store behind a single App type that commands receive by
// interface.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/quillhq/quill"
	"github.com/quillhq/quill/internal/appcontext"
	"github.com/quillhq/quill/pkg/errors"
)

// App represents the quill application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Catalog store (lazy-initialized, singleton)
	mu    sync.Mutex
	store *quill.Store
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Option configures an App instance.
type Option func(*App) error

// WithStore injects a pre-built catalog store, bypassing lazy
// construction. Intended for tests.
func WithStore(store *quill.Store) Option {
	return func(a *App) error {
		a.store = store
		return nil
	}
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// CatalogPath returns the configured catalog file path.
func (a *App) CatalogPath() string {
	return a.config.CatalogPath
}

// Store returns the catalog store, creating it lazily if needed.
// Construction loads the catalog file; a missing file starts a fresh
// catalog, a malformed file is a fatal parse error.
func (a *App) Store() (*quill.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store != nil {
		return a.store, nil
	}

	store, err := quill.New(quill.WithPath(a.config.CatalogPath))
	if err != nil {
		return nil, err
	}
	a.store = store
	return store, nil
}
