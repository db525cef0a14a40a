package quill

import (
	"time"

	"github.com/quillhq/quill/pkg/storage"
)

// Option is a function that configures a Store.
type Option func(*config) error

// config holds the resolved Store configuration.
type config struct {
	path    string
	adapter storage.Adapter
	clock   func() time.Time
}

// defaults returns the default Store configuration.
func defaults() *config {
	return &config{
		path:  storage.DefaultPath,
		clock: time.Now,
	}
}

// WithPath configures the catalog file path used by the default file
// adapter. Ignored when a custom adapter is set.
func WithPath(path string) Option {
	return func(c *config) error {
		c.path = path
		return nil
	}
}

// WithAdapter configures a custom storage adapter.
func WithAdapter(adapter storage.Adapter) Option {
	return func(c *config) error {
		c.adapter = adapter
		return nil
	}
}

// WithClock configures the clock used to stamp publication times.
// Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(c *config) error {
		c.clock = clock
		return nil
	}
}
