// Package reconcile resolves user-supplied author and category identities
// against the catalog's live indexes, enforcing natural-key uniqueness.
// Entities are created lazily on first use and reused ever after.
package reconcile

import (
	"github.com/quillhq/quill/pkg/catalog"
	"github.com/quillhq/quill/pkg/logging"
)

// Author returns the author for the given email, creating and indexing a
// new one when the email is unknown. An existing author is returned
// unchanged: if the caller supplies a different name for a known email,
// the first-seen name wins and the supplied name is ignored.
func Author(name, email string, authors *catalog.Authors) *catalog.Author {
	if existing, ok := authors.Get(email); ok {
		if existing.Name != name {
			logging.Debug().
				Str("email", email).
				Str("stored_name", existing.Name).
				Str("supplied_name", name).
				Msg("Author email already known, keeping stored name")
		}
		return existing
	}

	author := catalog.NewAuthor(name, email)
	authors.Add(author)
	return author
}

// Category returns the category for the given name, creating and indexing
// a new one when the name is unknown.
func Category(name string, categories *catalog.Categories) *catalog.Category {
	if existing, ok := categories.Get(name); ok {
		return existing
	}

	category := catalog.NewCategory(name)
	categories.Add(category)
	return category
}
