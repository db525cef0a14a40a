package catalog

import "sort"

// Author represents a known article author. The email is the natural key:
// two authors never share an email within one catalog.
type Author struct {
	Name  string
	Email string

	// Articles written by this author - in-memory convenience view,
	// never serialized.
	articles []*Article
}

// NewAuthor creates an author with the given identity fields.
func NewAuthor(name, email string) *Author {
	return &Author{Name: name, Email: email}
}

// AddArticle records an article in the author's in-memory collection.
func (a *Author) AddArticle(article *Article) {
	a.articles = append(a.articles, article)
}

// Articles returns the articles written by this author, in registration order.
func (a *Author) Articles() []*Article {
	return a.articles
}

// Authors is an index of authors keyed by email.
type Authors struct {
	authors map[string]*Author
}

// AuthorsOption configures an Authors index.
type AuthorsOption func(*Authors)

// WithAuthorsCapacity sets the initial capacity of the index.
func WithAuthorsCapacity(capacity int) AuthorsOption {
	return func(a *Authors) {
		a.authors = make(map[string]*Author, capacity)
	}
}

// NewAuthors creates a new Authors index with optional configuration.
func NewAuthors(opts ...AuthorsOption) *Authors {
	a := &Authors{
		authors: make(map[string]*Author),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Get returns an author by email and whether it exists.
func (a *Authors) Get(email string) (*Author, bool) {
	author, ok := a.authors[email]
	return author, ok
}

// Add inserts an author under its email.
func (a *Authors) Add(author *Author) {
	a.authors[author.Email] = author
}

// Exists checks if an author exists without returning it.
func (a *Authors) Exists(email string) bool {
	_, exists := a.authors[email]
	return exists
}

// Len returns the number of authors.
func (a *Authors) Len() int {
	return len(a.authors)
}

// List returns all authors sorted by email for deterministic ordering.
func (a *Authors) List() []*Author {
	authors := make([]*Author, 0, len(a.authors))
	for _, author := range a.authors {
		authors = append(authors, author)
	}
	sort.Slice(authors, func(i, j int) bool {
		return authors[i].Email < authors[j].Email
	})
	return authors
}

// ForEach applies a function to each author. If the function returns false,
// iteration stops early.
func (a *Authors) ForEach(fn func(email string, author *Author) bool) {
	for email, author := range a.authors {
		if !fn(email, author) {
			break
		}
	}
}
