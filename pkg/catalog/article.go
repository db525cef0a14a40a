package catalog

import "time"

// Article is one published piece of content. It references exactly one
// Author and exactly one Category; both references are required.
type Article struct {
	Title       string
	Content     string
	Author      *Author
	Category    *Category
	PublishedAt Timestamp
}

// NewArticle constructs an article value. The article is not yet visible
// from its author or category: call Register to wire the back-references.
// Keeping registration a separate step avoids hidden side effects in the
// constructor.
func NewArticle(title, content string, author *Author, category *Category) *Article {
	return &Article{
		Title:    title,
		Content:  content,
		Author:   author,
		Category: category,
	}
}

// Register records the article in its author's and category's in-memory
// collections. Every article must be registered exactly once after
// construction.
func (a *Article) Register() {
	a.Author.AddArticle(a)
	a.Category.AddArticle(a)
}

// Publish stamps the article with the current wall-clock time.
func (a *Article) Publish() {
	a.PublishedAt = Now()
}

// PublishAt stamps the article with the given time, truncated to second
// precision. Used when the caller owns the clock.
func (a *Article) PublishAt(t time.Time) {
	a.PublishedAt = At(t)
}

// Published reports whether the article carries a publication timestamp.
func (a *Article) Published() bool {
	return !a.PublishedAt.IsZero()
}

// Record returns the normalized persisted form of the article, referencing
// its author by email and category by name.
func (a *Article) Record() ArticleRecord {
	return ArticleRecord{
		Title:       a.Title,
		Content:     a.Content,
		Author:      a.Author.Email,
		Category:    a.Category.Name,
		PublishedAt: a.PublishedAt,
	}
}
