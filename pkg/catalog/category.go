package catalog

import "sort"

// Category represents an article category. The name is the natural key:
// two categories never share a name within one catalog.
type Category struct {
	Name string

	// Articles filed under this category - in-memory convenience view,
	// never serialized.
	articles []*Article
}

// NewCategory creates a category with the given name.
func NewCategory(name string) *Category {
	return &Category{Name: name}
}

// AddArticle records an article in the category's in-memory collection.
func (c *Category) AddArticle(article *Article) {
	c.articles = append(c.articles, article)
}

// Articles returns the articles in this category, in registration order.
func (c *Category) Articles() []*Article {
	return c.articles
}

// Categories is an index of categories keyed by name.
type Categories struct {
	categories map[string]*Category
}

// CategoriesOption configures a Categories index.
type CategoriesOption func(*Categories)

// WithCategoriesCapacity sets the initial capacity of the index.
func WithCategoriesCapacity(capacity int) CategoriesOption {
	return func(c *Categories) {
		c.categories = make(map[string]*Category, capacity)
	}
}

// NewCategories creates a new Categories index with optional configuration.
func NewCategories(opts ...CategoriesOption) *Categories {
	c := &Categories{
		categories: make(map[string]*Category),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns a category by name and whether it exists.
func (c *Categories) Get(name string) (*Category, bool) {
	category, ok := c.categories[name]
	return category, ok
}

// Add inserts a category under its name.
func (c *Categories) Add(category *Category) {
	c.categories[category.Name] = category
}

// Exists checks if a category exists without returning it.
func (c *Categories) Exists(name string) bool {
	_, exists := c.categories[name]
	return exists
}

// Len returns the number of categories.
func (c *Categories) Len() int {
	return len(c.categories)
}

// List returns all categories sorted by name for deterministic ordering.
func (c *Categories) List() []*Category {
	categories := make([]*Category, 0, len(c.categories))
	for _, category := range c.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories
}

// ForEach applies a function to each category. If the function returns
// false, iteration stops early.
func (c *Categories) ForEach(fn func(name string, category *Category) bool) {
	for name, category := range c.categories {
		if !fn(name, category) {
			break
		}
	}
}
