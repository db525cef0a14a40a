package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(t *testing.T) *Document {
	t.Helper()
	published, err := ParseTimestamp("2024-03-15 09:30:45")
	require.NoError(t, err)

	return &Document{
		Authors: []AuthorRecord{
			{Name: "Ana", Email: "ana@x.com"},
			{Name: "Bob", Email: "bob@x.com"},
		},
		Categories: []CategoryRecord{
			{Name: "Tech"},
		},
		Articles: []ArticleRecord{
			{Title: "Hello", Content: "World", Author: "ana@x.com", Category: "Tech", PublishedAt: published},
		},
	}
}

func TestEmptyDocument(t *testing.T) {
	doc := EmptyDocument()

	require.NotNil(t, doc.Authors)
	require.NotNil(t, doc.Categories)
	require.NotNil(t, doc.Articles)
	assert.Empty(t, doc.Authors)
	assert.Empty(t, doc.Categories)
	assert.Empty(t, doc.Articles)

	// Empty lists serialize as [], never null.
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"authors":[],"categories":[],"articles":[]}`, string(data))
}

func TestDocumentHasAuthor(t *testing.T) {
	doc := testDocument(t)
	assert.True(t, doc.HasAuthor("ana@x.com"))
	assert.False(t, doc.HasAuthor("carol@x.com"))
}

func TestDocumentHasCategory(t *testing.T) {
	doc := testDocument(t)
	assert.True(t, doc.HasCategory("Tech"))
	assert.False(t, doc.HasCategory("Art"))
}

func TestDocumentIndex(t *testing.T) {
	doc := testDocument(t)

	authors, categories := doc.Index()

	assert.Equal(t, 2, authors.Len())
	assert.Equal(t, 1, categories.Len())

	ana, ok := authors.Get("ana@x.com")
	require.True(t, ok)
	assert.Equal(t, "Ana", ana.Name)

	tech, ok := categories.Get("Tech")
	require.True(t, ok)
	assert.Equal(t, "Tech", tech.Name)
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	original := testDocument(t)

	data, err := json.MarshalIndent(original, "", "    ")
	require.NoError(t, err)

	decoded := EmptyDocument()
	require.NoError(t, json.Unmarshal(data, decoded))

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("document round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentWireFormat(t *testing.T) {
	doc := testDocument(t)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	require.Contains(t, raw, "authors")
	require.Contains(t, raw, "categories")
	require.Contains(t, raw, "articles")

	articles := raw["articles"].([]any)
	article := articles[0].(map[string]any)
	assert.Equal(t, "Hello", article["title"])
	assert.Equal(t, "World", article["content"])
	assert.Equal(t, "ana@x.com", article["author"])
	assert.Equal(t, "Tech", article["category"])
	assert.Equal(t, "2024-03-15 09:30:45", article["published_at"])
}

func TestDocumentFormatYAML(t *testing.T) {
	doc := testDocument(t)

	out, err := doc.FormatYAML()
	require.NoError(t, err)

	assert.Contains(t, out, "authors:")
	assert.Contains(t, out, "email: ana@x.com")
	assert.Contains(t, out, "category: Tech")
}

func TestTimestampTruncation(t *testing.T) {
	// Second precision survives the record round-trip regardless of the
	// nanoseconds on the source time.
	at := time.Date(2024, 3, 15, 9, 30, 45, 123456789, time.Local)
	assert.Equal(t, "2024-03-15 09:30:45", At(at).String())
}
