package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autonomous-futures/catalog/internal/airtable"
)

func searchFixture() *MockStore {
	return &MockStore{Records: map[string][]airtable.Record{
		TableCulturalTexts: {
			record("t1", map[string]interface{}{"Title": "Binti", "By": "Nnedi Okorafor", "Content": "A Himba girl leaves home."}),
			record("t2", map[string]interface{}{"Title": "Unrelated", "Content": "Nothing here."}),
		},
		TablePrinciples: {
			record("p1", map[string]interface{}{"Title": "Binti-style worldbuilding", "Content": "Grounded futures."}),
		},
		TableDesignRecommendations: {
			record("r1", map[string]interface{}{"Title": "Name things well", "Content": "Binti shows why names matter."}),
		},
	}}
}

func TestSearchOrderingAndTags(t *testing.T) {
	cat := newTestCatalog(searchFixture())

	results, err := cat.Search(context.Background(), "binti")
	assert.NoError(t, err)
	assert.Len(t, results, 3)

	// Fixed kind order: principles, then texts, then recommendations.
	assert.Equal(t, KindPrinciple, results[0].Type)
	assert.Equal(t, "p1", results[0].ID)
	assert.Equal(t, KindText, results[1].Type)
	assert.Equal(t, "t1", results[1].ID)
	assert.Equal(t, KindRecommendation, results[2].Type)
	assert.Equal(t, "r1", results[2].ID)
}

func TestSearchMatchesAuthor(t *testing.T) {
	cat := newTestCatalog(searchFixture())

	results, err := cat.Search(context.Background(), "okorafor")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, KindText, results[0].Type)
	assert.Equal(t, "Nnedi Okorafor", results[0].Author)
}

func TestSearchCaseInsensitive(t *testing.T) {
	cat := newTestCatalog(searchFixture())

	results, err := cat.Search(context.Background(), "BINTI")
	assert.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchShortQueryMakesNoCalls(t *testing.T) {
	store := searchFixture()
	cat := newTestCatalog(store)

	for _, q := range []string{"", " ", "ab", " ab "} {
		results, err := cat.Search(context.Background(), q)
		assert.NoError(t, err)
		assert.Empty(t, results)
	}
	assert.Equal(t, 0, store.ListCalls)
}

func TestSearchSendsPrefilterFormulas(t *testing.T) {
	store := searchFixture()
	cat := newTestCatalog(store)

	_, err := cat.Search(context.Background(), "binti")
	assert.NoError(t, err)

	texts := store.LastOptions[TableCulturalTexts]
	assert.Contains(t, texts.FilterByFormula, `SEARCH(LOWER("binti"), LOWER({Title}))`)
	assert.Contains(t, texts.FilterByFormula, `LOWER({By})`)
	assert.Equal(t, searchCandidateLimit, texts.MaxRecords)

	principles := store.LastOptions[TablePrinciples]
	assert.Contains(t, principles.FilterByFormula, `LOWER({Theme})`)
}

func TestSearchPropagatesStoreFailure(t *testing.T) {
	store := searchFixture()
	store.Err = assert.AnError
	cat := newTestCatalog(store)

	_, err := cat.Search(context.Background(), "binti")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fetch failed for")
}
