package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autonomous-futures/catalog/internal/airtable"
)

func TestCulturalTextsAppliesPipeline(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{
		TableCulturalTexts: {
			record("t1", map[string]interface{}{"Title": "Binti", "By": "Nnedi Okorafor"}),
			record("t2", map[string]interface{}{"Title": "Parable", "Genres": "Afrofuturist, Solarpunk"}),
		},
	}}
	cat := newTestCatalog(store)

	texts, err := cat.CulturalTexts(context.Background(), TextFilters{})
	assert.NoError(t, err)
	assert.Len(t, texts, 2)

	assert.Equal(t, "Nnedi Okorafor", texts[0].Author)
	assert.Equal(t, "Various", texts[0].Country)
	assert.Equal(t, "Various", texts[1].Author)
	assert.Equal(t, "Afrofuturist", texts[1].Genre)
	assert.NotNil(t, texts[0].Placeholder)
}

func TestCulturalTextsFilterFormula(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{}}
	cat := newTestCatalog(store)

	_, err := cat.CulturalTexts(context.Background(), TextFilters{Genre: "Solarpunk", Country: "Kenya"})
	assert.NoError(t, err)

	opts := store.LastOptions[TableCulturalTexts]
	assert.Equal(t, `AND({Genres} = "Solarpunk", {Country} = "Kenya")`, opts.FilterByFormula)
	assert.Equal(t, defaultTextLimit, opts.MaxRecords)
}

func TestFetchErrorWrapsTableName(t *testing.T) {
	store := &MockStore{Err: errors.New("boom")}
	cat := newTestCatalog(store)

	_, err := cat.Principles(context.Background())
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "fetch failed for Principles")
		assert.Contains(t, err.Error(), "boom")
	}
}

func TestCulturalTextMissingIsNotError(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{}}
	cat := newTestCatalog(store)

	text, err := cat.CulturalText(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, text)
}

func TestCulturalTextByID(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{
		TableCulturalTexts: {
			record("t1", map[string]interface{}{"Title": "Binti"}),
		},
	}}
	cat := newTestCatalog(store)

	text, err := cat.CulturalText(context.Background(), "t1")
	assert.NoError(t, err)
	if assert.NotNil(t, text) {
		assert.Equal(t, "Binti", text.Title)
		assert.Equal(t, "Various", text.Author)
	}
}

func TestListsAreCached(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{
		TableProfiles: {
			record("pr1", map[string]interface{}{"Name": "Jane Doe"}),
		},
	}}
	cat := newTestCatalog(store)
	ctx := context.Background()

	_, err := cat.Profiles(ctx)
	assert.NoError(t, err)
	_, err = cat.Profiles(ctx)
	assert.NoError(t, err)

	assert.Equal(t, 1, store.ListCalls)
}

func TestFailedListsAreNotCached(t *testing.T) {
	store := &MockStore{Err: errors.New("rate limited")}
	cat := newTestCatalog(store)
	ctx := context.Background()

	_, err := cat.Profiles(ctx)
	assert.Error(t, err)

	store.Err = nil
	store.Records = map[string][]airtable.Record{
		TableProfiles: {record("pr1", map[string]interface{}{"Name": "Jane Doe"})},
	}
	profiles, err := cat.Profiles(ctx)
	assert.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestCulturalTextsWithAuthors(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{
		TableCulturalTexts: {
			record("t1", map[string]interface{}{"Title": "Binti", "By": []interface{}{"rec123"}}),
			record("t2", map[string]interface{}{"Title": "Dawn", "By": "Octavia Butler"}),
		},
		TableProfiles: {
			record("rec123", map[string]interface{}{"Name": "Jane Doe"}),
		},
	}}
	cat := newTestCatalog(store)

	texts, err := cat.CulturalTextsWithAuthors(context.Background(), TextFilters{})
	assert.NoError(t, err)
	assert.Len(t, texts, 2)
	assert.Equal(t, "Jane Doe", texts[0].Author)
	assert.Equal(t, "Octavia Butler", texts[1].Author)
}

func TestDesignRecommendationsPrefilter(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{}}
	cat := newTestCatalog(store)

	_, err := cat.DesignRecommendations(context.Background(), "p1")
	assert.NoError(t, err)

	opts := store.LastOptions[TableDesignRecommendations]
	assert.Equal(t, `FIND("p1", {Principles})`, opts.FilterByFormula)
	assert.Equal(t, []airtable.SortField{{Field: "Title", Direction: "asc"}}, opts.Sort)
}
