package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autonomous-futures/catalog/internal/airtable"
)

func TestResolveAuthor(t *testing.T) {
	profiles := []Profile{
		{ID: "rec123", Name: "Jane Doe"},
		{ID: "rec456", Name: "Sam Lee"},
	}

	assert.Equal(t, "Jane Doe", ResolveAuthor(CulturalText{Author: "rec123"}, profiles))
	// No matching profile: the stored value is shown verbatim.
	assert.Equal(t, "rec999", ResolveAuthor(CulturalText{Author: "rec999"}, profiles))
	assert.Equal(t, "Nnedi Okorafor", ResolveAuthor(CulturalText{Author: "Nnedi Okorafor"}, profiles))
}

func TestRelatedPrinciplesCap(t *testing.T) {
	records := []airtable.Record{
		record("p0", map[string]interface{}{"Title": "Current", "Cultural Texts": []interface{}{"t1"}}),
	}
	// Five other principles all share t1 with p0.
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		records = append(records, record(id, map[string]interface{}{
			"Title":          "Principle " + id,
			"Cultural Texts": []interface{}{"t1", "t9"},
		}))
	}
	store := &MockStore{Records: map[string][]airtable.Record{TablePrinciples: records}}
	cat := newTestCatalog(store)

	current := Principle{ID: "p0", CulturalTexts: []string{"t1"}}
	related, err := cat.RelatedPrinciples(context.Background(), current)
	assert.NoError(t, err)
	assert.Len(t, related, relatedPrincipleLimit)
	for _, p := range related {
		assert.NotEqual(t, "p0", p.ID)
	}
	// Scan order is store-return order.
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{related[0].ID, related[1].ID, related[2].ID})
}

func TestRelatedPrinciplesScansFullTable(t *testing.T) {
	// The only match sits past the capped list size used by Principles, so
	// the scan must request the table uncapped.
	records := make([]airtable.Record, 0, defaultPrincipleLimit+1)
	for i := 0; i < defaultPrincipleLimit; i++ {
		records = append(records, record(fmt.Sprintf("p%d", i), map[string]interface{}{
			"Title":          fmt.Sprintf("Principle %d", i),
			"Cultural Texts": []interface{}{"t9"},
		}))
	}
	records = append(records, record("pLast", map[string]interface{}{
		"Title":          "Past the cap",
		"Cultural Texts": []interface{}{"t1"},
	}))
	store := &MockStore{Records: map[string][]airtable.Record{TablePrinciples: records}}
	cat := newTestCatalog(store)

	related, err := cat.RelatedPrinciples(context.Background(), Principle{ID: "p0", CulturalTexts: []string{"t1"}})
	assert.NoError(t, err)
	assert.Equal(t, 0, store.LastOptions[TablePrinciples].MaxRecords)
	if assert.Len(t, related, 1) {
		assert.Equal(t, "pLast", related[0].ID)
	}
}

func TestRelatedPrinciplesNoSharedTexts(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{
		TablePrinciples: {
			record("p1", map[string]interface{}{"Title": "Other", "Cultural Texts": []interface{}{"t2"}}),
		},
	}}
	cat := newTestCatalog(store)

	related, err := cat.RelatedPrinciples(context.Background(), Principle{ID: "p0", CulturalTexts: []string{"t1"}})
	assert.NoError(t, err)
	assert.Empty(t, related)

	// A principle with no texts never touches the store.
	related, err = cat.RelatedPrinciples(context.Background(), Principle{ID: "p0"})
	assert.NoError(t, err)
	assert.Empty(t, related)
	assert.Equal(t, 1, store.ListCalls)
}

func TestPrinciplesForCulturalText(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{
		TablePrinciples: {
			record("p1", map[string]interface{}{"Title": "Linked", "Cultural Texts": []interface{}{"t1", "t2"}}),
			record("p2", map[string]interface{}{"Title": "Unlinked", "Cultural Texts": []interface{}{"t3"}}),
			record("p3", map[string]interface{}{"Title": "Legacy", "Cultural Texts": "t1, t4"}),
		},
	}}
	cat := newTestCatalog(store)

	principles, err := cat.PrinciplesForCulturalText(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Len(t, principles, 2)
	assert.Equal(t, "Linked", principles[0].Title)
	assert.Equal(t, "Legacy", principles[1].Title)
}

func TestCulturalTextsForPrinciple(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{
		TableCulturalTexts: {
			record("t1", map[string]interface{}{"Title": "Binti", "Principles": []interface{}{"p1"}}),
			record("t2", map[string]interface{}{"Title": "Dawn", "Principles": []interface{}{"p2"}}),
		},
	}}
	cat := newTestCatalog(store)

	texts, err := cat.CulturalTextsForPrinciple(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Len(t, texts, 1)
	assert.Equal(t, "Binti", texts[0].Title)
	// Joined texts still carry fallbacks.
	assert.Equal(t, "Various", texts[0].Author)
}

func TestProfilesForPrinciple(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{
		TableProfiles: {
			record("pr1", map[string]interface{}{"Name": "Jane Doe", "Principles": []interface{}{"p1"}}),
			record("pr2", map[string]interface{}{"Name": "Sam Lee", "Principles": []interface{}{"p2"}}),
		},
	}}
	cat := newTestCatalog(store)

	profiles, err := cat.ProfilesForPrinciple(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Len(t, profiles, 1)
	assert.Equal(t, "Jane Doe", profiles[0].Name)
}

func TestDesignRecommendationsForPrincipleLegacyCells(t *testing.T) {
	store := &MockStore{Records: map[string][]airtable.Record{
		TableDesignRecommendations: {
			record("r1", map[string]interface{}{"Title": "Array cell", "Principles": []interface{}{"p1"}}),
			record("r2", map[string]interface{}{"Title": "String cell", "Principles": "p1, p2"}),
			record("r3", map[string]interface{}{"Title": "Other", "Principles": []interface{}{"p3"}}),
		},
	}}
	cat := newTestCatalog(store)

	recs, err := cat.DesignRecommendationsForPrinciple(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
}
