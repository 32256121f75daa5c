package catalog

import (
	"context"

	"github.com/autonomous-futures/catalog/internal/airtable"
)

// The store only holds the forward side of most relations, so these joins
// scan the target table for the source ID. Tables are tens to low hundreds
// of rows; a full scan per call is fine at that size.

// relatedPrincipleLimit caps the "related principles" strip on detail pages.
const relatedPrincipleLimit = 3

// CulturalTextsForPrinciple returns every text whose principle list contains
// the given principle, sorted by title.
func (c *Catalog) CulturalTextsForPrinciple(ctx context.Context, principleID string) ([]CulturalText, error) {
	records, err := c.list(ctx, TableCulturalTexts, airtable.ListOptions{
		Sort: []airtable.SortField{{Field: "Title", Direction: "asc"}},
	})
	if err != nil {
		return nil, err
	}

	matches := []CulturalText{}
	for _, rec := range records {
		text := ApplyFallbacks(NormalizeCulturalText(rec.ID, rec.Fields))
		if contains(text.Principles, principleID) {
			matches = append(matches, text)
		}
	}
	return matches, nil
}

// PrinciplesForCulturalText returns every principle linked to the given
// text, overarching themes first.
func (c *Catalog) PrinciplesForCulturalText(ctx context.Context, textID string) ([]Principle, error) {
	records, err := c.list(ctx, TablePrinciples, airtable.ListOptions{
		Sort: []airtable.SortField{
			{Field: "IsOverarching", Direction: "desc"},
			{Field: "Title", Direction: "asc"},
		},
	})
	if err != nil {
		return nil, err
	}

	matches := []Principle{}
	for _, rec := range records {
		p := NormalizePrinciple(rec.ID, rec.Fields)
		if contains(p.CulturalTexts, textID) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (c *Catalog) ProfilesForPrinciple(ctx context.Context, principleID string) ([]Profile, error) {
	return c.profilesWhere(ctx, func(p Profile) bool {
		return contains(p.Principles, principleID)
	})
}

func (c *Catalog) ProfilesForCulturalText(ctx context.Context, textID string) ([]Profile, error) {
	return c.profilesWhere(ctx, func(p Profile) bool {
		return contains(p.CulturalTexts, textID)
	})
}

func (c *Catalog) profilesWhere(ctx context.Context, keep func(Profile) bool) ([]Profile, error) {
	profiles, err := c.Profiles(ctx)
	if err != nil {
		return nil, err
	}
	matches := []Profile{}
	for _, p := range profiles {
		if keep(p) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// DesignRecommendationsForPrinciple joins in memory rather than through the
// store's filter formula, so it also catches rows whose relation cell is a
// legacy comma-joined string.
func (c *Catalog) DesignRecommendationsForPrinciple(ctx context.Context, principleID string) ([]DesignRecommendation, error) {
	recs, err := c.DesignRecommendations(ctx, "")
	if err != nil {
		return nil, err
	}
	matches := []DesignRecommendation{}
	for _, r := range recs {
		if contains(r.Principles, principleID) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// RelatedPrinciples finds principles sharing at least one cultural text with
// the given principle, excluding it, capped at relatedPrincipleLimit in scan
// order.
func (c *Catalog) RelatedPrinciples(ctx context.Context, current Principle) ([]Principle, error) {
	if len(current.CulturalTexts) == 0 {
		return []Principle{}, nil
	}

	// Scan the full table, not the capped Principles list, so candidates
	// past the list limit still surface.
	records, err := c.list(ctx, TablePrinciples, airtable.ListOptions{})
	if err != nil {
		return nil, err
	}

	related := []Principle{}
	for _, rec := range records {
		p := NormalizePrinciple(rec.ID, rec.Fields)
		if p.ID == current.ID {
			continue
		}
		if sharesAny(p.CulturalTexts, current.CulturalTexts) {
			related = append(related, p)
			if len(related) == relatedPrincipleLimit {
				break
			}
		}
	}
	return related, nil
}

// ResolveAuthor substitutes a profile name for a text's author when the
// author field holds that profile's record ID. Otherwise the stored value is
// returned verbatim.
func ResolveAuthor(text CulturalText, profiles []Profile) string {
	for _, p := range profiles {
		if p.ID == text.Author && p.Name != "" {
			return p.Name
		}
	}
	return text.Author
}

// ResolveAuthors applies ResolveAuthor across a list of texts.
func ResolveAuthors(texts []CulturalText, profiles []Profile) []CulturalText {
	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		if p.ID != "" && p.Name != "" {
			names[p.ID] = p.Name
		}
	}

	out := make([]CulturalText, len(texts))
	for i, t := range texts {
		if name, ok := names[t.Author]; ok {
			t.Author = name
		}
		out[i] = t
	}
	return out
}

func contains(list []string, id string) bool {
	for _, item := range list {
		if item == id {
			return true
		}
	}
	return false
}

func sharesAny(a, b []string) bool {
	for _, item := range a {
		if contains(b, item) {
			return true
		}
	}
	return false
}
