package catalog

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/autonomous-futures/catalog/internal/airtable"
)

// Queries shorter than this are treated as "no query": no store call, empty
// result. Matches the frontend's debounced-search threshold.
const minQueryLength = 3

// Per-table cap on search candidates fetched from the store.
const searchCandidateLimit = 25

// Search runs a case-insensitive substring search across principles,
// cultural texts and design recommendations. The store prefilters each table
// with a formula; the in-memory match below is authoritative so the
// formula-based and client-side implementations agree. Results come back in
// a fixed kind order: principles, then texts, then recommendations.
func (c *Catalog) Search(ctx context.Context, query string) ([]SearchResult, error) {
	q := strings.TrimSpace(query)
	if len(q) < minQueryLength {
		return []SearchResult{}, nil
	}
	lower := strings.ToLower(q)

	var (
		texts      []CulturalText
		principles []Principle
		recs       []DesignRecommendation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := c.list(gctx, TableCulturalTexts, airtable.ListOptions{
			FilterByFormula: searchFormula(lower, "Title", "By", "Content", "Genres", "Medium"),
			MaxRecords:      searchCandidateLimit,
		})
		if err != nil {
			return err
		}
		for _, rec := range records {
			texts = append(texts, ApplyFallbacks(NormalizeCulturalText(rec.ID, rec.Fields)))
		}
		return nil
	})
	g.Go(func() error {
		records, err := c.list(gctx, TablePrinciples, airtable.ListOptions{
			FilterByFormula: searchFormula(lower, "Title", "Content", "Theme"),
			MaxRecords:      searchCandidateLimit,
		})
		if err != nil {
			return err
		}
		for _, rec := range records {
			principles = append(principles, NormalizePrinciple(rec.ID, rec.Fields))
		}
		return nil
	})
	g.Go(func() error {
		records, err := c.list(gctx, TableDesignRecommendations, airtable.ListOptions{
			FilterByFormula: searchFormula(lower, "Title", "Content"),
			MaxRecords:      searchCandidateLimit,
		})
		if err != nil {
			return err
		}
		for _, rec := range records {
			recs = append(recs, NormalizeDesignRecommendation(rec.ID, rec.Fields))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := []SearchResult{}
	for _, p := range principles {
		if matchesPrinciple(p, lower) {
			results = append(results, SearchResult{
				Type:        KindPrinciple,
				ID:          p.ID,
				Title:       p.Title,
				Description: p.Description,
				Theme:       p.Theme,
			})
		}
	}
	for _, t := range texts {
		if matchesCulturalText(t, lower) {
			results = append(results, SearchResult{
				Type:        KindText,
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Author:      t.Author,
			})
		}
	}
	for _, r := range recs {
		if matchesRecommendation(r, lower) {
			results = append(results, SearchResult{
				Type:        KindRecommendation,
				ID:          r.ID,
				Title:       r.Title,
				Description: r.Content,
			})
		}
	}
	return results, nil
}

// searchFormula builds the store-side prefilter: the query as a lowercase
// substring of any of the given fields.
func searchFormula(lowerQuery string, fields ...string) string {
	clauses := make([]string, len(fields))
	for i, f := range fields {
		clauses[i] = fmt.Sprintf(`SEARCH(LOWER("%s"), LOWER({%s}))`, escapeFormulaValue(lowerQuery), f)
	}
	return fmt.Sprintf("OR(%s)", strings.Join(clauses, ", "))
}

func matchesCulturalText(t CulturalText, lowerQuery string) bool {
	return containsFold(t.Title, lowerQuery) ||
		containsFold(t.Description, lowerQuery) ||
		containsFold(t.Author, lowerQuery)
}

func matchesPrinciple(p Principle, lowerQuery string) bool {
	return containsFold(p.Title, lowerQuery) || containsFold(p.Description, lowerQuery)
}

func matchesRecommendation(r DesignRecommendation, lowerQuery string) bool {
	return containsFold(r.Title, lowerQuery) || containsFold(r.Content, lowerQuery)
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
