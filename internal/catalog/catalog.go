package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/autonomous-futures/catalog/internal/airtable"
)

// Per-table list caps, tuned to the base's actual row counts.
const (
	defaultTextLimit      = 100
	defaultPrincipleLimit = 50
)

// Catalog is the read-only access layer over the remote base. Every record
// passes through normalization (and, for cultural texts, fallback
// resolution) before leaving this package.
type Catalog struct {
	store airtable.Store
	cache *ttlCache
	log   *zap.SugaredLogger
}

func New(store airtable.Store, log *zap.SugaredLogger) *Catalog {
	return &Catalog{
		store: store,
		cache: newTTLCache(),
		log:   log,
	}
}

// list is the single store read path: read-through cache keyed by the query
// shape, store errors wrapped once with the table name.
func (c *Catalog) list(ctx context.Context, table string, opts airtable.ListOptions) ([]airtable.Record, error) {
	key := cacheKey(table, opts)
	if v, ok := c.cache.get(key); ok {
		return v.([]airtable.Record), nil
	}

	records, err := c.store.List(ctx, table, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch failed for %s: %w", table, err)
	}

	c.cache.set(key, records, tableTTL(table))
	return records, nil
}

func cacheKey(table string, opts airtable.ListOptions) string {
	var b strings.Builder
	b.WriteString(table)
	b.WriteByte('|')
	b.WriteString(opts.FilterByFormula)
	fmt.Fprintf(&b, "|%d|%s", opts.MaxRecords, opts.View)
	for _, s := range opts.Sort {
		fmt.Fprintf(&b, "|%s:%s", s.Field, s.Direction)
	}
	return b.String()
}

// TextFilters narrows a cultural-texts list by field equality. Zero values
// are ignored.
type TextFilters struct {
	Genre      string
	Medium     string
	Country    string
	MaxRecords int
}

func (f TextFilters) formula() string {
	var conditions []string
	if f.Genre != "" {
		conditions = append(conditions, fmt.Sprintf(`{Genres} = "%s"`, escapeFormulaValue(f.Genre)))
	}
	if f.Medium != "" {
		conditions = append(conditions, fmt.Sprintf(`{Medium} = "%s"`, escapeFormulaValue(f.Medium)))
	}
	if f.Country != "" {
		conditions = append(conditions, fmt.Sprintf(`{Country} = "%s"`, escapeFormulaValue(f.Country)))
	}
	if len(conditions) == 0 {
		return ""
	}
	return fmt.Sprintf("AND(%s)", strings.Join(conditions, ", "))
}

func escapeFormulaValue(v string) string {
	return strings.ReplaceAll(v, `"`, `\"`)
}

// CulturalTexts lists cultural texts, normalized with fallbacks applied.
func (c *Catalog) CulturalTexts(ctx context.Context, filters TextFilters) ([]CulturalText, error) {
	max := filters.MaxRecords
	if max <= 0 {
		max = defaultTextLimit
	}
	records, err := c.list(ctx, TableCulturalTexts, airtable.ListOptions{
		FilterByFormula: filters.formula(),
		MaxRecords:      max,
	})
	if err != nil {
		return nil, err
	}

	texts := make([]CulturalText, 0, len(records))
	for _, rec := range records {
		texts = append(texts, ApplyFallbacks(NormalizeCulturalText(rec.ID, rec.Fields)))
	}
	return texts, nil
}

// CulturalTextsWithAuthors lists cultural texts with author profile IDs
// already substituted by the profile's display name. Texts and profiles are
// fetched concurrently.
func (c *Catalog) CulturalTextsWithAuthors(ctx context.Context, filters TextFilters) ([]CulturalText, error) {
	var (
		texts    []CulturalText
		profiles []Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		texts, err = c.CulturalTexts(gctx, filters)
		return err
	})
	g.Go(func() error {
		var err error
		profiles, err = c.Profiles(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ResolveAuthors(texts, profiles), nil
}

// CulturalText fetches one text by record ID. A missing record returns
// (nil, nil).
func (c *Catalog) CulturalText(ctx context.Context, id string) (*CulturalText, error) {
	rec, err := c.store.Find(ctx, TableCulturalTexts, id)
	if err != nil {
		return nil, fmt.Errorf("fetch failed for %s: %w", TableCulturalTexts, err)
	}
	if rec == nil {
		return nil, nil
	}
	text := ApplyFallbacks(NormalizeCulturalText(rec.ID, rec.Fields))
	return &text, nil
}

func (c *Catalog) Principles(ctx context.Context) ([]Principle, error) {
	records, err := c.list(ctx, TablePrinciples, airtable.ListOptions{
		MaxRecords: defaultPrincipleLimit,
	})
	if err != nil {
		return nil, err
	}

	principles := make([]Principle, 0, len(records))
	for _, rec := range records {
		principles = append(principles, NormalizePrinciple(rec.ID, rec.Fields))
	}
	return principles, nil
}

func (c *Catalog) Principle(ctx context.Context, id string) (*Principle, error) {
	rec, err := c.store.Find(ctx, TablePrinciples, id)
	if err != nil {
		return nil, fmt.Errorf("fetch failed for %s: %w", TablePrinciples, err)
	}
	if rec == nil {
		return nil, nil
	}
	p := NormalizePrinciple(rec.ID, rec.Fields)
	return &p, nil
}

// DesignRecommendations lists recommendations sorted by title. When
// principleID is set, the store prefilters to recommendations linked to it.
func (c *Catalog) DesignRecommendations(ctx context.Context, principleID string) ([]DesignRecommendation, error) {
	opts := airtable.ListOptions{
		Sort: []airtable.SortField{{Field: "Title", Direction: "asc"}},
	}
	if principleID != "" {
		opts.FilterByFormula = fmt.Sprintf(`FIND("%s", {Principles})`, escapeFormulaValue(principleID))
	}
	records, err := c.list(ctx, TableDesignRecommendations, opts)
	if err != nil {
		return nil, err
	}

	recs := make([]DesignRecommendation, 0, len(records))
	for _, rec := range records {
		recs = append(recs, NormalizeDesignRecommendation(rec.ID, rec.Fields))
	}
	return recs, nil
}

func (c *Catalog) Profiles(ctx context.Context) ([]Profile, error) {
	records, err := c.list(ctx, TableProfiles, airtable.ListOptions{
		Sort: []airtable.SortField{{Field: "Name", Direction: "asc"}},
	})
	if err != nil {
		return nil, err
	}

	profiles := make([]Profile, 0, len(records))
	for _, rec := range records {
		profiles = append(profiles, NormalizeProfile(rec.ID, rec.Fields))
	}
	return profiles, nil
}

func (c *Catalog) TechnologyTaxonomy(ctx context.Context) ([]TechnologyTaxonomy, error) {
	records, err := c.list(ctx, TableTechnologyTaxonomy, airtable.ListOptions{
		Sort: []airtable.SortField{
			{Field: "Category", Direction: "asc"},
			{Field: "Name", Direction: "asc"},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]TechnologyTaxonomy, 0, len(records))
	for _, rec := range records {
		items = append(items, NormalizeTechnologyTaxonomy(rec.ID, rec.Fields))
	}
	return items, nil
}
