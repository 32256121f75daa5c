package catalog

import (
	"strconv"
	"strings"
)

// Display defaults for fields the base frequently leaves empty. Year, image
// and links have no fake default: their absence drives the placeholder and
// disabled-link states in the UI.
const (
	FallbackAuthor      = "Various"
	FallbackCountry     = "Various"
	FallbackMedium      = "Mixed Media"
	FallbackGenre       = "Speculative Fiction"
	FallbackDescription = "Description coming soon."
)

// ApplyFallbacks fills empty display fields with defaults. Present values are
// never overwritten, so the function is idempotent.
func ApplyFallbacks(t CulturalText) CulturalText {
	if t.Author == "" {
		t.Author = FallbackAuthor
	}
	if t.Country == "" {
		t.Country = FallbackCountry
	}
	if t.Medium == "" {
		t.Medium = FallbackMedium
	}
	if t.Genre == "" {
		if len(t.Genres) > 0 {
			t.Genre = t.Genres[0]
		} else {
			t.Genre = FallbackGenre
		}
	}
	if t.Description == "" {
		t.Description = FallbackDescription
	}
	t.Links = cleanURL(t.Links)
	year := ""
	if t.Year != nil {
		year = strconv.Itoa(*t.Year)
	}
	t.DisplayYear = MetadataFallback("year", year)
	t.HasImage = HasImage(t)
	t.HasAccessLink = HasAccessLink(t)
	if t.Placeholder == nil {
		p := PlaceholderFor(t)
		t.Placeholder = &p
	}
	return t
}

// Placeholder describes the generated artwork shown when a text has no cover
// image: a genre-driven palette and symbol plus a medium-driven aspect ratio.
type Placeholder struct {
	Colors      []string `json:"colors"`
	ColorIndex  int      `json:"colorIndex"`
	Pattern     string   `json:"pattern"`
	Symbol      string   `json:"symbol"`
	Theme       string   `json:"theme"`
	AspectRatio string   `json:"aspectRatio"`
}

var genrePlaceholders = map[string]Placeholder{
	"afrofuturist":      {Colors: []string{"#9CAF88", "#F59E0B", "#6B7280"}, Pattern: "geometric", Symbol: "◆", Theme: "Afrofuturist Visions"},
	"feminist futurist": {Colors: []string{"#E8F5E8", "#9CAF88", "#374151"}, Pattern: "organic", Symbol: "❋", Theme: "Feminist Futures"},
	"indigenous":        {Colors: []string{"#8B5A2B", "#9CAF88", "#F4E6D1"}, Pattern: "spiral", Symbol: "◉", Theme: "Indigenous Wisdom"},
	"asian futurist":    {Colors: []string{"#D4C5B9", "#9CAF88", "#6B7280"}, Pattern: "wave", Symbol: "○", Theme: "Asian Perspectives"},
	"latinx":            {Colors: []string{"#F59E0B", "#9CAF88", "#FBBF24"}, Pattern: "mosaic", Symbol: "◈", Theme: "Latinx Futures"},
	"south asian":       {Colors: []string{"#7C3AED", "#9CAF88", "#DDD6FE"}, Pattern: "mandala", Symbol: "✦", Theme: "South Asian Voices"},
	"arab futurist":     {Colors: []string{"#059669", "#9CAF88", "#A7F3D0"}, Pattern: "geometric", Symbol: "✧", Theme: "Arab Futures"},
	"solarpunk":         {Colors: []string{"#9CAF88", "#34D399", "#065F46"}, Pattern: "organic", Symbol: "❋", Theme: "Solarpunk Dreams"},
	"default":           {Colors: []string{"#9CAF88", "#6B7280", "#E8F5E8"}, Pattern: "abstract", Symbol: "◦", Theme: "Speculative Fiction"},
}

var mediumAspectRatios = map[string]string{
	"book":        "3/4",
	"film":        "16/9",
	"tv series":   "16/9",
	"game":        "1/1",
	"podcast":     "1/1",
	"article":     "4/3",
	"mixed media": "4/3",
	"default":     "4/3",
}

// PlaceholderFor picks the placeholder config for a text from its genre and
// medium, falling back to the default theme for unrecognized values. The
// record ID picks a stable accent color from the palette.
func PlaceholderFor(t CulturalText) Placeholder {
	p := genrePlaceholders[normalizeGenreKey(t.Genre)]
	p.AspectRatio = mediumAspectRatios[normalizeMediumKey(t.Medium)]
	p.ColorIndex = ColorIndex(t.ID, len(p.Colors))
	return p
}

// normalizeGenreKey maps free-text genre labels onto placeholder keys,
// with fuzzy matching for common variations.
func normalizeGenreKey(genre string) string {
	n := strings.ToLower(strings.TrimSpace(genre))
	if _, ok := genrePlaceholders[n]; ok {
		return n
	}
	switch {
	case strings.Contains(n, "afrofuturist") || strings.Contains(n, "afro-futurist"):
		return "afrofuturist"
	case strings.Contains(n, "feminist"):
		return "feminist futurist"
	case strings.Contains(n, "indigenous") || strings.Contains(n, "native"):
		return "indigenous"
	case strings.Contains(n, "south asian") || strings.Contains(n, "indian") || strings.Contains(n, "pakistani") || strings.Contains(n, "bangladeshi"):
		return "south asian"
	case strings.Contains(n, "asian") || strings.Contains(n, "chinese") || strings.Contains(n, "japanese") || strings.Contains(n, "korean"):
		return "asian futurist"
	case strings.Contains(n, "latinx") || strings.Contains(n, "latino") || strings.Contains(n, "latina") || strings.Contains(n, "hispanic"):
		return "latinx"
	case strings.Contains(n, "arab") || strings.Contains(n, "middle east") || strings.Contains(n, "persian"):
		return "arab futurist"
	case strings.Contains(n, "solarpunk") || strings.Contains(n, "eco") || strings.Contains(n, "climate"):
		return "solarpunk"
	}
	return "default"
}

func normalizeMediumKey(medium string) string {
	n := strings.ToLower(strings.TrimSpace(medium))
	if _, ok := mediumAspectRatios[n]; ok {
		return n
	}
	switch {
	case strings.Contains(n, "book") || strings.Contains(n, "novel") || strings.Contains(n, "story"):
		return "book"
	case strings.Contains(n, "film") || strings.Contains(n, "movie") || strings.Contains(n, "cinema"):
		return "film"
	case strings.Contains(n, "tv") || strings.Contains(n, "television") || strings.Contains(n, "series") || strings.Contains(n, "show"):
		return "tv series"
	case strings.Contains(n, "game") || strings.Contains(n, "gaming"):
		return "game"
	case strings.Contains(n, "podcast") || strings.Contains(n, "audio"):
		return "podcast"
	case strings.Contains(n, "article") || strings.Contains(n, "essay") || strings.Contains(n, "paper"):
		return "article"
	}
	return "default"
}

// ColorIndex hashes a record ID into a stable palette index so a text keeps
// the same placeholder colors across renders.
func ColorIndex(id string, colorCount int) int {
	if colorCount <= 0 {
		return 0
	}
	hash := int32(0)
	for _, c := range id {
		hash = (hash << 5) - hash + int32(c)
	}
	// Reduce as unsigned: negating MinInt32 overflows back to itself.
	return int(uint32(hash) % uint32(colorCount))
}

// MetadataFallback returns the display string for a possibly-missing field
// value. Unlike ApplyFallbacks this is per-field and includes values that
// must stay absent on the entity itself, such as year.
func MetadataFallback(field string, value string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	switch field {
	case "author":
		return FallbackAuthor
	case "country":
		return FallbackCountry
	case "year":
		return "Date TBD"
	case "medium":
		return FallbackMedium
	case "genre":
		return FallbackGenre
	case "description":
		return "Details coming soon"
	}
	return "Not specified"
}

// HasImage reports whether the text carries a usable cover image URL.
func HasImage(t CulturalText) bool {
	return strings.TrimSpace(t.Image) != "" && t.Image != "placeholder"
}

// HasAccessLink reports whether the text has an external access link.
func HasAccessLink(t CulturalText) bool {
	return strings.TrimSpace(t.Links) != ""
}
