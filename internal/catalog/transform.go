package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// The base's columns were renamed more than once over its life, so every
// semantic field has an ordered alias list: the first raw column that holds a
// non-empty value wins. Legacy capitalized spellings predate the normalized
// ones and take precedence.
var (
	aliasTitle       = []string{"Title", "title"}
	aliasAuthor      = []string{"By", "by", "author"}
	aliasContent     = []string{"Content", "content", "description"}
	aliasCountry     = []string{"Country", "country"}
	aliasYear        = []string{"Year", "year"}
	aliasMedium      = []string{"Medium", "medium"}
	aliasGenres      = []string{"Genres", "genres", "genre"}
	aliasImage       = []string{"Image", "image"}
	aliasLinks       = []string{"Links", "links"}
	aliasPrinciples  = []string{"Principles", "principles"}
	aliasRecs        = []string{"Design Recommendations", "designRecommendations"}
	aliasTechnology  = []string{"Technology", "technology"}
	aliasOverarching = []string{"IsOverarching", "isOverarching", "OVERARCHING"}
	aliasTheme       = []string{"Theme", "theme", "Main Theme"}
	aliasTexts       = []string{"Cultural Texts", "culturalTexts"}
	aliasProfiles    = []string{"Profiles", "profiles"}
	aliasName        = []string{"Name", "name"}
	aliasPhoto       = []string{"Photo", "photo"}
	aliasFootnotes   = []string{"Footnotes", "footnotes"}
	aliasCategory    = []string{"Category", "category"}
	aliasDescription = []string{"Description", "description", "Content"}
)

type rawFields map[string]interface{}

// first returns the value of the first alias that is present and non-empty.
func (r rawFields) first(aliases []string) interface{} {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

func (r rawFields) str(aliases []string) string {
	return stringValue(r.first(aliases))
}

// stringValue coerces a raw cell to a display string. Attachment cells come
// back as arrays of objects carrying a url; linked-record cells as arrays of
// IDs.
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []string:
		if len(val) == 0 {
			return ""
		}
		return strings.TrimSpace(val[0])
	case []interface{}:
		if len(val) == 0 {
			return ""
		}
		return stringValue(val[0])
	case map[string]interface{}:
		if u, ok := val["url"].(string); ok {
			return strings.TrimSpace(u)
		}
		return ""
	case float64:
		if val == float64(int(val)) {
			return strconv.Itoa(int(val))
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// ParseRelationField converts a relation cell into an ordered list of
// non-empty trimmed IDs. The store returns arrays for linked records, but
// historical CSV imports left some cells as comma-joined strings.
func ParseRelationField(v interface{}) []string {
	out := []string{}
	switch val := v.(type) {
	case nil:
		return out
	case string:
		for _, part := range strings.Split(val, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	case []string:
		for _, item := range val {
			if p := strings.TrimSpace(item); p != "" {
				out = append(out, p)
			}
		}
	case []interface{}:
		for _, item := range val {
			if p := strings.TrimSpace(stringValue(item)); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// parseAffirmative resolves the four raw spellings of a true flag. Anything
// else, including absence, is false.
func parseAffirmative(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "Yes" || val == "TRUE" || val == "true"
	default:
		return false
	}
}

// genreString flattens the genre cell to a single comma-joined string.
func genreString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ",")
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, stringValue(item))
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// cleanURL strips a stray leading '<' and trailing '>' that markdown-style
// cells carry around their links.
func cleanURL(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "<")
	cleaned = strings.TrimSuffix(cleaned, ">")
	return strings.TrimSpace(cleaned)
}

// authorValue extracts the author cell: a linked-record cell arrives as an
// array holding a single profile ID, older rows hold free text.
func authorValue(v interface{}) string {
	switch val := v.(type) {
	case []interface{}:
		if len(val) == 0 {
			return ""
		}
		return strings.TrimSpace(stringValue(val[0]))
	case []string:
		if len(val) == 0 {
			return ""
		}
		return strings.TrimSpace(val[0])
	case string:
		return strings.TrimSpace(val)
	default:
		return ""
	}
}

func yearValue(v interface{}) *int {
	switch val := v.(type) {
	case float64:
		y := int(val)
		return &y
	case int:
		y := val
		return &y
	case string:
		if y, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return &y
		}
	}
	return nil
}

// NormalizeCulturalText converts one raw record into the canonical shape.
// Pure function; fallback values are applied separately.
func NormalizeCulturalText(id string, fields map[string]interface{}) CulturalText {
	r := rawFields(fields)
	genres := genreString(r.first(aliasGenres))

	return CulturalText{
		ID:                    id,
		Title:                 r.str(aliasTitle),
		Author:                authorValue(r.first(aliasAuthor)),
		Country:               r.str(aliasCountry),
		Year:                  yearValue(r.first(aliasYear)),
		Medium:                r.str(aliasMedium),
		Genre:                 firstGenre(genres),
		Genres:                ParseRelationField(genres),
		Image:                 stringValue(r.first(aliasImage)),
		Links:                 cleanURL(r.str(aliasLinks)),
		Description:           r.str(aliasContent),
		Principles:            ParseRelationField(r.first(aliasPrinciples)),
		DesignRecommendations: ParseRelationField(r.first(aliasRecs)),
		Technology:            ParseRelationField(r.first(aliasTechnology)),
	}
}

func firstGenre(genres string) string {
	return strings.TrimSpace(strings.SplitN(genres, ",", 2)[0])
}

func NormalizePrinciple(id string, fields map[string]interface{}) Principle {
	r := rawFields(fields)
	theme := r.str(aliasTheme)

	return Principle{
		ID:                    id,
		Title:                 r.str(aliasTitle),
		IsOverarching:         parseAffirmative(r.first(aliasOverarching)),
		Theme:                 theme,
		ThemeSlug:             NormalizeTheme(theme),
		Description:           r.str(aliasContent),
		Profiles:              ParseRelationField(r.first(aliasProfiles)),
		CulturalTexts:         ParseRelationField(r.first(aliasTexts)),
		DesignRecommendations: ParseRelationField(r.first(aliasRecs)),
	}
}

func NormalizeDesignRecommendation(id string, fields map[string]interface{}) DesignRecommendation {
	r := rawFields(fields)
	return DesignRecommendation{
		ID:            id,
		Title:         r.str(aliasTitle),
		Content:       r.str(aliasContent),
		Footnotes:     r.str(aliasFootnotes),
		CulturalTexts: ParseRelationField(r.first(aliasTexts)),
		Principles:    ParseRelationField(r.first(aliasPrinciples)),
		Technology:    ParseRelationField(r.first(aliasTechnology)),
	}
}

func NormalizeProfile(id string, fields map[string]interface{}) Profile {
	r := rawFields(fields)
	return Profile{
		ID:            id,
		Name:          r.str(aliasName),
		Content:       r.str(aliasContent),
		Photo:         stringValue(r.first(aliasPhoto)),
		CulturalTexts: ParseRelationField(r.first(aliasTexts)),
		Principles:    ParseRelationField(r.first(aliasPrinciples)),
	}
}

func NormalizeTechnologyTaxonomy(id string, fields map[string]interface{}) TechnologyTaxonomy {
	r := rawFields(fields)
	return TechnologyTaxonomy{
		ID:                    id,
		Name:                  r.str(aliasName),
		Category:              r.str(aliasCategory),
		Description:           r.str(aliasDescription),
		CulturalTexts:         ParseRelationField(r.first(aliasTexts)),
		DesignRecommendations: ParseRelationField(r.first(aliasRecs)),
	}
}

// NormalizeTheme maps a theme label to the slug used for filtering. The
// three canonical themes match on keyword pairs so spelling variants group
// together; unknown themes are slugified as-is.
func NormalizeTheme(theme string) string {
	normalized := strings.ToLower(strings.TrimSpace(theme))
	if normalized == "" {
		return ""
	}
	switch {
	case strings.Contains(normalized, "collective") && strings.Contains(normalized, "power"):
		return "collective-power"
	case strings.Contains(normalized, "inclusive") && strings.Contains(normalized, "engagement"):
		return "inclusive-engagement"
	case strings.Contains(normalized, "cultural") && strings.Contains(normalized, "specificity"):
		return "cultural-specificity"
	}
	return strings.Join(strings.Fields(normalized), "-")
}
