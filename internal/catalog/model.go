package catalog

// Remote table names. These must match the base's table labels exactly.
const (
	TableCulturalTexts         = "Cultural Texts"
	TablePrinciples            = "Principles"
	TableDesignRecommendations = "Design Recommendations"
	TableProfiles              = "Profiles"
	TableTechnologyTaxonomy    = "Technology Taxonomy"
)

// CulturalText is a speculative-fiction work. Author may hold a Profile
// record ID or free text; ResolveAuthor substitutes the profile name when
// both entities are loaded together.
type CulturalText struct {
	ID                    string       `json:"id"`
	Title                 string       `json:"title"`
	Author                string       `json:"author,omitempty"`
	Country               string       `json:"country,omitempty"`
	Year                  *int         `json:"year,omitempty"`
	DisplayYear           string       `json:"displayYear,omitempty"`
	Medium                string       `json:"medium,omitempty"`
	Genre                 string       `json:"genre,omitempty"`
	Genres                []string     `json:"genres"`
	Image                 string       `json:"image,omitempty"`
	HasImage              bool         `json:"hasImage"`
	Links                 string       `json:"links,omitempty"`
	HasAccessLink         bool         `json:"hasAccessLink"`
	Description           string       `json:"description,omitempty"`
	Principles            []string     `json:"principles"`
	DesignRecommendations []string     `json:"designRecommendations"`
	Technology            []string     `json:"technology"`
	Placeholder           *Placeholder `json:"placeholder,omitempty"`
}

type Principle struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title"`
	IsOverarching         bool     `json:"isOverarching"`
	Theme                 string   `json:"theme,omitempty"`
	ThemeSlug             string   `json:"themeSlug,omitempty"`
	Description           string   `json:"description,omitempty"`
	Profiles              []string `json:"profiles"`
	CulturalTexts         []string `json:"culturalTexts"`
	DesignRecommendations []string `json:"designRecommendations"`
}

type DesignRecommendation struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content,omitempty"`
	Footnotes     string   `json:"footnotes,omitempty"`
	CulturalTexts []string `json:"culturalTexts"`
	Principles    []string `json:"principles"`
	Technology    []string `json:"technology"`
}

type Profile struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Content       string   `json:"content,omitempty"`
	Photo         string   `json:"photo,omitempty"`
	CulturalTexts []string `json:"culturalTexts"`
	Principles    []string `json:"principles"`
}

type TechnologyTaxonomy struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Category              string   `json:"category,omitempty"`
	Description           string   `json:"description,omitempty"`
	CulturalTexts         []string `json:"culturalTexts"`
	DesignRecommendations []string `json:"designRecommendations"`
}

// Search result kind tags, mirrored by the frontend's grouping logic.
const (
	KindText           = "text"
	KindPrinciple      = "principle"
	KindRecommendation = "recommendation"
)

// SearchResult is one tagged match from the cross-table search.
type SearchResult struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Theme       string `json:"theme,omitempty"`
}
