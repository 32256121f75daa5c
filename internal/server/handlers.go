package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/autonomous-futures/catalog/internal/catalog"
)

// Every endpoint answers with the same envelope: {success, data, ...}. On
// failure data is always an empty list so clients can render without
// null-checking.
type listEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Count   int         `json:"count"`
}

type itemEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type errorEnvelope struct {
	Success bool          `json:"success"`
	Error   string        `json:"error"`
	Data    []interface{} `json:"data"`
}

func respondList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, listEnvelope{Success: true, Data: data, Count: count})
}

func respondItem(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, itemEnvelope{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, errorEnvelope{Success: false, Error: err.Error(), Data: []interface{}{}})
}

func respondNotFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, errorEnvelope{Success: false, Error: what + " not found", Data: []interface{}{}})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func textFiltersFromQuery(c *gin.Context) catalog.TextFilters {
	filters := catalog.TextFilters{
		Genre:   c.Query("genre"),
		Medium:  c.Query("medium"),
		Country: c.Query("country"),
	}
	if raw := c.Query("maxRecords"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			filters.MaxRecords = n
		}
	}
	return filters
}

func (s *Server) ListCulturalTexts(c *gin.Context) {
	texts, err := s.catalog.CulturalTextsWithAuthors(c.Request.Context(), textFiltersFromQuery(c))
	if err != nil {
		s.log.Errorw("listing cultural texts", "error", err)
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondList(c, texts, len(texts))
}

func (s *Server) GetCulturalText(c *gin.Context) {
	text, err := s.catalog.CulturalText(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.log.Errorw("fetching cultural text", "id", c.Param("id"), "error", err)
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	if text == nil {
		respondNotFound(c, "cultural text")
		return
	}
	respondItem(c, text)
}

func (s *Server) ListPrinciplesForText(c *gin.Context) {
	principles, err := s.catalog.PrinciplesForCulturalText(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondList(c, principles, len(principles))
}

func (s *Server) ListProfilesForText(c *gin.Context) {
	profiles, err := s.catalog.ProfilesForCulturalText(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondList(c, profiles, len(profiles))
}

func (s *Server) ListPrinciples(c *gin.Context) {
	principles, err := s.catalog.Principles(c.Request.Context())
	if err != nil {
		s.log.Errorw("listing principles", "error", err)
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondList(c, principles, len(principles))
}

func (s *Server) GetPrinciple(c *gin.Context) {
	principle, err := s.catalog.Principle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	if principle == nil {
		respondNotFound(c, "principle")
		return
	}
	respondItem(c, principle)
}

func (s *Server) ListTextsForPrinciple(c *gin.Context) {
	texts, err := s.catalog.CulturalTextsForPrinciple(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondList(c, texts, len(texts))
}

func (s *Server) ListProfilesForPrinciple(c *gin.Context) {
	profiles, err := s.catalog.ProfilesForPrinciple(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondList(c, profiles, len(profiles))
}

func (s *Server) ListRecommendationsForPrinciple(c *gin.Context) {
	recs, err := s.catalog.DesignRecommendationsForPrinciple(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondList(c, recs, len(recs))
}

func (s *Server) ListRelatedPrinciples(c *gin.Context) {
	ctx := c.Request.Context()

	principle, err := s.catalog.Principle(ctx, c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	if principle == nil {
		respondNotFound(c, "principle")
		return
	}

	related, err := s.catalog.RelatedPrinciples(ctx, *principle)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondList(c, related, len(related))
}

func (s *Server) ListDesignRecommendations(c *gin.Context) {
	recs, err := s.catalog.DesignRecommendations(c.Request.Context(), c.Query("principleId"))
	if err != nil {
		s.log.Errorw("listing design recommendations", "error", err)
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondList(c, recs, len(recs))
}

func (s *Server) ListProfiles(c *gin.Context) {
	profiles, err := s.catalog.Profiles(c.Request.Context())
	if err != nil {
		s.log.Errorw("listing profiles", "error", err)
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondList(c, profiles, len(profiles))
}

func (s *Server) ListTechnologyTaxonomy(c *gin.Context) {
	items, err := s.catalog.TechnologyTaxonomy(c.Request.Context())
	if err != nil {
		s.log.Errorw("listing technology taxonomy", "error", err)
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondList(c, items, len(items))
}

func (s *Server) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	results, err := s.catalog.Search(c.Request.Context(), query)
	if err != nil {
		s.log.Errorw("search", "query", query, "error", err)
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": results})
}
