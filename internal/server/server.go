package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/autonomous-futures/catalog/internal/catalog"
	"github.com/autonomous-futures/catalog/internal/config"
)

type Server struct {
	catalog *catalog.Catalog
	log     *zap.SugaredLogger
}

func New(cat *catalog.Catalog, log *zap.SugaredLogger) *Server {
	return &Server{
		catalog: cat,
		log:     log,
	}
}

func (s *Server) SetupRouter(cfg config.ServerConfig) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.log))
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Requested-With"},
	}))

	r.GET("/health", s.Health)

	api := r.Group("/api")
	{
		texts := api.Group("/cultural-texts")
		{
			texts.GET("", s.ListCulturalTexts)
			texts.GET("/:id", s.GetCulturalText)
			texts.GET("/:id/principles", s.ListPrinciplesForText)
			texts.GET("/:id/profiles", s.ListProfilesForText)
		}

		principles := api.Group("/principles")
		{
			principles.GET("", s.ListPrinciples)
			principles.GET("/:id", s.GetPrinciple)
			principles.GET("/:id/cultural-texts", s.ListTextsForPrinciple)
			principles.GET("/:id/profiles", s.ListProfilesForPrinciple)
			principles.GET("/:id/design-recommendations", s.ListRecommendationsForPrinciple)
			principles.GET("/:id/related", s.ListRelatedPrinciples)
		}

		api.GET("/design-recommendations", s.ListDesignRecommendations)
		api.GET("/profiles", s.ListProfiles)
		api.GET("/technology-taxonomy", s.ListTechnologyTaxonomy)
		api.GET("/search", s.Search)
	}

	return r
}
