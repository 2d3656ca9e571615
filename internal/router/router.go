package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/packworks/coursecat-backend/internal/config"
	"github.com/packworks/coursecat-backend/internal/handler"
	"github.com/packworks/coursecat-backend/internal/middleware"
	"github.com/packworks/coursecat-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Search     *handler.SearchHandler
	Department *handler.DepartmentHandler
	Course     *handler.CourseHandler
	Section    *handler.SectionHandler
	Term       *handler.TermHandler
	Instructor *handler.InstructorHandler
	Catalog    *handler.CatalogHandler
	System     *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-Cache"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", handlers.System.Health)

	// Rate limiter for the search endpoint.
	searchLimiter := middleware.NewRateLimiter(cfg.SearchRatePerMin, time.Minute)

	// ─── Search ────────────────────────────────────────────────────────
	searchAPI := router.Group("/api/v1")
	searchAPI.Use(searchLimiter.Middleware())
	{
		searchAPI.GET("/courses/search", handlers.Search.Search)
	}

	// ─── Browse (Redis response cache) ─────────────────────────────────
	browseAPI := router.Group("/api/v1")
	browseAPI.Use(middleware.CacheControl(int(cfg.BrowseCacheTTL.Seconds())))
	browseAPI.Use(middleware.BrowseCache(rdb, cfg.BrowseCacheTTL, log))
	{
		browseAPI.GET("/departments", handlers.Department.List)
		browseAPI.GET("/departments/:id", handlers.Department.Get)
		browseAPI.GET("/departments/:id/courses", handlers.Department.ListCourses)

		browseAPI.GET("/courses", handlers.Course.List)
		browseAPI.GET("/courses/:id", handlers.Course.Get)
		browseAPI.GET("/courses/:id/sections", handlers.Course.ListSections)

		browseAPI.GET("/sections/:id", handlers.Section.Get)

		browseAPI.GET("/terms", handlers.Term.List)
		browseAPI.GET("/terms/current", handlers.Term.GetCurrent)

		browseAPI.GET("/instructors", handlers.Instructor.List)
		browseAPI.GET("/instructors/:id/sections", handlers.Instructor.ListSections)

		browseAPI.GET("/catalog/facets", handlers.Catalog.GetFacets)
	}

	return router
}
