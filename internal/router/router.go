// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krowne/krownebase/internal/cache"
	"github.com/krowne/krownebase/internal/config"
	"github.com/krowne/krownebase/internal/handlers"
	"github.com/krowne/krownebase/internal/middleware"
	"github.com/krowne/krownebase/internal/observability"
	"github.com/krowne/krownebase/internal/repository"
	"github.com/krowne/krownebase/internal/services"
	"github.com/krowne/krownebase/internal/tagging"
	"github.com/krowne/krownebase/internal/utils"
)

// Dependencies are the long lived collaborators the HTTP layer is built on.
// AuditDB, Archiver, Cache and Dictionary are optional.
type Dependencies struct {
	Repository repository.ProductRepository
	AuditDB    *gorm.DB
	Archiver   services.ImportArchiver
	Cache      cache.Cache
	Dictionary *tagging.Dictionary
}

// Initialize wires the production dependencies around db.
func Initialize(db *gorm.DB, cfg *config.Config, c cache.Cache, archiver services.ImportArchiver, dictionary *tagging.Dictionary) *gin.Engine {
	return New(cfg, Dependencies{
		Repository: repository.NewGormProductRepository(db),
		AuditDB:    db,
		Archiver:   archiver,
		Cache:      c,
		Dictionary: dictionary,
	})
}

func New(cfg *config.Config, deps Dependencies) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(deps.Repository)
	specSheetService := services.NewSpecSheetService(deps.Repository)
	importService := services.NewImportService(deps.Repository, deps.Archiver, cfg.Upload.MaxBytes)
	taggingService := services.NewTaggingService(deps.Repository, deps.Dictionary)
	scrapeService := services.NewScrapeService(cfg.Scraper.BaseURL, cfg.Scraper.Timeout, deps.Cache, cfg.Scraper.CacheTTL)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService, specSheetService)
	importHandler := handlers.NewImportHandler(importService, cfg.Upload.MaxBytes)
	tagHandler := handlers.NewTagHandler(taggingService)
	scrapeHandler := handlers.NewScrapeHandler(scrapeService)
	healthHandler := handlers.NewHealthHandler(productService)

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	utils.SetJWTIssuer(cfg.JWT.Issuer)

	generalLimiter := middleware.NewRateLimiter(middleware.PerSecond(cfg.Server.RateLimitRPS), cfg.Server.RateLimitBurst)
	uploadLimiter := middleware.NewRateLimiter(middleware.PerMinute(cfg.Server.UploadsPerMinute), cfg.Server.UploadsPerMinute)

	r := gin.New()
	r.MaxMultipartMemory = cfg.Upload.MaxBytes

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(generalLimiter.Middleware())

	r.GET("/health", healthHandler.Liveness)

	if cfg.Metrics.Enabled {
		observability.Register()
		r.GET("/metrics", observability.Handler())
	}

	v1 := r.Group("/v1")
	v1.Use(middleware.AuditLogMiddleware(deps.AuditDB))
	{
		v1.GET("/db-health", healthHandler.Database)

		products := v1.Group("/products")
		products.Use(middleware.AuthRequired())
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/import", importHandler.Status)
			products.GET("/import/template", importHandler.Template)
			products.GET("/:sku", productHandler.GetProduct)
			products.GET("/:sku/spec-sheet", productHandler.GetSpecSheet)

			// Editor routes
			editor := products.Group("")
			editor.Use(middleware.EditorRequired())
			{
				editor.POST("", productHandler.CreateProduct)
				editor.POST("/import", uploadLimiter.Middleware(), importHandler.ImportProducts)
				editor.PUT("/:sku", productHandler.UpdateProduct)
				editor.DELETE("/:sku", productHandler.DeleteProduct)
			}
		}

		tags := v1.Group("/tags")
		tags.Use(middleware.AuthRequired())
		{
			tags.GET("", tagHandler.ListTags)
			tags.GET("/preview/:sku", tagHandler.PreviewTags)
			tags.POST("", middleware.EditorRequired(), tagHandler.TagAll)
			tags.POST("/:sku", middleware.EditorRequired(), tagHandler.TagOne)
		}

		scrape := v1.Group("/scrape")
		scrape.Use(middleware.AuthRequired())
		{
			scrape.GET("/:sku", scrapeHandler.ScrapeProduct)
		}
	}

	return r
}
