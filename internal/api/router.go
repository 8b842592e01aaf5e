package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/coopbat/intake-api/docs"
	"github.com/coopbat/intake-api/internal/api/handler"
	"github.com/coopbat/intake-api/internal/api/middleware"
	"github.com/coopbat/intake-api/internal/core/service"
	"github.com/coopbat/intake-api/internal/infrastructure/config"
	mongodb "github.com/coopbat/intake-api/internal/infrastructure/db/mongo"
	redisdb "github.com/coopbat/intake-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins(),
	}))
	e.Use(echoprometheus.NewMiddleware("intake"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	statusRepo := mongodb.NewStatusRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	feedCache := redisdb.NewFeedCache(rdb, log)

	tokenService := service.NewTokenService(accountRepo, log)
	accountService := service.NewAccountService(accountRepo, tokenService, cfg.JWTSecret, 24*time.Hour, log)
	intakeService := service.NewIntakeService(requestRepo, log)
	statusService := service.NewStatusService(statusRepo, feedCache, log)
	feedService := service.NewFeedService(requestRepo, statusService, feedCache, log)
	catalogService := service.NewCatalogService(catalogRepo, log)

	accountHandler := handler.NewAccountHandler(accountService)
	intakeHandler := handler.NewIntakeHandler(intakeService)
	feedHandler := handler.NewFeedHandler(feedService, statusService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	artisanGuard := middleware.Artisan(tokenService)
	adminGuard := middleware.Admin(cfg.AdminToken)

	// --- Submissions (no auth; pro session adds attribution) ---
	e.POST("/requests", intakeHandler.SubmitSimple, middleware.OptionalPro(cfg.JWTSecret))
	e.POST("/lead", intakeHandler.SubmitLead)
	e.POST("/advanced", intakeHandler.SubmitAdvanced)

	// --- Pro auth ---
	e.POST("/register", accountHandler.RegisterPro)
	e.POST("/login", accountHandler.LoginPro)

	// --- Artisan auth + feed ---
	e.POST("/artisan/register", accountHandler.RegisterArtisan)
	e.POST("/artisan/login", accountHandler.LoginArtisan)
	e.POST("/artisan/logout/:artisan_id", accountHandler.LogoutArtisan, artisanGuard)
	e.GET("/artisan/requests/:artisan_id", feedHandler.List, artisanGuard)
	e.POST("/artisan/requests/:artisan_id/:kind/:id/status", feedHandler.SetStatus, artisanGuard)

	// --- Catalog ---
	e.GET("/categories", catalogHandler.List)
	admin := e.Group("/admin", adminGuard)
	admin.GET("/categories", catalogHandler.List)
	admin.POST("/categories", catalogHandler.Upsert)
	admin.DELETE("/categories/:id", catalogHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness
	e.GET("/health/ready", readinessHandler.Readiness) // readiness

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
