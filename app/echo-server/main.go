package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wiseBuy/app/echo-server/router"
	"wiseBuy/business/catalog"
	"wiseBuy/business/recommend"
	"wiseBuy/internal/middleware"
	psqlRepo "wiseBuy/internal/repository/postgres"
	"wiseBuy/internal/repository/rediscache"
	"wiseBuy/internal/rest"
	"wiseBuy/pkg/config"
	"wiseBuy/pkg/database"
	redisdb "wiseBuy/pkg/database/redis"
	"wiseBuy/pkg/logger"
	"wiseBuy/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting WiseBuy recommendations", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init repo
	purchaseRepo := psqlRepo.NewPurchaseRepository(db)
	listRepo := psqlRepo.NewShoppingListRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)

	// catalog cache is optional: a missing Redis only costs catalog reads
	var productSource recommend.ProductRepository = productRepo
	var catalogCache catalog.CatalogCache
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, catalog cache disabled", "error", err)
	} else {
		productCache := rediscache.NewProductCache(
			redisClient,
			productRepo,
			time.Duration(cfg.Redis.CatalogTTL)*time.Second,
		)
		productSource = productCache
		catalogCache = productCache
		defer func() {
			if err := redisdb.CloseRedisClient(redisClient); err != nil {
				logger.Error("Failed to close redis client", "error", err)
			}
		}()
	}

	// Init service
	engine := recommend.NewEngine(recommend.Config{
		PerStrategy:         cfg.Recommend.PerStrategy,
		PopularityDecayDays: cfg.Recommend.PopularityDecayDays,
	})
	recommendService := recommend.NewService(purchaseRepo, listRepo, productSource, engine)
	catalogService := catalog.NewService(productSource, productRepo, catalogCache)

	// Init handler
	recommendationsHandler := rest.NewRecommendationsHandler(recommendService)
	purchasesHandler := rest.NewPurchasesHandler(recommendService)
	shoppingListsHandler := rest.NewShoppingListsHandler(recommendService)
	productsHandler := rest.NewProductsHandler(catalogService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendationsHandler)
	router.SetupPurchaseRoutes(api, purchasesHandler)
	router.SetupShoppingListRoutes(api, shoppingListsHandler)
	router.SetupProductRoutes(api, productsHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
