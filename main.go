package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/RichelleAnne09/agots-express-dashboard/config"
	"github.com/RichelleAnne09/agots-express-dashboard/gateway"
	"github.com/RichelleAnne09/agots-express-dashboard/middlewares"
	"github.com/RichelleAnne09/agots-express-dashboard/router"
	"github.com/RichelleAnne09/agots-express-dashboard/services"
	"github.com/RichelleAnne09/agots-express-dashboard/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := gateway.NewClient(cfg.UpstreamBaseURL)

	// One cache and one catalog service per dashboard session; the process
	// is the session, so they live for the lifetime of the server.
	cache := services.NewMenuCache()
	catalog := services.NewCatalogService(client, cache)

	if err := catalog.Load(context.Background()); err != nil {
		utils.ErrorLogger.Printf("initial menu load failed, starting with an empty catalog: %v", err)
	} else {
		utils.InfoLogger.Printf("menu catalog loaded, %d items", cache.Len())
	}

	// Periodic reload, the dashboard's auto-refresh. In-flight loads are
	// never cancelled; the last one to complete wins the cache.
	refresher := services.NewRefresher(cfg.RefreshInterval, catalog.Load)
	refresher.Start()
	defer refresher.Stop()

	stats := services.NewStatsService(client, cfg.StatsTTL)

	rateLimiter := middlewares.NewRateLimiter(50, 50)

	r := router.SetupRouter(client, catalog, stats, rateLimiter, cfg.AllowedOrigin)

	utils.InfoLogger.Printf("dashboard listening on port %s (upstream %s)", cfg.Port, cfg.UpstreamBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
