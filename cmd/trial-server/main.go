package main

import (
	"os"
	"time"

	"github.com/halewood/trial-by-combat/internal/api"
	"github.com/halewood/trial-by-combat/internal/config"
	"github.com/halewood/trial-by-combat/internal/constants"
	"github.com/halewood/trial-by-combat/internal/engine"
	"github.com/halewood/trial-by-combat/internal/logging"
	"github.com/halewood/trial-by-combat/internal/network"
	"github.com/halewood/trial-by-combat/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./trial_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Invalid configuration", err, logging.Fields{"config_path": configPath})
	}

	dbPath := os.Getenv(constants.EnvDatabasePath)
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	hub := network.NewBroadcaster()
	rng := engine.NewRoller(time.Now().UnixNano())
	handler := api.NewMatchHandler(repo, hub, rng, cfg.ActionTimeout)

	startTimeoutScanner(repo, cfg.ActionTimeout, rng)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteClasses, handler.ListClasses)
		apiRoutes.GET(constants.RouteOpenMatches, handler.ListOpenMatches)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteProfile, handler.GetProfile)

		apiRoutes.POST(constants.RouteMatches, handler.CreateMatch)
		apiRoutes.POST(constants.RouteMatchesJoin, handler.JoinMatch)
		apiRoutes.GET(constants.RouteMatchByCode, handler.GetMatch)
		apiRoutes.POST(constants.RouteMatchMove, handler.SubmitMove)
		apiRoutes.POST(constants.RouteMatchYield, handler.Forfeit)
		apiRoutes.GET(constants.RouteMatchWatch, handler.WatchMatch)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
