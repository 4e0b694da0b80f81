// main.go
package main

import (
	"context"
	"log"

	"github.com/alekscortez/ff-reservations-sub000/cmd"
	"github.com/alekscortez/ff-reservations-sub000/internal/data/repository"
	"github.com/alekscortez/ff-reservations-sub000/internal/wire"
	"github.com/alekscortez/ff-reservations-sub000/pkg/database"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to DynamoDB
	db, err := database.InitDB(context.Background(), config.AWS)
	if err != nil {
		logger.Fatal("Failed to connect to store", zap.Error(err))
	}

	logger.Info("Store connected",
		zap.String("region", config.AWS.Region),
		zap.String("endpoint", config.AWS.Endpoint),
	)

	// Initialize all repositories
	repos := repository.NewRepository(db, config.AWS.Tables, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
