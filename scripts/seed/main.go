package main

import (
	"context"
	"time"

	"github.com/ArafatSadi1/doctors-portal/config"
	"github.com/ArafatSadi1/doctors-portal/database"
	serviceRepo "github.com/ArafatSadi1/doctors-portal/database/repository/service"
	"github.com/ArafatSadi1/doctors-portal/services/booking"
	"github.com/ArafatSadi1/doctors-portal/utils"

	"go.uber.org/zap"
)

// Loads the default service catalogue. Existing services with the same name are replaced.
func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURI())
	if err != nil {
		logger.Fatal("seed: failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	repo := serviceRepo.NewMongoServiceRepo(client.Database(cfg.DatabaseName), cfg.DBTimeout())
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("seed: failed to create service indexes", zap.Error(err))
	}

	catalogue := booking.DefaultCatalogue()
	result, err := repo.UpsertMany(ctx, catalogue)
	if err != nil {
		logger.Fatal("seed: failed to upsert services", zap.Error(err))
	}
	logger.Info("seed: service catalogue loaded",
		zap.Int("services", len(catalogue)),
		zap.Int64("inserted", result.UpsertedCount),
		zap.Int64("replaced", result.ModifiedCount))
}
