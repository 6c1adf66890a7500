// Job - пакетный пересчет наград всех пользователей
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glkeru/tourguide/internal/config"
	db "github.com/glkeru/tourguide/internal/db"
	gps "github.com/glkeru/tourguide/internal/external/gps"
	rabbit "github.com/glkeru/tourguide/internal/external/rabbitmq"
	rewardcentral "github.com/glkeru/tourguide/internal/external/rewardcentral"
	interf "github.com/glkeru/tourguide/internal/interfaces"
	models "github.com/glkeru/tourguide/internal/models"
	services "github.com/glkeru/tourguide/internal/services"
	tracing "github.com/glkeru/tourguide/observability/otel"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	err = run(logger)
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	// config
	cfg, err := config.Load()
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// tracing
	shutdownTracer, err := tracing.InitTracer(ctx, "tourguide-rewards", logger)
	if err != nil {
		logger.Warn("Tracing disabled", zap.Error(err))
	} else {
		defer shutdownTracer(context.Background())
	}

	// database
	users, closeDB, err := db.NewUsersDB(ctx, logger)
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	defer closeDB()

	// providers
	gpsClient := gps.NewGpsClient(cfg.Providers.GpsURL, cfg.Rewards.LookupTimeout)
	pointsClient := rewardcentral.NewRewardCentralClient(cfg.Providers.RewardsURL, cfg.Providers.RewardsRPS, cfg.Rewards.LookupTimeout)

	var catalog interf.AttractionSource = gpsClient
	mongo, err := db.NewAttractionsDB()
	if err != nil {
		logger.Warn("Attractions are loaded from GPS provider", zap.Error(err))
	} else {
		defer mongo.Close(context.Background())
		catalog = db.NewSeededCatalog(mongo, gpsClient, logger)
	}

	// rabbitmq
	var notifier interf.RewardNotifier
	publisher, err := rabbit.NewRabbitPublisher()
	if err != nil {
		logger.Warn("Reward notifications disabled", zap.Error(err))
	} else {
		defer publisher.Close()
		notifier = publisher
	}

	// services
	rewards, err := services.NewRewardsService(ctx, catalog, pointsClient, notifier, cfg.Rewards, logger)
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	tourGuide := services.NewTourGuideService(gpsClient, rewards, users, nil, cfg.Tracking.Workers, logger)
	batch := services.NewRewardProcessingService(rewards, cfg.Tracking.Workers, logger)

	// start
	start := time.Now()
	all, err := tourGuide.GetAllUsers(ctx)
	if err != nil {
		logger.Error("Get users", zap.Error(err))
		return err
	}
	logger.Info("Begin rewards calculation",
		zap.Int("users", len(all)),
		zap.String("mode", cfg.Tracking.BatchMode),
	)

	calcErr := batch.Process(ctx, cfg.Tracking.BatchMode, all)
	saveErr := tourGuide.SaveAllRewards(ctx, all)

	failed := models.NewBatchError()
	for _, err := range []error{calcErr, saveErr} {
		var batchErr *models.BatchError
		if errors.As(err, &batchErr) {
			for id, e := range batchErr.Failed {
				failed.Add(id, e)
			}
		}
	}
	logger.Info("Rewards calculation finished",
		zap.Int("users", len(all)),
		zap.Int("failed", len(failed.Failed)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return multierr.Append(calcErr, saveErr)
}
