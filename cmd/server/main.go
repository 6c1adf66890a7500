// HTTP API - местоположение пользователей, ближайшие достопримечательности и награды
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	api "github.com/glkeru/tourguide/internal/api"
	"github.com/glkeru/tourguide/internal/config"
	db "github.com/glkeru/tourguide/internal/db"
	gps "github.com/glkeru/tourguide/internal/external/gps"
	rabbit "github.com/glkeru/tourguide/internal/external/rabbitmq"
	rewardcentral "github.com/glkeru/tourguide/internal/external/rewardcentral"
	interf "github.com/glkeru/tourguide/internal/interfaces"
	services "github.com/glkeru/tourguide/internal/services"
	tracing "github.com/glkeru/tourguide/observability/otel"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	cfg, err := config.Load()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// tracing
	shutdownTracer, err := tracing.InitTracer(ctx, "tourguide", logger)
	if err != nil {
		logger.Warn("Tracing disabled", zap.Error(err))
	} else {
		defer shutdownTracer(context.Background())
	}

	// database
	users, closeDB, err := db.NewUsersDB(ctx, logger)
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer closeDB()
	if err = users.Migrate(ctx); err != nil {
		logger.Error(err.Error())
		panic(err)
	}

	// providers
	gpsClient := gps.NewGpsClient(cfg.Providers.GpsURL, cfg.Rewards.LookupTimeout)
	pointsClient := rewardcentral.NewRewardCentralClient(cfg.Providers.RewardsURL, cfg.Providers.RewardsRPS, cfg.Rewards.LookupTimeout)

	// каталог достопримечательностей
	var catalog interf.AttractionSource = gpsClient
	mongo, err := db.NewAttractionsDB()
	if err != nil {
		logger.Warn("Attractions are loaded from GPS provider", zap.Error(err))
	} else {
		defer mongo.Close(context.Background())
		catalog = db.NewSeededCatalog(mongo, gpsClient, logger)
	}

	// cache
	var locations interf.LocationCache
	redis, err := db.NewRedisLocationCache(cfg.Tracking.LocationTTL)
	if err != nil {
		logger.Warn("Redis is not available, in-memory location cache", zap.Error(err))
		locations = db.NewMemoryLocationCache(cfg.Tracking.LocationTTL)
	} else {
		defer redis.Close()
		locations = redis
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
		panic(err)
	}
	tourGuide := services.NewTourGuideService(gpsClient, rewards, users, locations, cfg.Tracking.Workers, logger)
	batch := services.NewRewardProcessingService(rewards, cfg.Tracking.Workers, logger)

	// tracker
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		services.NewTracker(tourGuide, cfg.Tracking.Interval, logger).Run(ctx)
	}()

	// api handlers
	r := api.NewHandler(tourGuide, batch, logger)
	r.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "tourguide"),
		Addr:         ":" + cfg.Port,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
			interrupt <- syscall.SIGTERM
		}
	}()
	logger.Info("TourGuide started",
		zap.String("port", cfg.Port),
		zap.Int("attractions", len(rewards.Attractions())),
	)

	// shutdown
	<-interrupt
	cancel()
	timeout, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	wg.Wait()
}
