package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"
)

const (
	DefaultProximityBuffer  = 10.0
	DefaultAttractionRange  = 200.0
	DefaultNearbyLimit      = 5
	DefaultLookupTimeout    = 5 * time.Second
	DefaultTrackingInterval = 5 * time.Minute
	DefaultLocationTTL      = 5 * time.Minute

	ModeParallel   = "parallel"
	ModeSequential = "sequential"
)

type RewardsConfig struct {
	ProximityBuffer float64 // мили
	AttractionRange float64 // мили
	Workers         int     // одновременные запросы баллов
	LookupTimeout   time.Duration
}

type TrackingConfig struct {
	Workers     int // одновременно обрабатываемые пользователи
	Interval    time.Duration
	LocationTTL time.Duration
	BatchMode   string
}

type ProvidersConfig struct {
	GpsURL     string
	RewardsURL string
	RewardsRPS int
}

type Config struct {
	Port      string
	Rewards   RewardsConfig
	Tracking  TrackingConfig
	Providers ProvidersConfig
}

// Defaults: конфигурация без переменных окружения
func Defaults() *Config {
	return &Config{
		Port: "8080",
		Rewards: RewardsConfig{
			ProximityBuffer: DefaultProximityBuffer,
			AttractionRange: DefaultAttractionRange,
			Workers:         max(16, runtime.NumCPU()*2),
			LookupTimeout:   DefaultLookupTimeout,
		},
		Tracking: TrackingConfig{
			Workers:     max(32, runtime.NumCPU()*4),
			Interval:    DefaultTrackingInterval,
			LocationTTL: DefaultLocationTTL,
			BatchMode:   ModeParallel,
		},
	}
}

func Load() (*Config, error) {
	def := Defaults()
	cfg := &Config{
		Port: getEnvOrDefault("TOURGUIDE_PORT", def.Port),
		Rewards: RewardsConfig{
			ProximityBuffer: getFloatOrDefault("TOURGUIDE_PROXIMITY_BUFFER", def.Rewards.ProximityBuffer),
			AttractionRange: getFloatOrDefault("TOURGUIDE_ATTRACTION_RANGE", def.Rewards.AttractionRange),
			Workers:         getIntOrDefault("TOURGUIDE_REWARDS_WORKERS", def.Rewards.Workers),
			LookupTimeout:   getDurationOrDefault("TOURGUIDE_LOOKUP_TIMEOUT", def.Rewards.LookupTimeout),
		},
		Tracking: TrackingConfig{
			Workers:     getIntOrDefault("TOURGUIDE_USERS_WORKERS", def.Tracking.Workers),
			Interval:    getDurationOrDefault("TOURGUIDE_TRACKING_INTERVAL", def.Tracking.Interval),
			LocationTTL: getDurationOrDefault("TOURGUIDE_LOCATION_TTL", def.Tracking.LocationTTL),
			BatchMode:   getEnvOrDefault("TOURGUIDE_BATCH_MODE", def.Tracking.BatchMode),
		},
		Providers: ProvidersConfig{
			GpsURL:     os.Getenv("GPS_URL"),
			RewardsURL: os.Getenv("REWARDS_URL"),
			RewardsRPS: getIntOrDefault("REWARDS_RPS", 0),
		},
	}

	if cfg.Providers.GpsURL == "" {
		return nil, fmt.Errorf("env GPS_URL is not set")
	}
	if cfg.Providers.RewardsURL == "" {
		return nil, fmt.Errorf("env REWARDS_URL is not set")
	}
	if cfg.Tracking.BatchMode != ModeParallel && cfg.Tracking.BatchMode != ModeSequential {
		return nil, fmt.Errorf("env TOURGUIDE_BATCH_MODE must be %q or %q", ModeParallel, ModeSequential)
	}
	if cfg.Rewards.ProximityBuffer < 0 {
		return nil, fmt.Errorf("env TOURGUIDE_PROXIMITY_BUFFER must not be negative")
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// некорректные и нулевые значения заменяются значением по умолчанию
func getIntOrDefault(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}
