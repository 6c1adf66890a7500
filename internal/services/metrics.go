package tourguide

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// метрики

var (
	pointsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourguide_points_cache_lookups_total",
			Help: "Обращения к кэшу баллов",
		},
		[]string{"result"},
	)

	pointsProviderCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourguide_points_provider_calls_total",
			Help: "Запросы к провайдеру баллов",
		},
		[]string{"status"},
	)

	pointsProviderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tourguide_points_provider_duration_seconds",
			Help:    "Продолжительность запросов к провайдеру баллов",
			Buckets: prometheus.DefBuckets,
		},
	)

	rewardsGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tourguide_rewards_granted_total",
			Help: "Начисленные награды",
		},
	)

	usersProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourguide_users_processed_total",
			Help: "Пользователи, обработанные пакетным расчетом",
		},
		[]string{"mode", "status"},
	)
)
