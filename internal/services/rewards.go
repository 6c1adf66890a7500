package tourguide

import (
	"context"
	"fmt"
	"sync"

	"github.com/glkeru/tourguide/internal/config"
	interf "github.com/glkeru/tourguide/internal/interfaces"
	models "github.com/glkeru/tourguide/internal/models"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

type RewardsService struct {
	attractions []models.Attraction // только чтение после загрузки
	proximity   *Proximity
	cache       *PointsCache
	pool        *semaphore.Weighted // запросы баллов
	notifier    interf.RewardNotifier
	logger      *zap.Logger
}

// Каталог достопримечательностей загружается один раз. notifier может быть nil.
func NewRewardsService(ctx context.Context, source interf.AttractionSource, provider interf.RewardPointsProvider,
	notifier interf.RewardNotifier, cfg config.RewardsConfig, logger *zap.Logger) (*RewardsService, error) {
	attractions, err := source.GetAttractions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attractions: %w", err)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &RewardsService{
		attractions: attractions,
		proximity:   NewProximity(cfg.ProximityBuffer, cfg.AttractionRange),
		cache:       NewPointsCache(provider, cfg.LookupTimeout, logger),
		pool:        semaphore.NewWeighted(int64(workers)),
		notifier:    notifier,
		logger:      logger,
	}, nil
}

func (s *RewardsService) Attractions() []models.Attraction {
	return s.attractions
}

func (s *RewardsService) SetProximityBuffer(miles float64) {
	s.proximity.SetBuffer(miles)
}

func (s *RewardsService) SetDefaultProximityBuffer() {
	s.proximity.ResetBuffer()
}

func (s *RewardsService) ProximityBuffer() float64 {
	return s.proximity.Buffer()
}

func (s *RewardsService) GetDistance(a, b models.GeoPoint) float64 {
	return Distance(a, b)
}

func (s *RewardsService) IsWithinAttractionProximity(attraction models.Attraction, point models.GeoPoint) bool {
	return s.proximity.IsWithinRange(point, attraction)
}

func (s *RewardsService) GetRewardPoints(ctx context.Context, attraction models.Attraction, userId uuid.UUID) (int, error) {
	return s.cache.GetPoints(ctx, attraction, userId)
}

type candidate struct {
	visit      models.VisitRecord
	attraction models.Attraction
}

// Достопримечательности, рядом с которыми было хотя бы одно посещение, с первым таким посещением
func (s *RewardsService) nearbyAttractions(visits []models.VisitRecord) []candidate {
	var nearby []candidate
	for _, attraction := range s.attractions {
		for _, visit := range visits {
			if s.proximity.IsNear(visit, attraction) {
				nearby = append(nearby, candidate{visit, attraction})
				break
			}
		}
	}
	return nearby
}

// Расчет наград пользователя.
// Повторный вызов без новых посещений новых наград не добавляет.
// Ошибки отдельных запросов баллов собираются и возвращаются после завершения всех запросов.
func (s *RewardsService) CalculateRewards(ctx context.Context, user *models.User) error {
	ctx, span := otel.Tracer("tourguide").Start(ctx, "CalculateRewards")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", user.ID.String()))

	visits := user.VisitedLocations()
	nearby := s.nearbyAttractions(visits)

	// кандидаты с одинаковым названием проверяются по порядку каталога,
	// пока один из них не даст награду
	var names []string
	byName := make(map[string][]candidate, len(nearby))
	for _, c := range nearby {
		if _, ok := byName[c.attraction.Name]; !ok {
			names = append(names, c.attraction.Name)
		}
		byName[c.attraction.Name] = append(byName[c.attraction.Name], c)
	}

	wg := &sync.WaitGroup{}
	var mu sync.Mutex
	var errs error

	for _, name := range names {
		if user.HasReward(name) {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, c := range byName[name] {
				granted, err := s.reward(ctx, user, c)
				if err != nil {
					mu.Lock()
					errs = multierr.Append(errs, err)
					mu.Unlock()
					continue
				}
				if granted || user.HasReward(name) {
					return
				}
			}
		}()
	}
	wg.Wait()

	span.SetAttributes(attribute.Int("attractions.nearby", len(nearby)))
	if errs != nil {
		span.RecordError(errs)
		span.SetStatus(codes.Error, "reward lookups failed")
		return errs
	}
	return nil
}

// Запрос баллов и начисление одной награды. true, если награда добавлена
func (s *RewardsService) reward(ctx context.Context, user *models.User, c candidate) (bool, error) {
	if err := s.pool.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer s.pool.Release(1)

	points, err := s.cache.GetPoints(ctx, c.attraction, user.ID)
	if err != nil {
		return false, err
	}
	if points <= 0 {
		return false, nil
	}

	reward := models.Reward{Visit: c.visit, Attraction: c.attraction, Points: points}
	if !user.AddReward(reward) {
		return false, nil
	}
	rewardsGranted.Inc()

	if s.notifier != nil {
		if err := s.notifier.RewardGranted(ctx, user.ID, reward); err != nil {
			s.logger.Warn("reward notification failed",
				zap.String("service", "CalculateRewards"),
				zap.String("user", user.ID.String()),
				zap.String("attraction", c.attraction.Name),
				zap.Error(err),
			)
		}
	}
	return true, nil
}
