package tourguide

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	interf "github.com/glkeru/tourguide/internal/interfaces"
	models "github.com/glkeru/tourguide/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TourGuideService struct {
	gps       interf.LocationProvider
	rewards   *RewardsService
	users     interf.UserStorage
	locations interf.LocationCache // может быть nil
	workers   int
	logger    *zap.Logger
}

func NewTourGuideService(gps interf.LocationProvider, rewards *RewardsService, users interf.UserStorage,
	locations interf.LocationCache, workers int, logger *zap.Logger) *TourGuideService {
	if workers <= 0 {
		workers = 1
	}
	return &TourGuideService{gps, rewards, users, locations, workers, logger}
}

func (t *TourGuideService) Log(msg string, service string, err error) {
	t.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

func (t *TourGuideService) Rewards() *RewardsService {
	return t.rewards
}

func (t *TourGuideService) GetUser(ctx context.Context, userName string) (*models.User, error) {
	return t.users.GetUser(ctx, userName)
}

func (t *TourGuideService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return t.users.GetAllUsers(ctx)
}

func (t *TourGuideService) AddUser(ctx context.Context, user *models.User) error {
	return t.users.AddUser(ctx, user)
}

func (t *TourGuideService) GetUserRewards(user *models.User) []models.Reward {
	return user.Rewards()
}

// Текущее местоположение: кэш, затем последнее посещение, затем запрос к провайдеру
func (t *TourGuideService) GetUserLocation(ctx context.Context, user *models.User) (models.VisitRecord, error) {
	if t.locations != nil {
		visit, err := t.locations.GetLocation(ctx, user.ID)
		if err == nil {
			return visit, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			t.Log("Location cache", "GetUserLocation", err)
		}
	}
	if visit, ok := user.LastVisitedLocation(); ok {
		return visit, nil
	}
	return t.TrackUserLocation(ctx, user)
}

// Запрос местоположения, сохранение посещения и пересчет наград
func (t *TourGuideService) TrackUserLocation(ctx context.Context, user *models.User) (models.VisitRecord, error) {
	ctx, span := otel.Tracer("tourguide").Start(ctx, "TrackUserLocation",
		trace.WithAttributes(attribute.String("user.id", user.ID.String())))
	defer span.End()

	visit, err := t.gps.GetUserLocation(ctx, user.ID)
	if err != nil {
		return models.VisitRecord{}, fmt.Errorf("track user %s: %w", user.Name, err)
	}
	visit.UserID = user.ID
	if visit.VisitedAt.IsZero() {
		visit.VisitedAt = time.Now()
	}
	user.AddVisit(visit)

	if err := t.users.AddVisit(ctx, visit); err != nil {
		return visit, fmt.Errorf("save visit of %s: %w", user.Name, err)
	}
	if t.locations != nil {
		if err := t.locations.SetLocation(ctx, visit); err != nil {
			t.Log("Location cache", "TrackUserLocation", err)
		}
	}

	// награды, полученные до ошибки, все равно сохраняются
	calcErr := t.rewards.CalculateRewards(ctx, user)
	saveErr := t.users.SaveRewards(ctx, user)
	if saveErr != nil {
		saveErr = fmt.Errorf("save rewards of %s: %w", user.Name, saveErr)
	}
	return visit, multierr.Append(calcErr, saveErr)
}

// Отслеживание всех пользователей
func (t *TourGuideService) TrackAllUsers(ctx context.Context, users []*models.User) error {
	batchErr := models.NewBatchError()
	var mu sync.Mutex

	g := &errgroup.Group{}
	g.SetLimit(t.workers)
	for _, user := range users {
		g.Go(func() error {
			if _, err := t.TrackUserLocation(ctx, user); err != nil {
				mu.Lock()
				batchErr.Add(user.ID, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return batchErr.ErrorOrNil()
}

// Сохранение наград после пакетного расчета
func (t *TourGuideService) SaveAllRewards(ctx context.Context, users []*models.User) error {
	batchErr := models.NewBatchError()
	for _, user := range users {
		if err := t.users.SaveRewards(ctx, user); err != nil {
			t.logger.Error("Save rewards",
				zap.String("service", "SaveAllRewards"),
				zap.String("user", user.Name),
				zap.Error(err),
			)
			batchErr.Add(user.ID, err)
		}
	}
	return batchErr.ErrorOrNil()
}

// Ближайшие limit достопримечательностей с расстоянием и баллами
func (t *TourGuideService) GetNearbyAttractions(ctx context.Context, user *models.User, limit int) ([]models.NearbyAttraction, error) {
	visit, err := t.GetUserLocation(ctx, user)
	if err != nil {
		return nil, err
	}

	type nearbyAttraction struct {
		attraction models.Attraction
		dto        models.NearbyAttraction
	}

	attractions := t.rewards.Attractions()
	nearby := make([]nearbyAttraction, len(attractions))
	for i, a := range attractions {
		nearby[i] = nearbyAttraction{
			attraction: a,
			dto: models.NearbyAttraction{
				AttractionName: a.Name,
				AttractionLat:  a.Location.Latitude,
				AttractionLon:  a.Location.Longitude,
				UserLat:        visit.Location.Latitude,
				UserLon:        visit.Location.Longitude,
				DistanceMiles:  Distance(visit.Location, a.Location),
			},
		}
	}
	slices.SortStableFunc(nearby, func(a, b nearbyAttraction) int {
		return cmp.Compare(a.dto.DistanceMiles, b.dto.DistanceMiles)
	})
	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}

	// баллы только для отобранных, по ID достопримечательности
	result := make([]models.NearbyAttraction, len(nearby))
	g, gctx := errgroup.WithContext(ctx)
	for i := range nearby {
		g.Go(func() error {
			points, err := t.rewards.GetRewardPoints(gctx, nearby[i].attraction, user.ID)
			if err != nil {
				return err
			}
			result[i] = nearby[i].dto
			result[i].RewardPoints = points
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
