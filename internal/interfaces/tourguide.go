package tourguide

import (
	"context"

	models "github.com/glkeru/tourguide/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=./../services/mock_tourguide_test.go -package=tourguide . LocationProvider,AttractionSource,RewardPointsProvider,RewardNotifier,LocationCache,UserStorage
//go:generate mockgen -destination=./../api/mock_tourguide_test.go -package=tourguide . UserStorage,LocationProvider,RewardPointsProvider

// Провайдер геолокации
type LocationProvider interface {
	GetUserLocation(ctx context.Context, userId uuid.UUID) (models.VisitRecord, error)
	AttractionSource
}

// Каталог достопримечательностей
type AttractionSource interface {
	GetAttractions(ctx context.Context) ([]models.Attraction, error)
}

// Провайдер баллов за достопримечательность
type RewardPointsProvider interface {
	GetAttractionRewardPoints(ctx context.Context, attractionId uuid.UUID, userId uuid.UUID) (points int, err error)
}

// Уведомления о начисленных наградах
type RewardNotifier interface {
	RewardGranted(ctx context.Context, userId uuid.UUID, reward models.Reward) error
}

// Кэш последнего местоположения пользователя
type LocationCache interface {
	GetLocation(ctx context.Context, userId uuid.UUID) (visit models.VisitRecord, err error)
	SetLocation(ctx context.Context, visit models.VisitRecord) error
}

// Хранилище пользователей
type UserStorage interface {
	GetUser(ctx context.Context, userName string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	AddUser(ctx context.Context, user *models.User) error
	AddVisit(ctx context.Context, visit models.VisitRecord) error
	SaveRewards(ctx context.Context, user *models.User) error
}
