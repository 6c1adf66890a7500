package tourguide

import (
	"context"
	"sync"

	"github.com/glkeru/tourguide/internal/config"
	models "github.com/glkeru/tourguide/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Пакетный расчет наград
type RewardProcessingService struct {
	rewards *RewardsService
	workers int
	logger  *zap.Logger
}

func NewRewardProcessingService(rewards *RewardsService, workers int, logger *zap.Logger) *RewardProcessingService {
	if workers <= 0 {
		workers = 1
	}
	return &RewardProcessingService{rewards, workers, logger}
}

// Process запускает расчет в выбранном режиме
func (p *RewardProcessingService) Process(ctx context.Context, mode string, users []*models.User) error {
	if mode == config.ModeSequential {
		return p.ProcessUsersSequentially(ctx, users)
	}
	return p.ProcessUsersInParallel(ctx, users)
}

// Все пользователи параллельно. Ошибка одного пользователя не прерывает остальных.
func (p *RewardProcessingService) ProcessUsersInParallel(ctx context.Context, users []*models.User) error {
	ctx, span := otel.Tracer("tourguide").Start(ctx, "ProcessUsersInParallel")
	defer span.End()
	span.SetAttributes(attribute.Int("users", len(users)))

	batchErr := models.NewBatchError()
	var mu sync.Mutex

	g := &errgroup.Group{}
	g.SetLimit(p.workers)
	for _, user := range users {
		g.Go(func() error {
			err := p.rewards.CalculateRewards(ctx, user)
			p.done(config.ModeParallel, user, err)
			if err != nil {
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

// По одному пользователю в порядке списка, продолжая после ошибок
func (p *RewardProcessingService) ProcessUsersSequentially(ctx context.Context, users []*models.User) error {
	ctx, span := otel.Tracer("tourguide").Start(ctx, "ProcessUsersSequentially")
	defer span.End()
	span.SetAttributes(attribute.Int("users", len(users)))

	batchErr := models.NewBatchError()
	for _, user := range users {
		err := p.rewards.CalculateRewards(ctx, user)
		p.done(config.ModeSequential, user, err)
		if err != nil {
			batchErr.Add(user.ID, err)
		}
	}
	return batchErr.ErrorOrNil()
}

func (p *RewardProcessingService) done(mode string, user *models.User, err error) {
	if err != nil {
		usersProcessed.WithLabelValues(mode, "error").Inc()
		p.logger.Error("Reward processing",
			zap.String("service", "Process users "+mode),
			zap.String("user", user.ID.String()),
			zap.Error(err),
		)
		return
	}
	usersProcessed.WithLabelValues(mode, "ok").Inc()
}
