package tourguide

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	interf "github.com/glkeru/tourguide/internal/interfaces"
	models "github.com/glkeru/tourguide/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const pointsCacheShards = 32

type pointsKey struct {
	attraction uuid.UUID
	user       uuid.UUID
}

func (k pointsKey) String() string {
	return k.attraction.String() + "-" + k.user.String()
}

type pointsShard struct {
	mu     sync.RWMutex
	points map[pointsKey]int
}

func (s *pointsShard) get(key pointsKey) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.points[key]
	return p, ok
}

func (s *pointsShard) set(key pointsKey, points int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points[key] = points
}

// Кэш баллов (достопримечательность, пользователь) -> баллы.
// Без вытеснения: баллы для пары не меняются за время жизни процесса.
// Одновременные промахи по одному ключу делают один запрос к провайдеру.
type PointsCache struct {
	provider interf.RewardPointsProvider
	timeout  time.Duration
	shards   [pointsCacheShards]*pointsShard
	group    singleflight.Group
	logger   *zap.Logger
}

func NewPointsCache(provider interf.RewardPointsProvider, timeout time.Duration, logger *zap.Logger) *PointsCache {
	c := &PointsCache{provider: provider, timeout: timeout, logger: logger}
	for i := range c.shards {
		c.shards[i] = &pointsShard{points: make(map[pointsKey]int)}
	}
	return c
}

func (c *PointsCache) shard(key string) *pointsShard {
	return c.shards[xxhash.Sum64String(key)%pointsCacheShards]
}

// Баллы для пары. Ошибки провайдера не кэшируются.
func (c *PointsCache) GetPoints(ctx context.Context, attraction models.Attraction, userId uuid.UUID) (int, error) {
	key := pointsKey{attraction.ID, userId}
	name := key.String()
	sh := c.shard(name)

	if p, ok := sh.get(key); ok {
		pointsCacheLookups.WithLabelValues("hit").Inc()
		return p, nil
	}
	pointsCacheLookups.WithLabelValues("miss").Inc()

	ch := c.group.DoChan(name, func() (any, error) {
		// значение могло появиться, пока ждали своей очереди
		if p, ok := sh.get(key); ok {
			return p, nil
		}
		// запрос общий для всех ожидающих, отмена одного из них не должна его прерывать
		callCtx := context.WithoutCancel(ctx)
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(callCtx, c.timeout)
			defer cancel()
		}

		start := time.Now()
		p, err := c.provider.GetAttractionRewardPoints(callCtx, attraction.ID, userId)
		pointsProviderDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			pointsProviderCalls.WithLabelValues("error").Inc()
			return 0, fmt.Errorf("reward points %s (%s): %w", attraction.Name, name, err)
		}
		pointsProviderCalls.WithLabelValues("ok").Inc()
		sh.set(key, p)
		return p, nil
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			c.logger.Debug("reward points lookup failed",
				zap.String("service", "GetPoints"),
				zap.String("key", name),
				zap.Error(res.Err),
			)
			return 0, res.Err
		}
		return res.Val.(int), nil
	}
}

// кол-во закэшированных пар
func (c *PointsCache) Len() (n int) {
	for _, sh := range c.shards {
		sh.mu.RLock()
		n += len(sh.points)
		sh.mu.RUnlock()
	}
	return n
}
