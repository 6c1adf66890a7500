package tourguide

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	models "github.com/glkeru/tourguide/internal/models"
	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	redis "github.com/redis/go-redis/v9"
)

func locationKey(userId uuid.UUID) string {
	return "location:" + userId.String()
}

// Последнее местоположение пользователя в Redis
type RedisLocationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocationCache(ttl time.Duration) (serv *RedisLocationCache, err error) {

	// config
	addr := os.Getenv("TOURGUIDE_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env TOURGUIDE_CACHE_URL is not set")
	}
	user := os.Getenv("TOURGUIDE_CACHE_USER")
	pwd := os.Getenv("TOURGUIDE_CACHE_PWD")

	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &RedisLocationCache{db, ttl}, nil
}

func (c *RedisLocationCache) Close() error {
	return c.client.Close()
}

func (c *RedisLocationCache) GetLocation(ctx context.Context, userId uuid.UUID) (visit models.VisitRecord, err error) {
	val, err := c.client.Get(ctx, locationKey(userId)).Bytes()
	if err == redis.Nil {
		return visit, fmt.Errorf("location %s: %w", userId, models.ErrNotFound)
	} else if err != nil {
		return visit, err
	}

	if err = json.Unmarshal(val, &visit); err != nil {
		return visit, err
	}
	return visit, nil
}

func (c *RedisLocationCache) SetLocation(ctx context.Context, visit models.VisitRecord) error {
	val, err := json.Marshal(visit)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, locationKey(visit.UserID), val, c.ttl).Err()
}

// Кэш в памяти процесса, если Redis не настроен
type MemoryLocationCache struct {
	items *cache.Cache
}

func NewMemoryLocationCache(ttl time.Duration) *MemoryLocationCache {
	return &MemoryLocationCache{cache.New(ttl, 2*ttl)}
}

func (c *MemoryLocationCache) GetLocation(ctx context.Context, userId uuid.UUID) (models.VisitRecord, error) {
	val, ok := c.items.Get(locationKey(userId))
	if !ok {
		return models.VisitRecord{}, fmt.Errorf("location %s: %w", userId, models.ErrNotFound)
	}
	return val.(models.VisitRecord), nil
}

func (c *MemoryLocationCache) SetLocation(ctx context.Context, visit models.VisitRecord) error {
	c.items.Set(locationKey(visit.UserID), visit, cache.DefaultExpiration)
	return nil
}
