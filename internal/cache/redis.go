package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const combinedRatingPrefix = "rating:combined:"

// RatingCache stores computed combined ratings between rating changes.
type RatingCache interface {
	GetCombinedRating(ctx context.Context, freelancerID string) (float64, bool, error)
	SetCombinedRating(ctx context.Context, freelancerID string, rating float64) error
	Invalidate(ctx context.Context, freelancerID string) error
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects and pings the server.
func NewRedisCache(config *RedisConfig) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return NewRedisCacheWithClient(rdb, config.TTL), nil
}

func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func combinedRatingKey(freelancerID string) string {
	return combinedRatingPrefix + freelancerID
}

func (r *RedisCache) GetCombinedRating(ctx context.Context, freelancerID string) (float64, bool, error) {
	data, err := r.client.Get(ctx, combinedRatingKey(freelancerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	var rating float64
	if err := json.Unmarshal(data, &rating); err != nil {
		return 0, false, err
	}
	return rating, true, nil
}

func (r *RedisCache) SetCombinedRating(ctx context.Context, freelancerID string, rating float64) error {
	data, err := json.Marshal(rating)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, combinedRatingKey(freelancerID), data, r.ttl).Err()
}

func (r *RedisCache) Invalidate(ctx context.Context, freelancerID string) error {
	return r.client.Del(ctx, combinedRatingKey(freelancerID)).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

// NoopCache is used when redis is disabled.
type NoopCache struct{}

func (NoopCache) GetCombinedRating(context.Context, string) (float64, bool, error) {
	return 0, false, nil
}

func (NoopCache) SetCombinedRating(context.Context, string, float64) error { return nil }

func (NoopCache) Invalidate(context.Context, string) error { return nil }
