package cache

import (
	"context"
	"errors"
	"time"

	"staymarket/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

type redisDriver struct {
	client *redis.Client
}

func NewRedisDriver(client *redis.Client) Driver {
	return &redisDriver{client: client}
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func (d *redisDriver) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := d.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (d *redisDriver) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return d.client.Set(ctx, key, value, ttl).Err()
}

func (d *redisDriver) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return d.client.Del(ctx, keys...).Err()
}

func (d *redisDriver) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	return d.client.SetNX(ctx, key, value, ttl).Result()
}

func (d *redisDriver) AddToSet(ctx context.Context, set string, members ...string) error {
	args := make([]any, len(members))
	for i, m := range members {
		args[i] = m
	}
	return d.client.SAdd(ctx, set, args...).Err()
}

func (d *redisDriver) SetMembers(ctx context.Context, set string) ([]string, error) {
	members, err := d.client.SMembers(ctx, set).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return members, nil
}
