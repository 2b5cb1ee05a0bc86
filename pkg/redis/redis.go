package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Options - параметры подключения к Redis
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient создает и возвращает новый клиент Redis
func NewRedisClient(ctx context.Context, opts Options) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: 10,
	})

	// Проверяем соединение с Redis
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return rdb, nil
}
