package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

func New(cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
