package repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	"github.com/redis/go-redis/v9"
)

// sessionRepo хранит действующий refresh токен пользователя в redis.
// На пользователя хранится ровно один токен, новый логин вытесняет старый.
type sessionRepo struct {
	rdb *redis.Client
}

func NewSessionRepo(rdb *redis.Client) *sessionRepo {
	return &sessionRepo{rdb: rdb}
}

func refreshKey(userID int64) string {
	return "refresh:" + strconv.FormatInt(userID, 10)
}

func (r *sessionRepo) SaveRefresh(ctx context.Context, userID int64, token string, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, refreshKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// ConsumeRefresh атомарно удаляет сохраненный токен, если он совпадает с предъявленным.
// Из двух одновременных запросов с одним токеном успешен только один.
func (r *sessionRepo) ConsumeRefresh(ctx context.Context, userID int64, token string) error {
	key := refreshKey(userID)
	err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return entities.ErrInvalidToken
		}
		if err != nil {
			return err
		}
		if stored != token {
			return entities.ErrInvalidToken
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, entities.ErrInvalidToken), errors.Is(err, redis.TxFailedErr):
		return entities.ErrInvalidToken
	default:
		return fmt.Errorf("failed to consume refresh token: %w", err)
	}
}

func (r *sessionRepo) DeleteRefresh(ctx context.Context, userID int64) error {
	if err := r.rdb.Del(ctx, refreshKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
