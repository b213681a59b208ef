package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store 服务层使用的 Redis 操作集合，实现报表缓存、Token 黑名单与索引脏集合
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// GetValue 键不存在时返回空串
func (s *Store) GetValue(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return value, err
}

func (s *Store) SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.rdb.Set(ctx, key, value, expiration).Err()
}

func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	return s.rdb.Incr(ctx, key).Result()
}

func (s *Store) AddSet(ctx context.Context, key string, members ...interface{}) error {
	if len(members) == 0 {
		return nil
	}
	return s.rdb.SAdd(ctx, key, members...).Err()
}

func (s *Store) GetSet(ctx context.Context, key string) ([]string, error) {
	return s.rdb.SMembers(ctx, key).Result()
}

// MoveSet 将 src 并入 dst 并删除 src，src 不存在时 dst 保持不变
func (s *Store) MoveSet(ctx context.Context, src string, dst string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SUnionStore(ctx, dst, dst, src)
		pipe.Del(ctx, src)
		return nil
	})
	return err
}

func (s *Store) DeleteKey(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
