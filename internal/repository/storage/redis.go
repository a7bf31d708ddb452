package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectk-backend/internal/config"
)

// RedisStorage holds the connection the move journal writes through.
type RedisStorage struct {
	Connection *redis.Client
}

// NewRedisStorage connects with the redis section of the config and fails fast when the server is unreachable.
func NewRedisStorage(ctx context.Context, conf config.Redis) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:        conf.GetRedisAddr(),
		DB:          conf.DB,
		DialTimeout: conf.DialTimeout,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", conf.GetRedisAddr(), err)
	}

	return &RedisStorage{Connection: conn}, nil
}

func (that *RedisStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}

	return nil
}
