// Package redisstore implements storage.KV on Redis strings.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"gtodo/internal/storage"
)

// Store keeps each key as a Redis string under a common prefix.
type Store struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

var _ storage.KV = (*Store)(nil)

// New connects to the Redis server at url and verifies the connection.
func New(ctx context.Context, url, prefix string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Debug("redis store connected", "addr", opt.Addr, "db", opt.DB, "prefix", prefix)
	return &Store{client: client, prefix: prefix, logger: logger}, nil
}

// Get implements storage.KV.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return v, true, nil
}

// Set implements storage.KV. Keys never expire.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Close implements storage.KV.
func (s *Store) Close() error {
	return s.client.Close()
}
