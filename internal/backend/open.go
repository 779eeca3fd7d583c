// Package backend selects the storage.KV implementation named in the config.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"gtodo/internal/backend/localfile"
	"gtodo/internal/backend/redisstore"
	"gtodo/internal/backend/sqlite"
	"gtodo/internal/config"
	"gtodo/internal/storage"
)

// Open returns the configured key-value backend.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.KV, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return localfile.New(cfg.StoragePath(), logger)
	case config.BackendSQLite:
		return sqlite.New(cfg.StoragePath(), logger)
	case config.BackendRedis:
		return redisstore.New(ctx, cfg.Storage.RedisURL, cfg.Storage.RedisPrefix, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
