package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cmlabs-hris/employee-portal-go/internal/config"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/database"
)

// Open builds the slot backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case "", "local":
		base := cfg.BasePath
		if cfg.KeyPrefix != "" {
			base = filepath.Join(base, cfg.KeyPrefix)
		}
		return NewLocalStorage(base)
	case "memory":
		return NewMemoryStorage(), nil
	case "sqlite":
		return NewSQLiteStorage(cfg.SQLitePath)
	case "postgres":
		db, err := database.NewPostgreSQLDB(ctx, cfg.Database.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		s, err := NewPostgresStorage(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return s, nil
	case "redis":
		return NewRedisStorage(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.KeyPrefix)
	case "s3", "minio":
		return NewS3Storage(ctx, S3Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle || cfg.Driver == "minio",
			Prefix:    cfg.KeyPrefix,
		})
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
