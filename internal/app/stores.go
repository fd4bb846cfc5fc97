package app

import (
	"context"
	"fmt"

	"factory-monitoring/internal/shared/configs"
	"factory-monitoring/internal/shared/filestorages"
	"factory-monitoring/internal/stores"
)

func newEventStore(ctx context.Context, cfg configs.StoreConfig) (stores.EventStore, error) {
	switch cfg.Driver {
	case configs.StoreDriverMemory:
		return stores.NewMemoryEventStore(), nil
	case configs.StoreDriverSQLite:
		db, err := stores.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return stores.NewSQLiteEventStore(db), nil
	case configs.StoreDriverPostgres:
		return stores.NewPostgresEventStore(ctx, cfg.PostgresURL)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// newBatchArchive returns nil when archiving is disabled.
func newBatchArchive(ctx context.Context, cfg configs.ArchiveConfig) (stores.BatchArchiveStore, error) {
	var (
		fileStorage filestorages.FileStorage
		err         error
	)
	switch cfg.Driver {
	case configs.ArchiveDriverNone:
		return nil, nil
	case configs.ArchiveDriverFile:
		fileStorage, err = filestorages.NewLocalFileStorage(cfg.RootDir)
	case configs.ArchiveDriverMinio:
		fileStorage, err = filestorages.NewMinioFileStorage(ctx, filestorages.MinioOptions{
			Endpoint:  cfg.Minio.Endpoint,
			Bucket:    cfg.Minio.Bucket,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Region:    cfg.Minio.Region,
			UseSSL:    cfg.Minio.UseSSL,
		})
	default:
		return nil, fmt.Errorf("unknown archive driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return stores.NewBatchArchiveStore(fileStorage), nil
}
