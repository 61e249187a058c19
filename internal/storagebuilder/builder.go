package storagebuilder

import (
	"context"
	"fmt"
	"time"

	"github.com/mkravets/eventcal/internal/storage"
	memorystorage "github.com/mkravets/eventcal/internal/storage/memory"
	sqlstorage "github.com/mkravets/eventcal/internal/storage/sql"
)

type Config struct {
	StorageType string
	Database    sqlstorage.Config
}

func New(config Config) (storage.Storage, error) {
	switch config.StorageType {
	case "memory":
		return memorystorage.New(), nil
	case "sql":
		s := sqlstorage.New(config.Database)
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to database %q: %w", config.Database.Driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage type %s", config.StorageType)
	}
}
