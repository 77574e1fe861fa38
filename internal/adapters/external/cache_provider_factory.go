package external

import (
	"fmt"

	"gorm.io/gorm"
	"weatherforecast.app/internal/adapters/database"
	"weatherforecast.app/internal/config"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

// CacheProviderFactory builds the key/value backend for the configured store type.
// SQL stores reuse the application's GORM connection.
type CacheProviderFactory struct {
	db *gorm.DB
}

func NewCacheProviderFactory(db *gorm.DB) *CacheProviderFactory {
	return &CacheProviderFactory{db: db}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.StoreConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("store config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.StoreTypeMemory:
		return NewMemoryCacheProvider(), nil
	case config.StoreTypeRedis:
		return NewRedisCacheProviderAdapter(&cfg.Redis)
	case config.StoreTypeSQLite, config.StoreTypePostgres:
		if f.db == nil {
			return nil, errors.NewConfigurationError(
				fmt.Sprintf("%s store requires a database connection", cfg.Type.String()), nil)
		}
		return database.NewKeyValueStoreAdapter(f.db)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported store type: %s", cfg.Type.String()), nil)
	}
}
