package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherforecast.app/pkg/errors"
)

// KeyValueModel is one slot of the SQL-backed forecast store
type KeyValueModel struct {
	Key       string     `gorm:"column:entry_key;primaryKey;size:255"`
	Value     []byte     `gorm:"not null"`
	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (KeyValueModel) TableName() string {
	return "forecast_entries"
}

// KeyValueStoreAdapter implements the CacheProvider port on top of GORM
type KeyValueStoreAdapter struct {
	db  *gorm.DB
	now func() time.Time
}

func NewKeyValueStoreAdapter(db *gorm.DB) (*KeyValueStoreAdapter, error) {
	if db == nil {
		return nil, errors.NewConfigurationError("database connection cannot be nil", nil)
	}
	return &KeyValueStoreAdapter{db: db, now: time.Now}, nil
}

// Models lists the tables this adapter needs migrated
func Models() []interface{} {
	return []interface{}{&KeyValueModel{}}
}

func (s *KeyValueStoreAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	var model KeyValueModel
	result := s.live(ctx).Where("entry_key = ?", key).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewDatabaseError("failed to read forecast entry", result.Error)
	}

	return model.Value, nil
}

// Set upserts the entry. A zero TTL keeps it until it is overwritten.
func (s *KeyValueStoreAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("cache TTL cannot be negative")
	}

	model := KeyValueModel{Key: key, Value: value}
	if ttl > 0 {
		expiresAt := s.now().Add(ttl)
		model.ExpiresAt = &expiresAt
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to save forecast entry", result.Error)
	}

	return nil
}

func (s *KeyValueStoreAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&KeyValueModel{}).Error; err != nil {
		return errors.NewDatabaseError("failed to delete forecast entry", err)
	}
	return nil
}

func (s *KeyValueStoreAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	var count int64
	if err := s.live(ctx).Model(&KeyValueModel{}).Where("entry_key = ?", key).Count(&count).Error; err != nil {
		return false, errors.NewDatabaseError("failed to check forecast entry", err)
	}
	return count > 0, nil
}

func (s *KeyValueStoreAdapter) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&KeyValueModel{}).Error; err != nil {
		return errors.NewDatabaseError("failed to clear forecast entries", err)
	}
	return nil
}

// PurgeExpired deletes entries whose TTL has passed and reports how many were removed
func (s *KeyValueStoreAdapter) PurgeExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", s.now()).
		Delete(&KeyValueModel{})
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to purge expired forecast entries", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *KeyValueStoreAdapter) live(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Where("expires_at IS NULL OR expires_at > ?", s.now())
}
