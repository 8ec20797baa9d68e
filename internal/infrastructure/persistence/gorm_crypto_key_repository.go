package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-utils/internal/domain/keys"
	"github.com/MGTheTrain/crypto-utils/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCryptoKeyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCryptoKeyRepository creates a new GORM-based CryptoKeyRepository implementation
func NewGormCryptoKeyRepository(db *gorm.DB, logger logger.Logger) (keys.CryptoKeyRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	return &gormCryptoKeyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCryptoKeyRepository) Create(ctx context.Context, key *keys.CryptoKeyMeta) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CryptoKeyModel{}
	model.FromDomain(key)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key metadata: %w", err)
	}

	r.logger.Info("Created key metadata with id ", key.ID)
	return nil
}

func (r *gormCryptoKeyRepository) List(ctx context.Context, query *keys.CryptoKeyQuery) ([]*keys.CryptoKeyMeta, error) {
	if query == nil {
		query = &keys.CryptoKeyQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var rows []*models.CryptoKeyModel
	err := r.db.WithContext(ctx).
		Scopes(matching(query), ordered(query), paged(query)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key metadata: %w", err)
	}

	metas := make([]*keys.CryptoKeyMeta, len(rows))
	for i, row := range rows {
		metas[i] = row.ToDomain()
	}
	return metas, nil
}

// matching filters on every non-zero criterion of the query. Algorithm names match case-insensitively.
func matching(query *keys.CryptoKeyQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for column, value := range map[string]string{
			"key_pair_id": query.KeyPairID,
			"type":        query.Type,
		} {
			if value != "" {
				db = db.Where(column+" = ?", value)
			}
		}
		if query.Algorithm != "" {
			db = db.Where("UPPER(algorithm) = ?", strings.ToUpper(query.Algorithm))
		}
		if !query.DateTimeCreated.IsZero() {
			db = db.Where("date_time_created >= ?", query.DateTimeCreated)
		}
		return db
	}
}

// ordered sorts by query.SortBy, which Validate restricts to known columns
func ordered(query *keys.CryptoKeyQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if query.SortBy == "" {
			return db
		}
		direction := query.SortOrder
		if direction == "" {
			direction = "asc"
		}
		return db.Order(query.SortBy + " " + direction)
	}
}

func paged(query *keys.CryptoKeyQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if query.Limit > 0 {
			db = db.Limit(query.Limit)
		}
		if query.Offset > 0 {
			db = db.Offset(query.Offset)
		}
		return db
	}
}

func (r *gormCryptoKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.CryptoKeyMeta, error) {
	var model models.CryptoKeyModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", keys.ErrKeyNotFound, keyID)
		}
		return nil, fmt.Errorf("failed to fetch key metadata: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCryptoKeyRepository) UpdateByID(ctx context.Context, key *keys.CryptoKeyMeta) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CryptoKeyModel{}
	model.FromDomain(key)

	result := r.db.WithContext(ctx).Model(&models.CryptoKeyModel{}).Where("id = ?", key.ID).Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update key metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", keys.ErrKeyNotFound, key.ID)
	}

	r.logger.Info("Updated key metadata with id ", key.ID)
	return nil
}

func (r *gormCryptoKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", keyID).Delete(&models.CryptoKeyModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", keys.ErrKeyNotFound, keyID)
	}

	r.logger.Info("Deleted key metadata with id ", keyID)
	return nil
}
