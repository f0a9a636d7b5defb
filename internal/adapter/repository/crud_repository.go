package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
)

// crudRepository implements CRUDRepository for a GORM model.
type crudRepository[T any] struct {
	db       *gorm.DB
	logger   *zap.Logger
	entity   string
	preloads []string
}

func newCRUDRepository[T any](db *gorm.DB, logger *zap.Logger, entity string, preloads ...string) crudRepository[T] {
	return crudRepository[T]{
		db:       db,
		logger:   logger,
		entity:   entity,
		preloads: preloads,
	}
}

func (r *crudRepository[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		db = db.Preload(p)
	}
	return db
}

// Create inserts entity without touching associations
func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		err = translateError(err)
		if !isClientError(err) {
			r.logger.Error("Failed to create "+r.entity, zap.Error(err))
		}
		return fmt.Errorf("failed to create %s: %w", r.entity, err)
	}
	return nil
}

// Update saves all columns of entity without touching associations
func (r *crudRepository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error; err != nil {
		err = translateError(err)
		if !isClientError(err) {
			r.logger.Error("Failed to update "+r.entity, zap.Error(err))
		}
		return fmt.Errorf("failed to update %s: %w", r.entity, err)
	}
	return nil
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		r.logger.Error("Failed to delete "+r.entity, zap.Uint("id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete %s: %w", r.entity, translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *crudRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.withPreloads(r.db.WithContext(ctx)).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		r.logger.Error("Failed to get "+r.entity, zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get %s: %w", r.entity, err)
	}
	return &entity, nil
}

func (r *crudRepository[T]) List(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.withPreloads(r.db.WithContext(ctx)).Order("id").Find(&entities).Error
	if err != nil {
		r.logger.Error("Failed to list "+r.entity, zap.Error(err))
		return nil, fmt.Errorf("failed to list %s: %w", r.entity, err)
	}
	return entities, nil
}

func isClientError(err error) bool {
	return errors.Is(err, domainErrors.ErrDuplicate) ||
		errors.Is(err, domainErrors.ErrInvalidReference) ||
		errors.Is(err, domainErrors.ErrNotFound) ||
		errors.Is(err, domainErrors.ErrConflict)
}
